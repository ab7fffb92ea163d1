package tok

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

func TestAppendUnescapeSimple(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`plain`, "plain"},
		{`a\"b`, `a"b`},
		{`a\\b`, `a\b`},
		{`a\/b`, "a/b"},
		{`\b\f\n\r\t`, "\b\f\n\r\t"},
		{"\\u0000", "\x00"},
		{"\\u0041", "A"},
		{"\\u00e9", "\xc3\xa9"},
		{"\\u12AB", "\xe1\x8a\xab"},
		{"new\\u000Aline", "new\nline"},
		{"\\u0061\\u30af\\u30EA\\u30b9", "a\u30af\u30ea\u30b9"},
		{"mixed \\u0041 and raw \xc3\xa9", "mixed A and raw \xc3\xa9"},
	}
	for _, tc := range cases {
		got, ok := AppendUnescape(nil, []byte(tc.in))
		if !ok {
			t.Errorf("%q: unexpected invalid", tc.in)
			continue
		}
		if string(got) != tc.want {
			t.Errorf("%q: got %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestSurrogateLaw 任意高低代理组合都按补充平面公式合成
func TestSurrogateLaw(t *testing.T) {
	hexDigits := "0123456789abcdef"
	u16 := func(v uint32) []byte {
		return []byte{'\\', 'u',
			hexDigits[v>>12&0xF], hexDigits[v>>8&0xF],
			hexDigits[v>>4&0xF], hexDigits[v&0xF]}
	}

	for hi := uint32(0xD800); hi <= 0xDBFF; hi += 0x111 {
		for lo := uint32(0xDC00); lo <= 0xDFFF; lo += 0x57 {
			src := append(u16(hi), u16(lo)...)
			got, ok := AppendUnescape(nil, src)
			if !ok {
				t.Fatalf("\\u%04X\\u%04X: invalid", hi, lo)
			}
			scalar := rune(0x10000 + ((hi - 0xD800) << 10) + (lo - 0xDC00))
			want := utf8.AppendRune(nil, scalar)
			if !bytes.Equal(got, want) {
				t.Fatalf("\\u%04X\\u%04X: got % X, want % X", hi, lo, got, want)
			}
			if len(got) != 4 {
				t.Fatalf("\\u%04X\\u%04X: %d bytes", hi, lo, len(got))
			}
		}
	}

	// 边界对
	got, ok := AppendUnescape(nil, []byte("\\ud800\\udc00"))
	if !ok || !bytes.Equal(got, []byte("\xf0\x90\x80\x80")) {
		t.Fatalf("U+10000: % X ok=%v", got, ok)
	}
	got, ok = AppendUnescape(nil, []byte("\\udbff\\udfff"))
	if !ok || !bytes.Equal(got, []byte("\xf4\x8f\xbf\xbf")) {
		t.Fatalf("U+10FFFF: % X ok=%v", got, ok)
	}
}

// TestUnescapeInvalid 解码失败返回已解码前缀与 false
func TestUnescapeInvalid(t *testing.T) {
	cases := []struct {
		in     string
		prefix string
	}{
		{`\uD800`, ""},          // 孤立高代理
		{`\uDFAA`, ""},          // 孤立低代理
		{`ab\uD800cd`, "ab"},    // 高代理后不是 \u
		{`\uD800\n`, ""},        // 高代理后是普通转义
		{`\uD800\uD800`, ""},    // 高代理后又是高代理
		{`\uD834\uDB99`, ""},    // 第二个不在低代理区
		{`x\q`, "x"},            // 非法转义（防御性复查）
		{`x\u12`, "x"},          // 截断的 \u
		{`x\`, "x"},             // 孤立反斜杠
	}
	for _, tc := range cases {
		got, ok := AppendUnescape(nil, []byte(tc.in))
		if ok {
			t.Errorf("%q: expected invalid", tc.in)
			continue
		}
		if string(got) != tc.prefix {
			t.Errorf("%q: prefix %q, want %q", tc.in, got, tc.prefix)
		}
	}
}

// TestUnescapeIdempotence 无转义标记的 token 直接返回输入视图
func TestUnescapeIdempotence(t *testing.T) {
	p := NewParser()
	mustParse(t, p, `["plain ascii"]`)

	scratch := bytebufferpool.Get()
	defer bytebufferpool.Put(scratch)

	v, ok := p.TokenString(2, scratch)
	if !ok || string(v) != "plain ascii" {
		t.Fatalf("got %q ok=%v", v, ok)
	}
	if len(scratch.B) != 0 {
		t.Fatal("scratch touched for unescaped value")
	}
	// 零拷贝: 返回的就是输入里的那段字节
	if &v[0] != &p.Input()[p.At(2).StrOff] {
		t.Fatal("unescaped value not aliased to input")
	}
}

// TestTokenStringEmoji 代理对解码为 4 字节 UTF-8
func TestTokenStringEmoji(t *testing.T) {
	p := NewParser()
	mustParse(t, p, "\"\\uD83D\\uDE39\"")
	if !p.At(1).ValueEsc {
		t.Fatal("ValueEsc not set")
	}

	scratch := bytebufferpool.Get()
	defer bytebufferpool.Put(scratch)
	v, ok := p.TokenString(1, scratch)
	if !ok {
		t.Fatal("valid surrogate pair reported invalid")
	}
	if !bytes.Equal(v, []byte{0xF0, 0x9F, 0x98, 0xB9}) {
		t.Fatalf("got % X", v)
	}
}

// TestTokenStringLoneSurrogate 词法接受，解码阶段才报非法
func TestTokenStringLoneSurrogate(t *testing.T) {
	p := NewParser()
	mustParse(t, p, `"\uD800"`)

	scratch := bytebufferpool.Get()
	defer bytebufferpool.Put(scratch)
	v, ok := p.TokenString(1, scratch)
	if ok {
		t.Fatal("lone surrogate reported valid")
	}
	// 失败时回退原始字面量
	if string(v) != `\uD800` {
		t.Fatalf("fallback = %q", v)
	}
}

// TestTokenName 成员名解码与 TokenString 同规则
func TestTokenName(t *testing.T) {
	p := NewParser()
	mustParse(t, p, `{"a\nb":1,"plain":2}`)

	scratch := bytebufferpool.Get()
	defer bytebufferpool.Put(scratch)

	n, ok := p.TokenName(2, scratch)
	if !ok || string(n) != "a\nb" {
		t.Fatalf("got %q ok=%v", n, ok)
	}
	n, ok = p.TokenName(3, scratch)
	if !ok || string(n) != "plain" {
		t.Fatalf("got %q ok=%v", n, ok)
	}
	// 非对象成员: 空名
	mustParse(t, p, `[1]`)
	n, _ = p.TokenName(2, scratch)
	if len(n) != 0 {
		t.Fatalf("array member name = %q", n)
	}
}

// TestTokenStringLiterals 任意类型均可取字符串值
func TestTokenStringLiterals(t *testing.T) {
	p := NewParser()
	mustParse(t, p, `[null,true,false,42,"s",{},[]]`)

	want := []string{"array", "null", "true", "false", "42", "s", "object", "array"}
	scratch := bytebufferpool.Get()
	defer bytebufferpool.Put(scratch)
	for i := Idx(1); i <= p.Last(); i++ {
		v, ok := p.TokenString(i, scratch)
		if !ok || string(v) != want[i-1] {
			t.Errorf("token %d: %q ok=%v, want %q", i, v, ok, want[i-1])
		}
	}
}
