package tok

import "github.com/valyala/bytebufferpool"

// 解转义是两阶段字符串策略的第二阶段: 词法层只打 NameEsc/ValueEsc
// 标记，解码推迟到消费方真正需要字节时进行。UTF-16 代理对的配对
// 合法性也只在这一阶段暴露。

// AppendUnescape 将字符串字面量解码后追加到 dst
//
// 规则:
//   - 非转义字节原样追加（词法层已拒绝未转义控制字节）
//   - \" \\ \/ \b \f \n \r \t → 对应字面字节
//   - \uXXXX → 16 位码元；高代理 (D800..DBFF) 必须紧跟 \u 低代理
//     (DC00..DFFF)，组合为补充平面标量；孤立低代理非法。标量按
//     UTF-8 编码为 1–4 字节追加
//
// 返回追加后的 dst 与合法标记。失败时 dst 含出错前已解码的部分，
// 需要精确字节的调用方可回退使用原始字面量。
func AppendUnescape(dst, src []byte) ([]byte, bool) {
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		if c != '\\' {
			// 批量追加到下一个转义符为止
			start := i
			for i < n && src[i] != '\\' {
				i++
			}
			dst = append(dst, src[start:i]...)
			continue
		}

		i++
		if i >= n {
			return dst, false
		}
		switch src[i] {
		case '"', '\\', '/':
			dst = append(dst, src[i])
		case 'b':
			dst = append(dst, '\b')
		case 'f':
			dst = append(dst, '\f')
		case 'n':
			dst = append(dst, '\n')
		case 'r':
			dst = append(dst, '\r')
		case 't':
			dst = append(dst, '\t')
		case 'u':
			v1, ok := hex4(src, i+1)
			if !ok {
				return dst, false
			}
			i += 4
			if v1 >= 0xDC00 && v1 <= 0xDFFF {
				// 孤立低代理
				return dst, false
			}
			if v1 >= 0xD800 && v1 <= 0xDBFF {
				// 高代理必须紧跟 \u 低代理
				if i+6 >= n || src[i+1] != '\\' || src[i+2] != 'u' {
					return dst, false
				}
				v2, ok := hex4(src, i+3)
				if !ok || v2 < 0xDC00 || v2 > 0xDFFF {
					return dst, false
				}
				v1 = 0x10000 + ((v1 - 0xD800) << 10) + (v2 - 0xDC00)
				i += 6
			}
			dst = appendRune(dst, v1)
		default:
			// 词法层已拒绝，这里防御性复查
			return dst, false
		}
		i++
	}
	return dst, true
}

// hex4 解析 src[i:i+4] 的 4 位十六进制数
func hex4(src []byte, i int) (uint32, bool) {
	if i+4 > len(src) {
		return 0, false
	}
	var v uint32
	for k := 0; k < 4; k++ {
		c := src[i+k]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint32(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint32(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			v |= uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}

// appendRune UTF-8 编码标量并追加（避免 import unicode/utf8）
func appendRune(dst []byte, r uint32) []byte {
	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst, byte(0xC0|(r>>6)), byte(0x80|(r&0x3F)))
	case r < 0x10000:
		return append(dst, byte(0xE0|(r>>12)), byte(0x80|((r>>6)&0x3F)), byte(0x80|(r&0x3F)))
	default:
		return append(dst,
			byte(0xF0|(r>>18)), byte(0x80|((r>>12)&0x3F)),
			byte(0x80|((r>>6)&0x3F)), byte(0x80|(r&0x3F)))
	}
}

// ─── token 级取值 ───

var (
	litNull   = []byte("null")
	litTrue   = []byte("true")
	litFalse  = []byte("false")
	litObject = []byte("object")
	litArray  = []byte("array")
)

// TokenName 返回 token 的成员名字节
//
// 名字无转义时直接返回输入切片的视图，零拷贝；含转义时解码到
// scratch 并返回其中的区间，在 scratch 复位前有效。解码失败
// （如不配对的代理）返回未解码的原始字面量与 false。
// 非对象成员返回空切片。
func (p *Parser) TokenName(i Idx, scratch *bytebufferpool.ByteBuffer) ([]byte, bool) {
	t := p.st.At(i)
	raw := p.js[t.NameOff : t.NameOff+t.NameLen]
	if !t.NameEsc {
		return raw, true
	}
	start := len(scratch.B)
	b, ok := AppendUnescape(scratch.B, raw)
	scratch.B = b
	if !ok {
		return raw, false
	}
	return scratch.B[start:], true
}

// TokenString 返回 token 的字符串值字节
//
// 任何类型的 token 均可调用: 数字返回原始字面量，null/bool 返回
// "null"/"true"/"false"，容器返回 "object"/"array"。只有字符串
// 值可能含转义，处理方式与 TokenName 相同。
func (p *Parser) TokenString(i Idx, scratch *bytebufferpool.ByteBuffer) ([]byte, bool) {
	t := p.st.At(i)
	switch t.Kind {
	case KindNull:
		return litNull, true
	case KindBool:
		if t.Boolean {
			return litTrue, true
		}
		return litFalse, true
	case KindNumber, KindString:
		raw := p.js[t.StrOff : t.StrOff+t.StrLen]
		if !t.ValueEsc {
			return raw, true
		}
		start := len(scratch.B)
		b, ok := AppendUnescape(scratch.B, raw)
		scratch.B = b
		if !ok {
			return raw, false
		}
		return scratch.B[start:], true
	case KindObject:
		return litObject, true
	case KindArray:
		return litArray, true
	default:
		return nil, true
	}
}
