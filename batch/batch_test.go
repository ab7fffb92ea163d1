package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	r, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	docs := [][]byte{
		[]byte(`{"a":1}`),
		[]byte("[true,false,null]"),
		[]byte("{broken"),
		[]byte(`"s"`),
		[]byte("[1,]"),
	}
	results := r.Validate(docs)

	if len(results) != len(docs) {
		t.Fatalf("results = %d", len(results))
	}
	wantErr := []bool{false, false, true, false, true}
	wantTokens := []uint32{2, 4, 0, 1, 0}
	for i, res := range results {
		if res.Doc != i {
			t.Errorf("result %d has Doc=%d", i, res.Doc)
		}
		if (res.Err != nil) != wantErr[i] {
			t.Errorf("doc %d: err = %v", i, res.Err)
		}
		if res.Tokens != wantTokens[i] {
			t.Errorf("doc %d: tokens = %d, want %d", i, res.Tokens, wantTokens[i])
		}
	}

	docsN, tokensN := r.Stats()
	if docsN != 5 {
		t.Errorf("docs counter = %d", docsN)
	}
	if tokensN != 7 {
		t.Errorf("tokens counter = %d", tokensN)
	}
}

// TestValidateLarge 任务数远超 worker 数
func TestValidateLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping stress test in short mode")
	}
	r, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	docs := make([][]byte, 1000)
	for i := range docs {
		if i%7 == 0 {
			docs[i] = []byte("{bad")
		} else {
			docs[i] = []byte(`[1,2,{"k":"v"}]`)
		}
	}
	bad := 0
	for _, res := range r.Validate(docs) {
		if res.Err != nil {
			bad++
		}
	}
	if bad != 143 {
		t.Fatalf("bad = %d", bad)
	}
}

func TestDrain(t *testing.T) {
	r, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	r.Validate([][]byte{[]byte("[]"), []byte("{}")})
	if err := r.Drain(time.Second); err != nil {
		t.Fatal(err)
	}
}

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(good, []byte(`{"ok":true}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("[1,"), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := ValidateFiles(context.Background(), []string{good, bad})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err != nil || results[0].Tokens != 2 || results[0].Path != good {
		t.Errorf("good: %+v", results[0])
	}
	if results[1].Err == nil {
		t.Error("bad file accepted")
	}

	// 缺失文件属于 I/O 错误，整批报错
	_, err = ValidateFiles(context.Background(), []string{good, filepath.Join(dir, "missing.json")})
	if err == nil || !strings.Contains(err.Error(), "missing.json") {
		t.Fatalf("err = %v", err)
	}
}
