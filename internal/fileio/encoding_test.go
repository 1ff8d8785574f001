package fileio

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func sjis(t *testing.T, s string) []byte {
	t.Helper()
	out, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), s)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return []byte(out)
}

func TestResolveUTF8WithBOM(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("日付,金額\n")...)
	doc, err := Resolve(in)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Encoding != EncodingUTF8 {
		t.Errorf("encoding = %q, want %q", doc.Encoding, EncodingUTF8)
	}
	if doc.Text != "日付,金額\n" {
		t.Errorf("BOM not stripped: %q", doc.Text)
	}
}

func TestResolveUTF8NoBOM(t *testing.T) {
	doc, err := Resolve([]byte("a,b,c"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Encoding != EncodingUTF8 || doc.Text != "a,b,c" {
		t.Errorf("got %+v", doc)
	}
}

func TestResolveShiftJISFallback(t *testing.T) {
	doc, err := Resolve(sjis(t, "利用日,利用店名,金額"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Encoding != EncodingDBCS {
		t.Errorf("encoding = %q, want %q", doc.Encoding, EncodingDBCS)
	}
	if doc.Text != "利用日,利用店名,金額" {
		t.Errorf("text = %q", doc.Text)
	}
}

func TestResolveUndecodable(t *testing.T) {
	// invalid as UTF-8 and as Shift-JIS (0xFD-0xFF are not lead bytes)
	_, err := Resolve([]byte{0xFF, 0xFE, 0xFD})
	if !errors.Is(err, ErrEncodingDetect) {
		t.Fatalf("err = %v, want ErrEncodingDetect", err)
	}
}

func TestResolveBOMThenGarbage(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, 0xFF, 0xFE)
	_, err := Resolve(in)
	if !errors.Is(err, ErrEncodingDetect) {
		t.Fatalf("err = %v, want ErrEncodingDetect", err)
	}
}

func TestResolveEmpty(t *testing.T) {
	doc, err := Resolve(nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Text != "" || doc.Encoding != EncodingUTF8 {
		t.Errorf("got %+v", doc)
	}
}
