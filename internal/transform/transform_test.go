package transform

import (
	"reflect"
	"testing"
)

func TestNarrow(t *testing.T) {
	in := [][]string{
		{"ＡＢＣ１２３", "テスト"},
		{"half stays", "１，０００円"},
	}
	got := Narrow(in)
	if got[0][0] != "ABC123" {
		t.Errorf("got %q", got[0][0])
	}
	if got[0][1] != "ﾃｽﾄ" {
		t.Errorf("katakana: got %q", got[0][1])
	}
	if got[1][0] != "half stays" {
		t.Errorf("ascii changed: %q", got[1][0])
	}
	// input untouched
	if in[0][0] != "ＡＢＣ１２３" {
		t.Error("input mutated")
	}
}

func TestReplaceAll(t *testing.T) {
	in := [][]string{{"foo-001", "bar-002"}, {"baz"}}
	got, err := ReplaceAll(in, `-(\d+)`, "#$1")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"foo#001", "bar#002"}, {"baz"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReplaceAllBadPattern(t *testing.T) {
	if _, err := ReplaceAll(nil, `(`, ""); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestRemoveBlankRows(t *testing.T) {
	in := [][]string{
		{"a", "b"},
		{"", "  "},
		{""},
		{"", "c"},
	}
	got := RemoveBlankRows(in)
	want := [][]string{{"a", "b"}, {"", "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
