package category

import (
	"reflect"
	"testing"
)

func dict() Dictionary {
	return FromRows([][]string{
		{"keyword", "category"}, // header passes through as an entry, harmless in tests below
		{"ローソン", "コンビニ"},
		{"セブン", "コンビニ"},
		{"書店", "本"},
		{"", "ignored"},
		{"short"},
	})
}

func TestFromRowsSkipsBadRows(t *testing.T) {
	d := dict()
	if len(d) != 4 {
		t.Fatalf("entries = %d, want 4", len(d))
	}
}

func TestMatchFirstWins(t *testing.T) {
	d := Dictionary{
		{Keyword: "店", Category: "first"},
		{Keyword: "書店", Category: "second"},
	}
	got, ok := d.Match("丸善書店")
	if !ok || got != "first" {
		t.Errorf("got (%q, %v), want (first, true)", got, ok)
	}
}

func TestMatchMiss(t *testing.T) {
	if got, ok := dict().Match("ガソリンスタンド"); ok || got != "" {
		t.Errorf("got (%q, %v)", got, ok)
	}
}

func TestTagAppendsColumn(t *testing.T) {
	rows := [][]string{
		{"2025/06/01", "ローソン渋谷", "480"},
		{"2025/06/02", "丸善書店", "1200"},
		{"2025/06/03", "不明な店", "50"},
		{"shorty"},
	}
	got := dict().Tag(rows, 1)
	want := [][]string{
		{"2025/06/01", "ローソン渋谷", "480", "コンビニ"},
		{"2025/06/02", "丸善書店", "1200", "本"},
		{"2025/06/03", "不明な店", "50", ""},
		{"shorty", ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
