package gridstore

import (
	"testing"

	excelize "github.com/xuri/excelize/v2"

	"statement-import-service/internal/importer/model"
)

func newTestStore(t *testing.T, sheets ...string) *ExcelStore {
	t.Helper()
	f := excelize.NewFile()
	for _, s := range sheets {
		if _, err := f.NewSheet(s); err != nil {
			t.Fatal(err)
		}
	}
	t.Cleanup(func() { f.Close() })
	return NewExcelStore(f)
}

func TestSheetExists(t *testing.T) {
	s := newTestStore(t, "6月")
	if !s.SheetExists("6月") {
		t.Error("6月 should exist")
	}
	if s.SheetExists("13月") {
		t.Error("13月 should not exist")
	}
}

func TestWriteRowsVariants(t *testing.T) {
	s := newTestStore(t, "6月")
	rows := [][]model.CellValue{
		{model.StringCell("enavi202506(3034).csv"), model.NullCell()},
		{model.StringCell("ローソン"), model.NumberCell(480), model.BoolCell(true)},
	}
	if err := s.WriteRows("6月", 4, 1, rows); err != nil {
		t.Fatal(err)
	}

	get := func(cell string) string {
		v, err := s.f.GetCellValue("6月", cell)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}
	if got := get("A4"); got != "enavi202506(3034).csv" {
		t.Errorf("A4 = %q", got)
	}
	if got := get("B4"); got != "" {
		t.Errorf("B4 = %q, want empty", got)
	}
	if got := get("A5"); got != "ローソン" {
		t.Errorf("A5 = %q", got)
	}
	if got := get("B5"); got != "480" {
		t.Errorf("B5 = %q", got)
	}
	if got := get("C5"); got != "TRUE" {
		t.Errorf("C5 = %q", got)
	}
}

func TestClearRegion(t *testing.T) {
	s := newTestStore(t, "6月")
	if err := s.WriteRows("6月", 4, 1, [][]model.CellValue{
		{model.StringCell("old"), model.NumberCell(1)},
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearRegion("6月", 4, 10, 1, 12); err != nil {
		t.Fatal(err)
	}
	v, err := s.f.GetCellValue("6月", "A4")
	if err != nil {
		t.Fatal(err)
	}
	if v != "" {
		t.Errorf("A4 = %q after clear", v)
	}
}
