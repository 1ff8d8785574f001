package gridstore

import (
	excelize "github.com/xuri/excelize/v2"

	"statement-import-service/internal/importer/model"
)

// ExcelStore is the production Store: an excelize workbook on disk. Writes
// accumulate in memory; Save persists them once per import request.
type ExcelStore struct {
	f    *excelize.File
	path string
}

func OpenExcel(path string) (*ExcelStore, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &ExcelStore{f: f, path: path}, nil
}

// NewExcelStore wraps an already-open workbook (tests, in-memory use).
func NewExcelStore(f *excelize.File) *ExcelStore {
	return &ExcelStore{f: f}
}

func (s *ExcelStore) SheetExists(sheet string) bool {
	idx, err := s.f.GetSheetIndex(sheet)
	return err == nil && idx >= 0
}

func (s *ExcelStore) ClearRegion(sheet string, top, bottom, left, right int) error {
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return err
			}
			if err := s.f.SetCellValue(sheet, cell, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *ExcelStore) WriteRows(sheet string, topRow, leftCol int, rows [][]model.CellValue) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(leftCol, topRow+i)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for j, c := range row {
			values[j] = c.Value()
		}
		if err := s.f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExcelStore) Save() error {
	if s.path == "" {
		return nil
	}
	return s.f.Save()
}

func (s *ExcelStore) Close() error { return s.f.Close() }
