package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	xls "github.com/extrame/xls"
	excelize "github.com/xuri/excelize/v2"
)

// ReadRows loads a tabular file as raw rows, choosing the parser by
// extension. CSV goes through encoding resolution; XLSX and legacy XLS are
// read from their first sheet. Used for keyword dictionaries, which come in
// whatever format the user happens to keep them in.
func ReadRows(r io.Reader, filename string) ([][]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		doc, err := Resolve(b)
		if err != nil {
			return nil, err
		}
		t := ParseTable(doc.Text, ParseOptions{SkipEmpty: SkipGreedy})
		return t.Rows, nil
	case ".xlsx":
		return readXLSXRows(b)
	case ".xls":
		return readXLSRows(b)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

func readXLSXRows(b []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetRows(f.GetSheetName(0))
}

func readXLSRows(b []byte) ([][]string, error) {
	// old exports are usually Shift-JIS inside, sometimes UTF-8
	var wb *xls.WorkBook
	var lastErr error
	for _, cs := range []string{"utf-8", "shift_jis"} {
		w, err := xls.OpenReader(bytes.NewReader(b), cs)
		if err == nil && w != nil {
			wb, lastErr = w, nil
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	// Row.LastCol is unreliable on ragged sheets; probe the real width first.
	maxCols := xlsWidth(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cols := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = strings.TrimSpace(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}
	return rows, nil
}

func xlsWidth(sheet *xls.WorkSheet) int {
	const probeMax = 64
	maxCols := 1
	for i := 0; i <= int(sheet.MaxRow); i++ {
		r := sheet.Row(i)
		if r == nil {
			continue
		}
		for j := 0; j < probeMax; j++ {
			if strings.TrimSpace(r.Col(j)) != "" && j+1 > maxCols {
				maxCols = j + 1
			}
		}
	}
	return maxCols
}
