package service

import (
	"math"
	"strconv"
	"strings"

	"statement-import-service/internal/importer/model"
)

// Destination sheet layout: rows 1-3 are headings, data starts at row 4 and
// the region ends at row 200. Each file gets one marker row followed by its
// data rows, normalized to 12 columns.
const (
	startRow    = 4
	capacityRow = 200
	maxCols     = 12
)

// planPlacement reserves the write window for one file against the month
// cursor. Returns the plan, the number of data rows that fit, and whether
// the destination region must be cleared before writing (first placement for
// this key). The cursor ends on the last written row and only ever moves
// forward; on error it is left untouched.
func planPlacement(cur *model.Cursor, dataRows int) (model.Plan, int, bool, error) {
	if dataRows <= 0 {
		return model.Plan{}, 0, false, model.ErrEmptyInput
	}
	marker := startRow
	if cur.Cleared {
		marker = cur.Row + 1
	}
	if marker > capacityRow {
		return model.Plan{}, 0, false, model.ErrCapacity
	}
	clear := !cur.Cleared
	written := dataRows
	truncated := false
	if marker+written > capacityRow {
		written = capacityRow - marker
		truncated = true
	}
	end := marker + written
	cur.Row = end
	cur.Cleared = true
	return model.Plan{StartRow: marker, EndRow: end, Truncated: truncated}, written, clear, nil
}

// normalizeColumns pads or cuts a ragged row to exactly maxCols cells.
func normalizeColumns(fields []string) []model.CellValue {
	out := make([]model.CellValue, maxCols)
	for i := range out {
		if i < len(fields) {
			out[i] = cellValue(fields[i])
		} else {
			out[i] = model.StringCell("")
		}
	}
	return out
}

// cellValue types a raw CSV field for the grid store. Plain decimal numbers
// become numeric cells; codes with leading zeros stay strings so the grid
// does not mangle them.
func cellValue(s string) model.CellValue {
	t := strings.TrimSpace(s)
	if t == "" {
		return model.StringCell(s)
	}
	if len(t) > 1 && t[0] == '0' && !strings.HasPrefix(t, "0.") {
		return model.StringCell(s)
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return model.StringCell(s)
	}
	return model.NumberCell(f)
}

// markerRow builds the file-identifier row written above a file's data.
func markerRow(name string) []model.CellValue {
	row := make([]model.CellValue, maxCols)
	row[0] = model.StringCell(name)
	for i := 1; i < maxCols; i++ {
		row[i] = model.NullCell()
	}
	return row
}
