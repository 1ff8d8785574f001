// Package gridstore abstracts the spreadsheet the importer writes through.
package gridstore

import "statement-import-service/internal/importer/model"

// Store is the grid collaborator. Calls are batched per logical operation;
// implementations must not assume cell-granular calls are cheap for the
// caller, and callers never issue them.
type Store interface {
	SheetExists(sheet string) bool
	// ClearRegion wipes the rectangle [top,bottom] x [left,right], 1-based
	// inclusive on both axes.
	ClearRegion(sheet string, top, bottom, left, right int) error
	// WriteRows writes rows with the top-left cell at (topRow, leftCol).
	WriteRows(sheet string, topRow, leftCol int, rows [][]model.CellValue) error
}
