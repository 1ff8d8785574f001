package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"statement-import-service/internal/fileio"
	"statement-import-service/internal/gridstore"
	"statement-import-service/internal/importer/model"
)

// Importer runs statement import batches against a grid store.
type Importer struct {
	store gridstore.Store
	log   zerolog.Logger
	wait  time.Duration // file selection deadline
}

func New(store gridstore.Store, log zerolog.Logger, wait time.Duration) *Importer {
	return &Importer{store: store, log: log, wait: wait}
}

// Selection is one delivery from the file selection source.
type Selection struct {
	Files []model.RawFile
	Err   error
}

// CollectFiles waits for the selection source to deliver a batch. Nothing
// within the deadline, or context cancellation, aborts the whole batch
// before any file is processed.
func (imp *Importer) CollectFiles(ctx context.Context, src <-chan Selection) ([]model.RawFile, error) {
	t := time.NewTimer(imp.wait)
	defer t.Stop()
	select {
	case sel := <-src:
		if sel.Err != nil {
			return nil, sel.Err
		}
		return sel.Files, nil
	case <-t.C:
		return nil, model.ErrSelectionTimeout
	case <-ctx.Done():
		return nil, model.ErrSelectionCancelled
	}
}

// Run processes files strictly one at a time, in selection order. Per-file
// failures are downgraded to warnings and the loop moves on; after every file
// has been attempted, a non-empty warning list comes back as one aggregate
// BatchError, one warning per line.
func (imp *Importer) Run(files []model.RawFile) error {
	cursors := make(map[int]*model.Cursor)
	var warns model.BatchError
	warn := func(name, msg string) {
		warns = append(warns, model.Warning{File: name, Message: msg})
		imp.log.Warn().Str("file", name).Msg(msg)
	}

	for _, f := range files {
		doc, err := fileio.Resolve(f.Bytes)
		if err != nil {
			warn(f.Name, err.Error())
			continue
		}
		table := fileio.ParseTable(doc.Text, fileio.ParseOptions{
			HeaderPresent: true,
			SkipEmpty:     fileio.SkipGreedy,
		})
		for _, w := range table.Warnings {
			warn(f.Name, w)
		}

		month, ok := Route(f.Name)
		if !ok {
			warn(f.Name, "no routing key in file name: skipped")
			continue
		}
		sheet := sheetName(month)
		if !imp.store.SheetExists(sheet) {
			warn(f.Name, fmt.Sprintf("sheet %s not found: skipped", sheet))
			continue
		}

		cur := cursors[month]
		if cur == nil {
			cur = &model.Cursor{}
			cursors[month] = cur
		}
		data := table.DataRows()
		plan, written, clear, err := planPlacement(cur, len(data))
		switch {
		case errors.Is(err, model.ErrEmptyInput):
			warn(f.Name, "no data rows: skipped")
			continue
		case errors.Is(err, model.ErrCapacity):
			warn(f.Name, fmt.Sprintf("sheet %s is full: skipped", sheet))
			continue
		case err != nil:
			warn(f.Name, err.Error())
			continue
		}

		if clear {
			if err := imp.store.ClearRegion(sheet, startRow, capacityRow, 1, maxCols); err != nil {
				warn(f.Name, "clear failed: "+err.Error())
				continue
			}
		}
		rows := make([][]model.CellValue, 0, written+1)
		rows = append(rows, markerRow(f.Name))
		for i := 0; i < written; i++ {
			rows = append(rows, normalizeColumns(data[i]))
		}
		if err := imp.store.WriteRows(sheet, plan.StartRow, 1, rows); err != nil {
			warn(f.Name, "write failed: "+err.Error())
			continue
		}
		if plan.Truncated {
			warn(f.Name, fmt.Sprintf("truncated at row %d: wrote %d of %d data rows", capacityRow, written, len(data)))
		}
		imp.log.Info().
			Str("file", f.Name).
			Str("encoding", doc.Encoding).
			Str("sheet", sheet).
			Int("rows", written).
			Bool("truncated", plan.Truncated).
			Msg("placed")
	}

	if len(warns) > 0 {
		return warns
	}
	return nil
}

// sheetName maps a routing month to its destination sheet.
func sheetName(month int) string { return strconv.Itoa(month) + "月" }
