package handlers

import (
	"encoding/csv"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"statement-import-service/internal/fileio"
	"statement-import-service/internal/transform"
)

// The transform endpoints take one uploaded CSV ("file" field), apply a cell
// operation and stream CSV back. Parsing keeps empty lines (SkipNone) so row
// positions survive, except for compact whose whole point is dropping them.

// Narrow converts full-width characters to half-width in every cell.
func Narrow(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, ok := readCSVUpload(w, r)
		if !ok {
			return
		}
		writeCSV(w, logger, transform.Narrow(rows))
	}
}

// Replace applies a regex substitution ("pattern", "replacement" fields) to
// every cell.
func Replace(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, ok := readCSVUpload(w, r)
		if !ok {
			return
		}
		out, err := transform.ReplaceAll(rows, r.FormValue("pattern"), r.FormValue("replacement"))
		if err != nil {
			http.Error(w, "bad pattern: "+err.Error(), http.StatusBadRequest)
			return
		}
		writeCSV(w, logger, out)
	}
}

// Compact removes rows whose cells are all blank.
func Compact(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, ok := readCSVUpload(w, r)
		if !ok {
			return
		}
		writeCSV(w, logger, transform.RemoveBlankRows(rows))
	}
}

func readCSVUpload(w http.ResponseWriter, r *http.Request) ([][]string, bool) {
	defer r.Body.Close()
	f, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		http.Error(w, "failed to read file: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	doc, err := fileio.Resolve(b)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	t := fileio.ParseTable(doc.Text, fileio.ParseOptions{SkipEmpty: fileio.SkipNone})
	return t.Rows, true
}

func writeCSV(w http.ResponseWriter, logger zerolog.Logger, rows [][]string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		logger.Error().Err(err).Msg("write csv")
	}
}
