package handlers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"statement-import-service/internal/category"
	"statement-import-service/internal/fileio"
)

// Categorize tags each row of an uploaded CSV ("file") with a label from a
// keyword dictionary ("dict", CSV/XLSX/XLS, two columns: keyword, category).
// The match runs against the cell in "column" (1-based, default 1); first
// matching keyword wins. The tagged table comes back as CSV with the
// category appended as a new last column.
func Categorize(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, ok := readCSVUpload(w, r)
		if !ok {
			return
		}

		df, dh, err := r.FormFile("dict")
		if err != nil {
			http.Error(w, "missing dict: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer df.Close()
		dictRows, err := fileio.ReadRows(df, dh.Filename)
		if err != nil {
			http.Error(w, "failed to read dict: "+err.Error(), http.StatusBadRequest)
			return
		}
		dict := category.FromRows(dictRows)
		if len(dict) == 0 {
			http.Error(w, "dictionary has no entries", http.StatusBadRequest)
			return
		}

		col := 1
		if v := r.FormValue("column"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 1 {
				col = n
			}
		}

		writeCSV(w, logger, dict.Tag(rows, col-1))
	}
}
