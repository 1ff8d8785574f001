package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"statement-import-service/internal/config"
	"statement-import-service/internal/gridstore"
	"statement-import-service/internal/importer/model"
	impSvc "statement-import-service/internal/importer/service"
)

type importResponse struct {
	Files    int      `json:"files"`
	Warnings []string `json:"warnings"`
}

// Import accepts a multipart batch of statement CSV files ("files" field,
// repeated) and writes them into the configured workbook. The workbook is
// saved before the response goes out, so files that did land stay landed
// even when the batch reports warnings.
func Import(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logger
		if rid := r.Header.Get("X-Request-ID"); rid != "" {
			log = logger.With().Str("req_id", rid).Logger()
		}
		defer r.Body.Close()

		store, err := gridstore.OpenExcel(cfg.WorkbookPath)
		if err != nil {
			http.Error(w, "workbook: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer store.Close()

		imp := impSvc.New(store, log, cfg.SelectTimeout())

		// body read runs aside so the selection deadline covers slow clients
		src := make(chan impSvc.Selection, 1)
		go func() {
			files, err := readBatch(r, int64(cfg.MaxUploadMB)<<20)
			src <- impSvc.Selection{Files: files, Err: err}
		}()

		files, err := imp.CollectFiles(r.Context(), src)
		if err != nil {
			code := http.StatusBadRequest
			if errors.Is(err, model.ErrSelectionTimeout) {
				code = http.StatusRequestTimeout
			}
			http.Error(w, err.Error(), code)
			return
		}

		runErr := imp.Run(files)
		if err := store.Save(); err != nil {
			log.Error().Err(err).Msg("workbook save")
			http.Error(w, "workbook save: "+err.Error(), http.StatusInternalServerError)
			return
		}

		resp := importResponse{Files: len(files), Warnings: []string{}}
		status := http.StatusOK
		if runErr != nil {
			var be model.BatchError
			if !errors.As(runErr, &be) {
				http.Error(w, runErr.Error(), http.StatusInternalServerError)
				return
			}
			for _, warn := range be {
				resp.Warnings = append(resp.Warnings, warn.String())
			}
			status = http.StatusUnprocessableEntity
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)

		log.Info().
			Int("files", len(files)).
			Int("warnings", len(resp.Warnings)).
			Dur("elapsed", time.Since(start)).
			Msg("import done")
	}
}

// readBatch pulls the uploaded files out of the multipart body, in field
// order (= user selection order).
func readBatch(r *http.Request, maxMem int64) ([]model.RawFile, error) {
	if err := r.ParseMultipartForm(maxMem); err != nil {
		return nil, err
	}
	var files []model.RawFile
	for _, fh := range r.MultipartForm.File["files"] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		b, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, model.RawFile{Name: fh.Filename, Bytes: b})
	}
	return files, nil
}
