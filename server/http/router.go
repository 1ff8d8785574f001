package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"statement-import-service/internal/config"
	impHnd "statement-import-service/internal/importer/handler"
	"statement-import-service/internal/middleware"
	"statement-import-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	// batch statement import into the workbook
	r.Post("/import", impHnd.Import(cfg, logger))

	// cell utilities over uploaded CSV data
	r.Post("/categorize", handlers.Categorize(logger))
	r.Route("/transform", func(r chi.Router) {
		r.Post("/narrow", handlers.Narrow(logger))
		r.Post("/replace", handlers.Replace(logger))
		r.Post("/compact", handlers.Compact(logger))
	})

	return r
}
