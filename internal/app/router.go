package app

import (
	"github.com/avc-dev/link-registry/internal/handler"
	"github.com/avc-dev/link-registry/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Gzip(logger))

	r.Get("/ping", h.Ping)

	r.Route("/api/links", func(r chi.Router) {
		r.Post("/", h.CreateLink)
		r.Get("/", h.ListLinks)
		r.Post("/export/csv", h.ExportCSV)
		r.Get("/{code}", h.GetLink)
		r.Post("/{code}/visit", h.RegisterVisit)
		r.Delete("/{code}", h.DeleteLink)
	})

	// Короткие ссылки живут в корне
	r.Get("/{code}", h.Redirect)

	return r
}
