package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Redirect обрабатывает GET /{code}: атомарно увеличивает счётчик
// и отправляет постоянный редирект на оригинальный URL
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	originalURL, err := h.usecase.ResolveRedirect(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, originalURL, http.StatusMovedPermanently)
}
