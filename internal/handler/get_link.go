package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetLink обрабатывает GET /api/links/{code}: возвращает запись
// с коротким URL, не меняя счётчик посещений
func (h *Handler) GetLink(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	view, err := h.usecase.GetLink(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}
