package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DeleteLink обрабатывает DELETE /api/links/{code}
func (h *Handler) DeleteLink(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	if err := h.usecase.DeleteLink(req.Context(), code); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
