package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterVisit обрабатывает POST /api/links/{code}/visit:
// увеличивает счётчик без редиректа
func (h *Handler) RegisterVisit(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	if err := h.usecase.RegisterVisit(req.Context(), code); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, VisitResponse{Success: true})
}
