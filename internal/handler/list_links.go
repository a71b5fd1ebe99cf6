package handler

import (
	"net/http"
)

// ListLinks обрабатывает GET /api/links с параметрами page и pageSize
func (h *Handler) ListLinks(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()

	views, err := h.usecase.ListLinks(req.Context(), query.Get("page"), query.Get("pageSize"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, views)
}
