package handler

import (
	"net/http"
)

// ExportCSV обрабатывает POST /api/links/export/csv:
// выгружает снимок реестра в объектное хранилище
func (h *Handler) ExportCSV(w http.ResponseWriter, req *http.Request) {
	csvURL, err := h.usecase.ExportCSV(req.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, ExportResponse{CSVURL: csvURL})
}
