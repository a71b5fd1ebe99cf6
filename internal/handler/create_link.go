package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/link-registry/internal/usecase"
	"go.uber.org/zap"
)

// CreateLink обрабатывает POST /api/links
func (h *Handler) CreateLink(w http.ResponseWriter, req *http.Request) {
	var request CreateLinkRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	view, err := h.usecase.CreateLink(req.Context(), usecase.CreateLinkInput{
		OriginalURL: request.OriginalURL,
		Code:        request.Code,
		CustomName:  request.CustomName,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, CreateLinkResponse{
		ID:       view.ID,
		Code:     view.Code,
		ShortURL: view.ShortURL,
	})
}
