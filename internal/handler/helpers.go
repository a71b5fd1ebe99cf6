package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/link-registry/internal/usecase"
	"go.uber.org/zap"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// handleError транслирует ошибки usecase в HTTP-статусы.
// Неизвестные ошибки логируются и отдаются как 500 без деталей.
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var verr *usecase.ValidationError

	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: verr.Fields,
		})
	case errors.Is(err, usecase.ErrCodeTaken):
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "code already exists",
		})
	case errors.Is(err, usecase.ErrNothingToExport):
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "no links to export",
		})
	case errors.Is(err, usecase.ErrLinkNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		h.logger.Error("internal error", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
