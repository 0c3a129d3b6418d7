package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Kaanops/wishfulfill.github.io/internal/gateway"
	"github.com/Kaanops/wishfulfill.github.io/internal/repository"
	"github.com/Kaanops/wishfulfill.github.io/internal/services"
	"github.com/Kaanops/wishfulfill.github.io/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// writeError maps service errors onto HTTP statuses: validation 422,
// not found 404, repeated execution 409, gateway and everything else
// 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: err.Error()})
	case errors.Is(err, repository.ErrAlreadyProcessed):
		writeJSON(w, http.StatusConflict, errorResponse{Detail: err.Error()})
	default:
		var gwErr *gateway.Error
		if errors.As(err, &gwErr) {
			logger.Log.WithError(err).Error("Payment gateway failure")
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
	}
}
