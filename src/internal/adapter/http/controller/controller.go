package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/api-sage/freelance-billing/src/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func statusForError(err error, responseMessage string) int {
	if responseMessage == "validation failed" {
		return http.StatusBadRequest
	}

	var limitErr *domain.DepositLimitError
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrJobAlreadyPaid):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.As(err, &limitErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
