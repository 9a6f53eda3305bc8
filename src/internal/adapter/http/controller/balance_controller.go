package controller

import (
	"encoding/json"
	"net/http"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/middleware"
	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/commons"
	"github.com/api-sage/freelance-billing/src/internal/usecase/service_interfaces"
)

type BalanceController struct {
	service service_interfaces.BalanceService
}

func NewBalanceController(service service_interfaces.BalanceService) *BalanceController {
	return &BalanceController{service: service}
}

func (c *BalanceController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(c.deposit))
	if authMiddleware != nil {
		handler = authMiddleware(handler)
	}
	mux.Handle("/balances/deposit", handler)
}

func (c *BalanceController) deposit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.DepositResponse]("method not allowed"))
		return
	}

	caller, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.DepositResponse]("unauthorized"))
		return
	}

	var req models.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.DepositResponse]("invalid request body", err.Error()))
		return
	}

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.DepositResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.DepositFunds(r.Context(), caller, req)
	if err != nil {
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
