package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/middleware"
	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/commons"
	"github.com/api-sage/freelance-billing/src/internal/usecase/service_interfaces"
)

type ContractController struct {
	service service_interfaces.ContractService
}

func NewContractController(service service_interfaces.ContractService) *ContractController {
	return &ContractController{service: service}
}

func (c *ContractController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(c.contracts))
	if authMiddleware != nil {
		handler = authMiddleware(handler)
	}
	mux.Handle("/contracts", handler)
}

// contracts serves both the single-contract lookup (?id=) and the listing
// of the caller's non-terminated contracts.
func (c *ContractController) contracts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.ContractResponse]("method not allowed"))
		return
	}

	caller, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.ContractResponse]("unauthorized"))
		return
	}

	rawID := strings.TrimSpace(r.URL.Query().Get("id"))
	if rawID == "" {
		response, err := c.service.ListContracts(r.Context(), caller)
		if err != nil {
			writeJSON(w, statusForError(err, response.Message), response)
			return
		}
		writeJSON(w, http.StatusOK, response)
		return
	}

	contractID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.ContractResponse]("validation failed", "id must be a positive identifier"))
		return
	}

	response, err := c.service.GetContract(r.Context(), caller, contractID)
	if err != nil {
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
