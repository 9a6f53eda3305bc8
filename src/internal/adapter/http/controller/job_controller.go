package controller

import (
	"encoding/json"
	"net/http"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/middleware"
	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/commons"
	"github.com/api-sage/freelance-billing/src/internal/usecase/service_interfaces"
)

type JobController struct {
	service service_interfaces.JobService
}

func NewJobController(service service_interfaces.JobService) *JobController {
	return &JobController{service: service}
}

func (c *JobController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	payHandler := http.Handler(http.HandlerFunc(c.payJob))
	listHandler := http.Handler(http.HandlerFunc(c.listUnpaid))
	if authMiddleware != nil {
		payHandler = authMiddleware(payHandler)
		listHandler = authMiddleware(listHandler)
	}
	mux.Handle("/jobs/pay", payHandler)
	mux.Handle("/jobs/unpaid", listHandler)
}

func (c *JobController) payJob(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.PayJobResponse]("method not allowed"))
		return
	}

	caller, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.PayJobResponse]("unauthorized"))
		return
	}

	var req models.PayJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.PayJobResponse]("invalid request body", err.Error()))
		return
	}

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.PayJobResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.PayJob(r.Context(), caller, req)
	if err != nil {
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *JobController) listUnpaid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[[]models.JobResponse]("method not allowed"))
		return
	}

	caller, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[[]models.JobResponse]("unauthorized"))
		return
	}

	response, err := c.service.ListUnpaidJobs(r.Context(), caller)
	if err != nil {
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
