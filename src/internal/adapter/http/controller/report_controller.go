package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/commons"
	"github.com/api-sage/freelance-billing/src/internal/usecase/service_interfaces"
)

type ReportController struct {
	service service_interfaces.ReportService
}

func NewReportController(service service_interfaces.ReportService) *ReportController {
	return &ReportController{service: service}
}

func (c *ReportController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	professionHandler := http.Handler(http.HandlerFunc(c.bestProfession))
	clientsHandler := http.Handler(http.HandlerFunc(c.bestClients))
	if authMiddleware != nil {
		professionHandler = authMiddleware(professionHandler)
		clientsHandler = authMiddleware(clientsHandler)
	}
	mux.Handle("/admin/best-profession", professionHandler)
	mux.Handle("/admin/best-clients", clientsHandler)
}

func (c *ReportController) bestProfession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.BestProfessionResponse]("method not allowed"))
		return
	}

	req := rangeRequestFromQuery(r)
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.BestProfessionResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.BestProfession(r.Context(), req)
	if err != nil {
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *ReportController) bestClients(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[[]models.BestClientResponse]("method not allowed"))
		return
	}

	req := rangeRequestFromQuery(r)
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.BestClientResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.BestClients(r.Context(), req)
	if err != nil {
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func rangeRequestFromQuery(r *http.Request) models.ReportRangeRequest {
	req := models.ReportRangeRequest{
		Start: strings.TrimSpace(r.URL.Query().Get("start")),
		End:   strings.TrimSpace(r.URL.Query().Get("end")),
	}
	if rawLimit := strings.TrimSpace(r.URL.Query().Get("limit")); rawLimit != "" {
		if limit, err := strconv.Atoi(rawLimit); err == nil {
			req.Limit = limit
		} else {
			req.Limit = -1
		}
	}
	return req
}
