package controller

import (
	"encoding/json"
	"net/http"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/middleware"
	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/commons"
	"github.com/api-sage/freelance-billing/src/internal/usecase/service_interfaces"
)

type ProfileController struct {
	service service_interfaces.ProfileService
}

func NewProfileController(service service_interfaces.ProfileService) *ProfileController {
	return &ProfileController{service: service}
}

func (c *ProfileController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	// Registration stays open; the caller has no profile yet.
	mux.Handle("/profiles", http.HandlerFunc(c.createProfile))

	meHandler := http.Handler(http.HandlerFunc(c.getOwnProfile))
	if authMiddleware != nil {
		meHandler = authMiddleware(meHandler)
	}
	mux.Handle("/profiles/me", meHandler)
}

func (c *ProfileController) createProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.ProfileResponse]("method not allowed"))
		return
	}

	var req models.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.ProfileResponse]("invalid request body", err.Error()))
		return
	}

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.ProfileResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.CreateProfile(r.Context(), req)
	if err != nil {
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *ProfileController) getOwnProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.ProfileResponse]("method not allowed"))
		return
	}

	caller, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.ProfileResponse]("unauthorized"))
		return
	}

	response, err := c.service.GetProfile(r.Context(), caller.ID)
	if err != nil {
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
