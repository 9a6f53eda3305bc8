package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/freelance-billing/src/internal/commons"
	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/api-sage/freelance-billing/src/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

type ProfileService struct {
	profileRepo repo_interfaces.ProfileRepository
}

func NewProfileService(profileRepo repo_interfaces.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) CreateProfile(ctx context.Context, req models.CreateProfileRequest) (commons.Response[models.ProfileResponse], error) {
	logger.Info("profile service create profile request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("profile service create profile validation failed", err, nil)
		return commons.ErrorResponse[models.ProfileResponse]("validation failed", err.Error()), err
	}

	passwordHash, err := hashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		logger.Error("profile service create profile hash password failed", err, nil)
		return commons.ErrorResponse[models.ProfileResponse]("failed to create profile", "failed to hash password"), err
	}

	profile := domain.Profile{
		Role:         domain.ProfileRole(strings.ToLower(strings.TrimSpace(req.Role))),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Profession:   strings.TrimSpace(req.Profession),
		PasswordHash: passwordHash,
		Balance:      req.InitialBalance.Round(2).StringFixed(2),
	}

	created, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		logger.Error("profile service create profile repository failed", err, nil)
		return commons.ErrorResponse[models.ProfileResponse]("failed to create profile", "Unable to create profile right now"), err
	}

	response := mapProfileToResponse(created)

	logger.Info("profile service create profile success", logger.Fields{
		"profileId": response.ID,
		"role":      response.Role,
	})

	return commons.SuccessResponse("profile created successfully", response), nil
}

func (s *ProfileService) GetProfile(ctx context.Context, profileID int64) (commons.Response[models.ProfileResponse], error) {
	logger.Info("profile service get profile request", logger.Fields{
		"profileId": profileID,
	})

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.ProfileResponse]("Profile not found"), err
		}
		logger.Error("profile service get profile failed", err, logger.Fields{
			"profileId": profileID,
		})
		return commons.ErrorResponse[models.ProfileResponse]("failed to get profile", "Unable to fetch profile right now"), err
	}

	return commons.SuccessResponse("profile retrieved", mapProfileToResponse(profile)), nil
}

func mapProfileToResponse(profile domain.Profile) models.ProfileResponse {
	return models.ProfileResponse{
		ID:         profile.ID,
		Role:       string(profile.Role),
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Profession: profile.Profession,
		Balance:    profile.Balance,
		CreatedAt:  profile.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  profile.UpdatedAt.Format(time.RFC3339),
	}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
