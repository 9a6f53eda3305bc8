package service_interfaces

import (
	"context"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/commons"
)

type ProfileService interface {
	CreateProfile(ctx context.Context, req models.CreateProfileRequest) (commons.Response[models.ProfileResponse], error)
	GetProfile(ctx context.Context, profileID int64) (commons.Response[models.ProfileResponse], error)
}
