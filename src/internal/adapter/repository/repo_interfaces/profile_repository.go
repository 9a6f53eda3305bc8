package repo_interfaces

import (
	"context"

	"github.com/api-sage/freelance-billing/src/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile domain.Profile) (domain.Profile, error)
	GetByID(ctx context.Context, profileID int64) (domain.Profile, error)
}
