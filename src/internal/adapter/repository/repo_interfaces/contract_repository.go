package repo_interfaces

import (
	"context"

	"github.com/api-sage/freelance-billing/src/internal/domain"
)

type ContractRepository interface {
	GetByID(ctx context.Context, contractID int64) (domain.Contract, error)
	// ListForProfile returns the non-terminated contracts the profile is a
	// party to, on either side.
	ListForProfile(ctx context.Context, profileID int64) ([]domain.Contract, error)
}
