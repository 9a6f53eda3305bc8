package repo_interfaces

import (
	"context"

	"github.com/api-sage/freelance-billing/src/internal/domain"
)

type JobRepository interface {
	// ListUnpaidForProfile returns unpaid jobs under in-progress contracts
	// the profile is a party to.
	ListUnpaidForProfile(ctx context.Context, profileID int64) ([]domain.Job, error)
}
