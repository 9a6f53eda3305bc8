package repo_interfaces

import (
	"context"
	"time"

	"github.com/api-sage/freelance-billing/src/internal/domain"
)

type ReportRepository interface {
	// BestProfession returns the profession that earned the most from jobs
	// paid in [start, end).
	BestProfession(ctx context.Context, start, end time.Time) (domain.ProfessionEarnings, error)
	// BestClients returns the clients that paid the most for jobs in
	// [start, end), highest spender first.
	BestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientSpend, error)
}
