package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/api-sage/freelance-billing/src/internal/logger"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) ListUnpaidForProfile(ctx context.Context, profileID int64) ([]domain.Job, error) {
	const query = `
SELECT j.id,
       j.contract_id,
       j.description,
       j.price,
       j.paid,
       j.payment_date,
       j.created_at,
       j.updated_at
FROM jobs j
JOIN contracts c ON c.id = j.contract_id
WHERE (c.client_id = $1 OR c.contractor_id = $1)
  AND c.status = 'in_progress'
  AND j.paid IS NOT TRUE
ORDER BY j.id`

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		logger.Error("job repository list unpaid failed", err, logger.Fields{
			"profileId": profileID,
		})
		return nil, fmt.Errorf("list unpaid jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		var job domain.Job
		var paid sql.NullBool
		var paymentDate sql.NullTime
		if err := rows.Scan(
			&job.ID,
			&job.ContractID,
			&job.Description,
			&job.Price,
			&paid,
			&paymentDate,
			&job.CreatedAt,
			&job.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}

		var paidFlag *bool
		if paid.Valid {
			paidFlag = &paid.Bool
		}
		job.PaymentStatus = domain.NormalizePaidFlag(paidFlag)
		if paymentDate.Valid {
			value := paymentDate.Time
			job.PaymentDate = &value
		}

		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}

	return jobs, nil
}
