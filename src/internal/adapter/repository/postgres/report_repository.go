package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/api-sage/freelance-billing/src/internal/logger"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) BestProfession(ctx context.Context, start, end time.Time) (domain.ProfessionEarnings, error) {
	const query = `
SELECT p.profession,
       SUM(j.price) AS total_earned
FROM jobs j
JOIN contracts c ON c.id = j.contract_id
JOIN profiles p ON p.id = c.contractor_id
WHERE j.paid = TRUE
  AND j.payment_date >= $1
  AND j.payment_date < $2
GROUP BY p.profession
ORDER BY total_earned DESC
LIMIT 1`

	var earnings domain.ProfessionEarnings
	if err := r.db.QueryRowContext(ctx, query, start, end).Scan(
		&earnings.Profession,
		&earnings.TotalEarned,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.ProfessionEarnings{}, domain.ErrRecordNotFound
		}
		logger.Error("report repository best profession failed", err, nil)
		return domain.ProfessionEarnings{}, fmt.Errorf("best profession: %w", err)
	}

	return earnings, nil
}

func (r *ReportRepository) BestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientSpend, error) {
	const query = `
SELECT p.id,
       p.first_name || ' ' || p.last_name AS full_name,
       SUM(j.price) AS total_paid
FROM jobs j
JOIN contracts c ON c.id = j.contract_id
JOIN profiles p ON p.id = c.client_id
WHERE j.paid = TRUE
  AND j.payment_date >= $1
  AND j.payment_date < $2
GROUP BY p.id, full_name
ORDER BY total_paid DESC
LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, start, end, limit)
	if err != nil {
		logger.Error("report repository best clients failed", err, nil)
		return nil, fmt.Errorf("best clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.ClientSpend, 0, limit)
	for rows.Next() {
		var spend domain.ClientSpend
		if err := rows.Scan(&spend.ProfileID, &spend.FullName, &spend.TotalPaid); err != nil {
			return nil, fmt.Errorf("scan client spend: %w", err)
		}
		clients = append(clients, spend)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate client spend: %w", err)
	}

	return clients, nil
}
