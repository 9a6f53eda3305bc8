package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/api-sage/freelance-billing/src/internal/logger"
)

type ContractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) GetByID(ctx context.Context, contractID int64) (domain.Contract, error) {
	const query = `
SELECT id,
       client_id,
       contractor_id,
       terms,
       status,
       created_at,
       updated_at
FROM contracts
WHERE id = $1`

	var contract domain.Contract
	if err := r.db.QueryRowContext(ctx, query, contractID).Scan(
		&contract.ID,
		&contract.ClientID,
		&contract.ContractorID,
		&contract.Terms,
		&contract.Status,
		&contract.CreatedAt,
		&contract.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.Contract{}, domain.ErrRecordNotFound
		}
		logger.Error("contract repository get failed", err, logger.Fields{
			"contractId": contractID,
		})
		return domain.Contract{}, fmt.Errorf("get contract: %w", err)
	}

	return contract, nil
}

func (r *ContractRepository) ListForProfile(ctx context.Context, profileID int64) ([]domain.Contract, error) {
	const query = `
SELECT id,
       client_id,
       contractor_id,
       terms,
       status,
       created_at,
       updated_at
FROM contracts
WHERE (client_id = $1 OR contractor_id = $1)
  AND status <> 'terminated'
ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		logger.Error("contract repository list failed", err, logger.Fields{
			"profileId": profileID,
		})
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	contracts := make([]domain.Contract, 0)
	for rows.Next() {
		var contract domain.Contract
		if err := rows.Scan(
			&contract.ID,
			&contract.ClientID,
			&contract.ContractorID,
			&contract.Terms,
			&contract.Status,
			&contract.CreatedAt,
			&contract.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		contracts = append(contracts, contract)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contracts: %w", err)
	}

	return contracts, nil
}
