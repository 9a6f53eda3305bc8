package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/api-sage/freelance-billing/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/api-sage/freelance-billing/src/internal/logger"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// LedgerRepository owns the transactional access to profile balances and
// the job/contract ledger. Every unit of work gets its own *sql.Tx,
// acquired at entry and released on every exit path.
type LedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) WithinTx(ctx context.Context, fn func(tx repo_interfaces.LedgerTx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("ledger repository begin tx failed", err, nil)
		return fmt.Errorf("begin ledger transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(&ledgerTx{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.Error("ledger repository commit tx failed", err, nil)
		return fmt.Errorf("commit ledger transaction: %w", err)
	}

	return nil
}

type ledgerTx struct {
	tx *sql.Tx
}

func (t *ledgerTx) ProfileForUpdate(ctx context.Context, profileID int64) (domain.Profile, error) {
	const query = `
SELECT id,
       role,
       first_name,
       last_name,
       profession,
       password_hash,
       balance,
       created_at,
       updated_at
FROM profiles
WHERE id = $1
FOR UPDATE`

	var profile domain.Profile
	if err := t.tx.QueryRowContext(ctx, query, profileID).Scan(
		&profile.ID,
		&profile.Role,
		&profile.FirstName,
		&profile.LastName,
		&profile.Profession,
		&profile.PasswordHash,
		&profile.Balance,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.Profile{}, domain.ErrRecordNotFound
		}
		return domain.Profile{}, fmt.Errorf("lock profile %d: %w", profileID, err)
	}

	return profile, nil
}

func (t *ledgerTx) BalancesForUpdate(ctx context.Context, profileIDs ...int64) (map[int64]decimal.Decimal, error) {
	ids := append([]int64(nil), profileIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// Ascending id lock order keeps concurrent settlements sharing a
	// profile pair from deadlocking.
	const query = `
SELECT id, balance
FROM profiles
WHERE id = ANY($1)
ORDER BY id
FOR UPDATE`

	rows, err := t.tx.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("lock profile balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[int64]decimal.Decimal, len(ids))
	for rows.Next() {
		var id int64
		var balance decimal.Decimal
		if err := rows.Scan(&id, &balance); err != nil {
			return nil, fmt.Errorf("scan profile balance: %w", err)
		}
		balances[id] = balance
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profile balances: %w", err)
	}

	for _, id := range profileIDs {
		if _, ok := balances[id]; !ok {
			return nil, domain.ErrRecordNotFound
		}
	}

	return balances, nil
}

func (t *ledgerTx) UnpaidTotalForClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	// NULL and FALSE paid flags are both unpaid, hence IS NOT TRUE.
	const query = `
SELECT COALESCE(SUM(j.price), 0)
FROM jobs j
JOIN contracts c ON c.id = j.contract_id
WHERE c.client_id = $1
  AND c.status = 'in_progress'
  AND j.paid IS NOT TRUE`

	var total decimal.Decimal
	if err := t.tx.QueryRowContext(ctx, query, clientID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum unpaid jobs for client %d: %w", clientID, err)
	}

	return total, nil
}

func (t *ledgerTx) JobForSettlement(ctx context.Context, jobID int64) (domain.JobClaim, error) {
	const query = `
SELECT j.id,
       j.contract_id,
       j.price,
       j.paid,
       c.client_id,
       c.contractor_id
FROM jobs j
JOIN contracts c ON c.id = j.contract_id
WHERE j.id = $1
FOR UPDATE OF j`

	var claim domain.JobClaim
	var paid sql.NullBool
	if err := t.tx.QueryRowContext(ctx, query, jobID).Scan(
		&claim.JobID,
		&claim.ContractID,
		&claim.Price,
		&paid,
		&claim.ClientID,
		&claim.ContractorID,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.JobClaim{}, domain.ErrRecordNotFound
		}
		return domain.JobClaim{}, fmt.Errorf("lock job %d: %w", jobID, err)
	}

	var paidFlag *bool
	if paid.Valid {
		paidFlag = &paid.Bool
	}
	claim.PaymentStatus = domain.NormalizePaidFlag(paidFlag)

	return claim, nil
}

func (t *ledgerTx) CreditBalance(ctx context.Context, profileID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
UPDATE profiles
SET balance = balance + $2::numeric,
    updated_at = NOW()
WHERE id = $1
RETURNING balance`

	var balance decimal.Decimal
	if err := t.tx.QueryRowContext(ctx, query, profileID, amount).Scan(&balance); err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, domain.ErrRecordNotFound
		}
		return decimal.Zero, fmt.Errorf("credit profile %d: %w", profileID, err)
	}

	return balance, nil
}

func (t *ledgerTx) DebitBalance(ctx context.Context, profileID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
UPDATE profiles
SET balance = balance - $2::numeric,
    updated_at = NOW()
WHERE id = $1
  AND balance >= $2::numeric
RETURNING balance`

	var balance decimal.Decimal
	if err := t.tx.QueryRowContext(ctx, query, profileID, amount).Scan(&balance); err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, domain.ErrInsufficientBalance
		}
		return decimal.Zero, fmt.Errorf("debit profile %d: %w", profileID, err)
	}

	return balance, nil
}

func (t *ledgerTx) MarkJobPaid(ctx context.Context, jobID int64) (time.Time, error) {
	const query = `
UPDATE jobs
SET paid = TRUE,
    payment_date = NOW(),
    updated_at = NOW()
WHERE id = $1
  AND paid IS NOT TRUE
RETURNING payment_date`

	var paymentDate time.Time
	if err := t.tx.QueryRowContext(ctx, query, jobID).Scan(&paymentDate); err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, domain.ErrJobAlreadyPaid
		}
		return time.Time{}, fmt.Errorf("mark job %d paid: %w", jobID, err)
	}

	return paymentDate, nil
}
