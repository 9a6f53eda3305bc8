package repo_interfaces

import (
	"context"
	"time"

	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/shopspring/decimal"
)

// LedgerStore opens a unit of work over the balance store and the
// job/contract ledger. The callback runs inside one transaction; any
// error returned from it rolls the whole unit back.
type LedgerStore interface {
	WithinTx(ctx context.Context, fn func(tx LedgerTx) error) error
}

// LedgerTx is the transaction-scoped session the payment core operates
// on. Reads take row locks so a read-check-write sequence is atomic with
// respect to concurrent invocations touching the same rows.
type LedgerTx interface {
	// ProfileForUpdate locks the profile row and returns it.
	ProfileForUpdate(ctx context.Context, profileID int64) (domain.Profile, error)

	// BalancesForUpdate locks the given profile rows in ascending id
	// order and returns their current balances.
	BalancesForUpdate(ctx context.Context, profileIDs ...int64) (map[int64]decimal.Decimal, error)

	// UnpaidTotalForClient sums the prices of the client's unpaid jobs
	// under in-progress contracts, as of this transaction's snapshot.
	UnpaidTotalForClient(ctx context.Context, clientID int64) (decimal.Decimal, error)

	// JobForSettlement locks the job row and returns it joined with the
	// parties of its owning contract.
	JobForSettlement(ctx context.Context, jobID int64) (domain.JobClaim, error)

	CreditBalance(ctx context.Context, profileID int64, amount decimal.Decimal) (decimal.Decimal, error)

	// DebitBalance fails with domain.ErrInsufficientBalance when the
	// guarded update matches no row.
	DebitBalance(ctx context.Context, profileID int64, amount decimal.Decimal) (decimal.Decimal, error)

	// MarkJobPaid transitions a job unpaid -> paid and stamps the payment
	// date; domain.ErrJobAlreadyPaid when the job is no longer unpaid.
	MarkJobPaid(ctx context.Context, jobID int64) (time.Time, error)
}
