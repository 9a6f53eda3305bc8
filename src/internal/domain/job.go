package domain

import "time"

type JobPaymentStatus string

const (
	JobUnpaid JobPaymentStatus = "unpaid"
	JobPaid   JobPaymentStatus = "paid"
)

// NormalizePaidFlag folds the legacy nullable paid column into the
// two-valued status: only an explicit TRUE means paid, NULL and FALSE are
// both unpaid.
func NormalizePaidFlag(paid *bool) JobPaymentStatus {
	if paid != nil && *paid {
		return JobPaid
	}
	return JobUnpaid
}

type Job struct {
	ID            int64
	ContractID    int64
	Description   string
	Price         string
	PaymentStatus JobPaymentStatus
	PaymentDate   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// JobClaim is the settlement view of a job read under a row lock: the job
// together with the parties of its owning contract.
type JobClaim struct {
	JobID         int64
	ContractID    int64
	Price         string
	PaymentStatus JobPaymentStatus
	ClientID      int64
	ContractorID  int64
}
