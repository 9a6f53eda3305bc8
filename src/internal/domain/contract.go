package domain

import "time"

type ContractStatus string

const (
	ContractStatusNew        ContractStatus = "new"
	ContractStatusInProgress ContractStatus = "in_progress"
	ContractStatusTerminated ContractStatus = "terminated"
)

// Contract binds exactly one client to one contractor. Only in_progress
// contracts count toward deposit limits and unpaid-job listings.
type Contract struct {
	ID           int64
	ClientID     int64
	ContractorID int64
	Terms        string
	Status       ContractStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
