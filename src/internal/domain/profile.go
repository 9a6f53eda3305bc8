package domain

import "time"

type ProfileRole string

const (
	ProfileRoleClient     ProfileRole = "client"
	ProfileRoleContractor ProfileRole = "contractor"
)

// Profile is a marketplace participant. Balance is held as the exact
// string form of a NUMERIC(14,2) column; only the deposit and settlement
// operations mutate it, always inside a single transaction.
type Profile struct {
	ID           int64
	Role         ProfileRole
	FirstName    string
	LastName     string
	Profession   string
	PasswordHash string
	Balance      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
