package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type DepositRequest struct {
	ProfileID int64           `json:"profileId"`
	Amount    decimal.Decimal `json:"amount"`
}

// Validate rounds the requested amount to two fractional digits and
// requires it to stay strictly positive afterwards.
func (r DepositRequest) Validate() error {
	var errs []string

	if r.ProfileID <= 0 {
		errs = append(errs, "profileId must be a positive identifier")
	}
	if !r.Amount.Round(2).IsPositive() {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type DepositResponse struct {
	ProfileID    int64  `json:"profileId"`
	Reference    string `json:"reference"`
	Amount       string `json:"amount"`
	DepositLimit string `json:"depositLimit"`
	NewBalance   string `json:"newBalance"`
}
