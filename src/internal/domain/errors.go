package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrRecordNotFound = errors.New("record not found")
var ErrForbidden = errors.New("operation is not permitted for this profile")
var ErrInvalidAmount = errors.New("amount must be greater than zero")
var ErrJobAlreadyPaid = errors.New("job has already been paid")
var ErrInsufficientBalance = errors.New("insufficient balance")

// DepositLimitError carries the limit in force so callers can surface it.
type DepositLimitError struct {
	Limit decimal.Decimal
}

func (e *DepositLimitError) Error() string {
	return fmt.Sprintf("deposit exceeds the allowed limit of %s", e.Limit.StringFixed(2))
}
