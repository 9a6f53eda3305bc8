package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDepositRequestValidate(t *testing.T) {
	valid := DepositRequest{ProfileID: 1, Amount: decimal.RequireFromString("10.00")}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	missingProfile := DepositRequest{Amount: decimal.RequireFromString("10.00")}
	if err := missingProfile.Validate(); err == nil {
		t.Fatal("expected error for missing profile id")
	}

	zero := DepositRequest{ProfileID: 1}
	if err := zero.Validate(); err == nil {
		t.Fatal("expected error for zero amount")
	}

	negative := DepositRequest{ProfileID: 1, Amount: decimal.RequireFromString("-5")}
	if err := negative.Validate(); err == nil {
		t.Fatal("expected error for negative amount")
	}

	// 0.004 rounds to 0.00, which is no longer strictly positive.
	roundsToZero := DepositRequest{ProfileID: 1, Amount: decimal.RequireFromString("0.004")}
	if err := roundsToZero.Validate(); err == nil {
		t.Fatal("expected error for amount that rounds to zero")
	}

	roundsUp := DepositRequest{ProfileID: 1, Amount: decimal.RequireFromString("0.005")}
	if err := roundsUp.Validate(); err != nil {
		t.Fatalf("amount rounding up to 0.01 rejected: %v", err)
	}
}
