package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateProfileRequest struct {
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Profession     string          `json:"profession"`
	Role           string          `json:"role"`
	Password       string          `json:"password"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

func (r CreateProfileRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, "firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, "lastName is required")
	}
	if strings.TrimSpace(r.Profession) == "" {
		errs = append(errs, "profession is required")
	}

	role := strings.ToLower(strings.TrimSpace(r.Role))
	if role != "client" && role != "contractor" {
		errs = append(errs, "role must be client or contractor")
	}

	if len(strings.TrimSpace(r.Password)) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}

	if r.InitialBalance.IsNegative() {
		errs = append(errs, "initialBalance cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type ProfileResponse struct {
	ID         int64  `json:"id"`
	Role       string `json:"role"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Profession string `json:"profession"`
	Balance    string `json:"balance"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}
