package models

import (
	"errors"
	"strings"
	"time"
)

type ReportRangeRequest struct {
	Start string
	End   string
	Limit int
}

func (r ReportRangeRequest) Validate() error {
	var errs []string

	if _, err := time.Parse("2006-01-02", strings.TrimSpace(r.Start)); err != nil {
		errs = append(errs, "start must be a date in YYYY-MM-DD format")
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(r.End)); err != nil {
		errs = append(errs, "end must be a date in YYYY-MM-DD format")
	}
	if r.Limit < 0 {
		errs = append(errs, "limit cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type BestProfessionResponse struct {
	Profession  string `json:"profession"`
	TotalEarned string `json:"totalEarned"`
}

type BestClientResponse struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	TotalPaid string `json:"totalPaid"`
}
