package models

import (
	"errors"
)

type PayJobRequest struct {
	JobID int64 `json:"jobId"`
}

func (r PayJobRequest) Validate() error {
	if r.JobID <= 0 {
		return errors.New("jobId must be a positive identifier")
	}
	return nil
}

type PayJobResponse struct {
	JobID             int64  `json:"jobId"`
	Reference         string `json:"reference"`
	Price             string `json:"price"`
	ClientBalance     string `json:"clientBalance"`
	ContractorBalance string `json:"contractorBalance"`
	PaymentDate       string `json:"paymentDate"`
}

type JobResponse struct {
	ID          int64   `json:"id"`
	ContractID  int64   `json:"contractId"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Status      string  `json:"status"`
	PaymentDate *string `json:"paymentDate,omitempty"`
}
