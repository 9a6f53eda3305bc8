package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/freelance-billing/src/internal/commons"
	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/api-sage/freelance-billing/src/internal/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type JobService struct {
	jobRepo repo_interfaces.JobRepository
	ledger  repo_interfaces.LedgerStore
}

func NewJobService(jobRepo repo_interfaces.JobRepository, ledger repo_interfaces.LedgerStore) *JobService {
	return &JobService{jobRepo: jobRepo, ledger: ledger}
}

// PayJob settles a job: it debits the paying client and credits the
// contractor by exactly the job price and marks the job paid, all inside
// one transaction. Every check runs against state read under row locks in
// that same transaction; any failure rolls the whole settlement back.
func (s *JobService) PayJob(ctx context.Context, caller domain.Profile, req models.PayJobRequest) (commons.Response[models.PayJobResponse], error) {
	logger.Info("job service pay job request", logger.Fields{
		"callerId": caller.ID,
		"jobId":    req.JobID,
	})

	if err := req.Validate(); err != nil {
		logger.Error("job service pay job validation failed", err, nil)
		return commons.ErrorResponse[models.PayJobResponse]("validation failed", err.Error()), err
	}

	if caller.Role != domain.ProfileRoleClient {
		err := domain.ErrForbidden
		return commons.ErrorResponse[models.PayJobResponse]("payment not permitted", "only client profiles can pay for jobs"), err
	}

	var (
		price             decimal.Decimal
		clientBalance     decimal.Decimal
		contractorBalance decimal.Decimal
		paymentDate       time.Time
	)
	err := s.ledger.WithinTx(ctx, func(tx repo_interfaces.LedgerTx) error {
		claim, err := tx.JobForSettlement(ctx, req.JobID)
		if err != nil {
			return err
		}
		if claim.PaymentStatus == domain.JobPaid {
			return domain.ErrJobAlreadyPaid
		}
		if claim.ClientID != caller.ID {
			return domain.ErrForbidden
		}

		price, err = decimal.NewFromString(claim.Price)
		if err != nil {
			return fmt.Errorf("parse job price: %w", err)
		}

		balances, err := tx.BalancesForUpdate(ctx, claim.ClientID, claim.ContractorID)
		if err != nil {
			return err
		}
		if balances[claim.ClientID].LessThan(price) {
			return domain.ErrInsufficientBalance
		}

		clientBalance, err = tx.DebitBalance(ctx, claim.ClientID, price)
		if err != nil {
			return err
		}
		contractorBalance, err = tx.CreditBalance(ctx, claim.ContractorID, price)
		if err != nil {
			return err
		}
		paymentDate, err = tx.MarkJobPaid(ctx, claim.JobID)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			return commons.ErrorResponse[models.PayJobResponse]("Job not found"), err
		case errors.Is(err, domain.ErrJobAlreadyPaid):
			return commons.ErrorResponse[models.PayJobResponse]("job already paid", err.Error()), err
		case errors.Is(err, domain.ErrForbidden):
			return commons.ErrorResponse[models.PayJobResponse]("payment not permitted", "job does not belong to one of your contracts"), err
		case errors.Is(err, domain.ErrInsufficientBalance):
			return commons.ErrorResponse[models.PayJobResponse]("Insufficient balance", err.Error()), err
		}
		logger.Error("job service pay job failed", err, logger.Fields{
			"jobId": req.JobID,
		})
		return commons.ErrorResponse[models.PayJobResponse]("failed to process payment", "Unable to process payment right now"), err
	}

	response := models.PayJobResponse{
		JobID:             req.JobID,
		Reference:         uuid.NewString(),
		Price:             price.StringFixed(2),
		ClientBalance:     clientBalance.StringFixed(2),
		ContractorBalance: contractorBalance.StringFixed(2),
		PaymentDate:       paymentDate.Format(time.RFC3339),
	}

	logger.Info("job service pay job success", logger.Fields{
		"jobId":     response.JobID,
		"reference": response.Reference,
		"price":     response.Price,
	})

	return commons.SuccessResponse("payment successful", response), nil
}

func (s *JobService) ListUnpaidJobs(ctx context.Context, caller domain.Profile) (commons.Response[[]models.JobResponse], error) {
	logger.Info("job service list unpaid jobs request", logger.Fields{
		"callerId": caller.ID,
	})

	jobs, err := s.jobRepo.ListUnpaidForProfile(ctx, caller.ID)
	if err != nil {
		logger.Error("job service list unpaid jobs failed", err, logger.Fields{
			"callerId": caller.ID,
		})
		return commons.ErrorResponse[[]models.JobResponse]("failed to list jobs", "Unable to list jobs right now"), err
	}

	response := make([]models.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		item := models.JobResponse{
			ID:          job.ID,
			ContractID:  job.ContractID,
			Description: job.Description,
			Price:       job.Price,
			Status:      string(job.PaymentStatus),
		}
		if job.PaymentDate != nil {
			formatted := job.PaymentDate.Format(time.RFC3339)
			item.PaymentDate = &formatted
		}
		response = append(response, item)
	}

	return commons.SuccessResponse("unpaid jobs retrieved", response), nil
}
