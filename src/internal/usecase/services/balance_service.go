package services

import (
	"context"
	"errors"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/freelance-billing/src/internal/commons"
	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/api-sage/freelance-billing/src/internal/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// A deposit is capped at 25% of the client's outstanding unpaid job
// total, recomputed from the ledger on every request. With no unpaid work
// the cap is zero and every deposit is rejected.
var depositLimitRatio = decimal.RequireFromString("0.25")

type BalanceService struct {
	ledger repo_interfaces.LedgerStore
}

func NewBalanceService(ledger repo_interfaces.LedgerStore) *BalanceService {
	return &BalanceService{ledger: ledger}
}

func (s *BalanceService) DepositFunds(ctx context.Context, caller domain.Profile, req models.DepositRequest) (commons.Response[models.DepositResponse], error) {
	logger.Info("balance service deposit request", logger.Fields{
		"callerId":  caller.ID,
		"profileId": req.ProfileID,
	})

	if !req.Amount.Round(2).IsPositive() {
		err := domain.ErrInvalidAmount
		return commons.ErrorResponse[models.DepositResponse]("validation failed", err.Error()), err
	}
	if err := req.Validate(); err != nil {
		logger.Error("balance service deposit validation failed", err, nil)
		return commons.ErrorResponse[models.DepositResponse]("validation failed", err.Error()), err
	}

	if req.ProfileID != caller.ID {
		err := domain.ErrForbidden
		return commons.ErrorResponse[models.DepositResponse]("deposit not permitted", "deposits can only target your own profile"), err
	}
	if caller.Role != domain.ProfileRoleClient {
		err := domain.ErrForbidden
		return commons.ErrorResponse[models.DepositResponse]("deposit not permitted", "only client profiles can deposit funds"), err
	}

	amount := req.Amount.Round(2)

	var (
		newBalance decimal.Decimal
		limit      decimal.Decimal
	)
	err := s.ledger.WithinTx(ctx, func(tx repo_interfaces.LedgerTx) error {
		profile, err := tx.ProfileForUpdate(ctx, req.ProfileID)
		if err != nil {
			return err
		}
		if profile.Role != domain.ProfileRoleClient {
			return domain.ErrForbidden
		}

		totalUnpaid, err := tx.UnpaidTotalForClient(ctx, profile.ID)
		if err != nil {
			return err
		}

		limit = totalUnpaid.Mul(depositLimitRatio)
		if amount.GreaterThan(limit) {
			return &domain.DepositLimitError{Limit: limit}
		}

		newBalance, err = tx.CreditBalance(ctx, profile.ID, amount)
		return err
	})
	if err != nil {
		var limitErr *domain.DepositLimitError
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			return commons.ErrorResponse[models.DepositResponse]("Profile not found"), err
		case errors.Is(err, domain.ErrForbidden):
			return commons.ErrorResponse[models.DepositResponse]("deposit not permitted", "only client profiles can deposit funds"), err
		case errors.As(err, &limitErr):
			return commons.ErrorResponse[models.DepositResponse]("deposit limit exceeded", limitErr.Error()), err
		}
		logger.Error("balance service deposit failed", err, logger.Fields{
			"profileId": req.ProfileID,
		})
		return commons.ErrorResponse[models.DepositResponse]("failed to process deposit", "Unable to process deposit right now"), err
	}

	response := models.DepositResponse{
		ProfileID:    caller.ID,
		Reference:    uuid.NewString(),
		Amount:       amount.StringFixed(2),
		DepositLimit: limit.StringFixed(2),
		NewBalance:   newBalance.StringFixed(2),
	}

	logger.Info("balance service deposit success", logger.Fields{
		"profileId":  response.ProfileID,
		"reference":  response.Reference,
		"amount":     response.Amount,
		"newBalance": response.NewBalance,
	})

	return commons.SuccessResponse("deposit successful", response), nil
}
