package service_interfaces

import (
	"context"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/commons"
	"github.com/api-sage/freelance-billing/src/internal/domain"
)

type BalanceService interface {
	DepositFunds(ctx context.Context, caller domain.Profile, req models.DepositRequest) (commons.Response[models.DepositResponse], error)
}
