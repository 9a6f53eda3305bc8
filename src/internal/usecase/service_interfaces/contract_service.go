package service_interfaces

import (
	"context"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/commons"
	"github.com/api-sage/freelance-billing/src/internal/domain"
)

type ContractService interface {
	GetContract(ctx context.Context, caller domain.Profile, contractID int64) (commons.Response[models.ContractResponse], error)
	ListContracts(ctx context.Context, caller domain.Profile) (commons.Response[[]models.ContractResponse], error)
}
