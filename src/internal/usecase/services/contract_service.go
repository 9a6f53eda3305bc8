package services

import (
	"context"
	"errors"
	"time"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/freelance-billing/src/internal/commons"
	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/api-sage/freelance-billing/src/internal/logger"
)

type ContractService struct {
	contractRepo repo_interfaces.ContractRepository
}

func NewContractService(contractRepo repo_interfaces.ContractRepository) *ContractService {
	return &ContractService{contractRepo: contractRepo}
}

func (s *ContractService) GetContract(ctx context.Context, caller domain.Profile, contractID int64) (commons.Response[models.ContractResponse], error) {
	logger.Info("contract service get contract request", logger.Fields{
		"callerId":   caller.ID,
		"contractId": contractID,
	})

	if contractID <= 0 {
		err := errors.New("contract id must be a positive identifier")
		return commons.ErrorResponse[models.ContractResponse]("validation failed", err.Error()), err
	}

	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.ContractResponse]("Contract not found"), err
		}
		logger.Error("contract service get contract failed", err, logger.Fields{
			"contractId": contractID,
		})
		return commons.ErrorResponse[models.ContractResponse]("failed to get contract", "Unable to fetch contract right now"), err
	}

	if contract.ClientID != caller.ID && contract.ContractorID != caller.ID {
		err := domain.ErrForbidden
		return commons.ErrorResponse[models.ContractResponse]("contract access denied", "you are not a party to this contract"), err
	}

	return commons.SuccessResponse("contract retrieved", mapContractToResponse(contract)), nil
}

func (s *ContractService) ListContracts(ctx context.Context, caller domain.Profile) (commons.Response[[]models.ContractResponse], error) {
	logger.Info("contract service list contracts request", logger.Fields{
		"callerId": caller.ID,
	})

	contracts, err := s.contractRepo.ListForProfile(ctx, caller.ID)
	if err != nil {
		logger.Error("contract service list contracts failed", err, logger.Fields{
			"callerId": caller.ID,
		})
		return commons.ErrorResponse[[]models.ContractResponse]("failed to list contracts", "Unable to list contracts right now"), err
	}

	response := make([]models.ContractResponse, 0, len(contracts))
	for _, contract := range contracts {
		response = append(response, mapContractToResponse(contract))
	}

	return commons.SuccessResponse("contracts retrieved", response), nil
}

func mapContractToResponse(contract domain.Contract) models.ContractResponse {
	return models.ContractResponse{
		ID:           contract.ID,
		ClientID:     contract.ClientID,
		ContractorID: contract.ContractorID,
		Terms:        contract.Terms,
		Status:       string(contract.Status),
		CreatedAt:    contract.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    contract.UpdatedAt.Format(time.RFC3339),
	}
}
