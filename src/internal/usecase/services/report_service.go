package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/freelance-billing/src/internal/commons"
	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/api-sage/freelance-billing/src/internal/logger"
)

const defaultBestClientsLimit = 2

type ReportService struct {
	reportRepo repo_interfaces.ReportRepository
}

func NewReportService(reportRepo repo_interfaces.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

func (s *ReportService) BestProfession(ctx context.Context, req models.ReportRangeRequest) (commons.Response[models.BestProfessionResponse], error) {
	logger.Info("report service best profession request", logger.Fields{
		"start": req.Start,
		"end":   req.End,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.BestProfessionResponse]("validation failed", err.Error()), err
	}

	start, end := rangeBounds(req)

	earnings, err := s.reportRepo.BestProfession(ctx, start, end)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.BestProfessionResponse]("No paid jobs in the requested period"), err
		}
		logger.Error("report service best profession failed", err, nil)
		return commons.ErrorResponse[models.BestProfessionResponse]("failed to build report", "Unable to build report right now"), err
	}

	response := models.BestProfessionResponse{
		Profession:  earnings.Profession,
		TotalEarned: earnings.TotalEarned,
	}

	return commons.SuccessResponse("best profession retrieved", response), nil
}

func (s *ReportService) BestClients(ctx context.Context, req models.ReportRangeRequest) (commons.Response[[]models.BestClientResponse], error) {
	logger.Info("report service best clients request", logger.Fields{
		"start": req.Start,
		"end":   req.End,
		"limit": req.Limit,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[[]models.BestClientResponse]("validation failed", err.Error()), err
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultBestClientsLimit
	}

	start, end := rangeBounds(req)

	clients, err := s.reportRepo.BestClients(ctx, start, end, limit)
	if err != nil {
		logger.Error("report service best clients failed", err, nil)
		return commons.ErrorResponse[[]models.BestClientResponse]("failed to build report", "Unable to build report right now"), err
	}

	response := make([]models.BestClientResponse, 0, len(clients))
	for _, client := range clients {
		response = append(response, models.BestClientResponse{
			ID:        client.ProfileID,
			FullName:  client.FullName,
			TotalPaid: client.TotalPaid,
		})
	}

	return commons.SuccessResponse("best clients retrieved", response), nil
}

// rangeBounds widens the inclusive YYYY-MM-DD range into half-open
// timestamp bounds, so payments late on the end date still count.
func rangeBounds(req models.ReportRangeRequest) (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", strings.TrimSpace(req.Start))
	end, _ := time.Parse("2006-01-02", strings.TrimSpace(req.End))
	return start, end.AddDate(0, 0, 1)
}
