package service_interfaces

import (
	"context"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/commons"
)

type ReportService interface {
	BestProfession(ctx context.Context, req models.ReportRangeRequest) (commons.Response[models.BestProfessionResponse], error)
	BestClients(ctx context.Context, req models.ReportRangeRequest) (commons.Response[[]models.BestClientResponse], error)
}
