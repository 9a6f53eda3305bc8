package service_interfaces

import (
	"context"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/commons"
	"github.com/api-sage/freelance-billing/src/internal/domain"
)

type JobService interface {
	PayJob(ctx context.Context, caller domain.Profile, req models.PayJobRequest) (commons.Response[models.PayJobResponse], error)
	ListUnpaidJobs(ctx context.Context, caller domain.Profile) (commons.Response[[]models.JobResponse], error)
}
