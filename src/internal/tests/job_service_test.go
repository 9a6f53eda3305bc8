package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/models"
	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/api-sage/freelance-billing/src/internal/usecase/services"
	"golang.org/x/sync/errgroup"
)

type fakeJobRepo struct {
	jobs []domain.Job
	err  error
}

func (r *fakeJobRepo) ListUnpaidForProfile(ctx context.Context, profileID int64) ([]domain.Job, error) {
	return r.jobs, r.err
}

func TestJobServicePayJobValidationError(t *testing.T) {
	svc := services.NewJobService(nil, newFakeLedger())

	_, err := svc.PayJob(context.Background(), clientProfile(1), models.PayJobRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty pay request")
	}
}

func TestJobServicePayJobConservesMoney(t *testing.T) {
	ledger := newFakeLedger()
	ledger.addProfile(1, domain.ProfileRoleClient, "100.00")
	ledger.addProfile(2, domain.ProfileRoleContractor, "10.00")
	ledger.addJob(10, 100, 1, 2, domain.ContractStatusInProgress, "75.50", nil)
	svc := services.NewJobService(nil, ledger)

	resp, err := svc.PayJob(context.Background(), clientProfile(1), models.PayJobRequest{JobID: 10})
	if err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	if resp.Data.ClientBalance != "24.50" {
		t.Fatalf("expected client balance 24.50, got %s", resp.Data.ClientBalance)
	}
	if resp.Data.ContractorBalance != "85.50" {
		t.Fatalf("expected contractor balance 85.50, got %s", resp.Data.ContractorBalance)
	}
	if got := ledger.balance(1).StringFixed(2); got != "24.50" {
		t.Fatalf("stored client balance %s", got)
	}
	if got := ledger.balance(2).StringFixed(2); got != "85.50" {
		t.Fatalf("stored contractor balance %s", got)
	}
	if !ledger.jobPaid(10) {
		t.Fatal("job not marked paid")
	}
	if resp.Data.PaymentDate == "" {
		t.Fatal("expected a payment date")
	}
}

func TestJobServicePayJobTwice(t *testing.T) {
	ledger := newFakeLedger()
	ledger.addProfile(1, domain.ProfileRoleClient, "100.00")
	ledger.addProfile(2, domain.ProfileRoleContractor, "0.00")
	ledger.addJob(10, 100, 1, 2, domain.ContractStatusInProgress, "40.00", nil)
	svc := services.NewJobService(nil, ledger)

	if _, err := svc.PayJob(context.Background(), clientProfile(1), models.PayJobRequest{JobID: 10}); err != nil {
		t.Fatalf("first payment failed: %v", err)
	}

	_, err := svc.PayJob(context.Background(), clientProfile(1), models.PayJobRequest{JobID: 10})
	if !errors.Is(err, domain.ErrJobAlreadyPaid) {
		t.Fatalf("expected already paid error, got %v", err)
	}

	if got := ledger.balance(1).StringFixed(2); got != "60.00" {
		t.Fatalf("client balance moved twice: %s", got)
	}
	if got := ledger.balance(2).StringFixed(2); got != "40.00" {
		t.Fatalf("contractor balance moved twice: %s", got)
	}
}

func TestJobServicePayJobNotFound(t *testing.T) {
	svc := services.NewJobService(nil, newFakeLedger())

	_, err := svc.PayJob(context.Background(), clientProfile(1), models.PayJobRequest{JobID: 99})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestJobServicePayJobWrongClientForbidden(t *testing.T) {
	ledger := newFakeLedger()
	ledger.addProfile(1, domain.ProfileRoleClient, "100.00")
	ledger.addProfile(2, domain.ProfileRoleContractor, "0.00")
	ledger.addProfile(3, domain.ProfileRoleClient, "100.00")
	ledger.addJob(10, 100, 1, 2, domain.ContractStatusInProgress, "40.00", nil)
	svc := services.NewJobService(nil, ledger)

	_, err := svc.PayJob(context.Background(), clientProfile(3), models.PayJobRequest{JobID: 10})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
	if !ledger.balance(2).IsZero() {
		t.Fatal("contractor balance changed on forbidden payment")
	}
}

func TestJobServicePayJobByContractorForbidden(t *testing.T) {
	ledger := newFakeLedger()
	svc := services.NewJobService(nil, ledger)

	_, err := svc.PayJob(context.Background(), contractorProfile(2), models.PayJobRequest{JobID: 10})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestJobServicePayJobInsufficientFunds(t *testing.T) {
	ledger := newFakeLedger()
	ledger.addProfile(1, domain.ProfileRoleClient, "39.99")
	ledger.addProfile(2, domain.ProfileRoleContractor, "5.00")
	ledger.addJob(10, 100, 1, 2, domain.ContractStatusInProgress, "40.00", boolPtr(false))
	svc := services.NewJobService(nil, ledger)

	_, err := svc.PayJob(context.Background(), clientProfile(1), models.PayJobRequest{JobID: 10})
	if !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}

	if got := ledger.balance(1).StringFixed(2); got != "39.99" {
		t.Fatalf("client balance changed: %s", got)
	}
	if got := ledger.balance(2).StringFixed(2); got != "5.00" {
		t.Fatalf("contractor balance changed: %s", got)
	}
	if ledger.jobPaid(10) {
		t.Fatal("job marked paid despite rejection")
	}
}

func TestJobServicePayJobLegacyNullPaidFlag(t *testing.T) {
	ledger := newFakeLedger()
	ledger.addProfile(1, domain.ProfileRoleClient, "50.00")
	ledger.addProfile(2, domain.ProfileRoleContractor, "0.00")
	// nil paid flag is legacy "never paid" and must settle like false.
	ledger.addJob(10, 100, 1, 2, domain.ContractStatusInProgress, "50.00", nil)
	svc := services.NewJobService(nil, ledger)

	if _, err := svc.PayJob(context.Background(), clientProfile(1), models.PayJobRequest{JobID: 10}); err != nil {
		t.Fatalf("payment of legacy-null job failed: %v", err)
	}
	if got := ledger.balance(2).StringFixed(2); got != "50.00" {
		t.Fatalf("contractor balance %s", got)
	}
}

func TestJobServicePayJobConcurrentDoublePay(t *testing.T) {
	ledger := newFakeLedger()
	ledger.addProfile(1, domain.ProfileRoleClient, "100.00")
	ledger.addProfile(2, domain.ProfileRoleContractor, "0.00")
	ledger.addJob(10, 100, 1, 2, domain.ContractStatusInProgress, "60.00", nil)
	svc := services.NewJobService(nil, ledger)

	results := make(chan error, 2)
	var g errgroup.Group
	for i := 0; i < 2; i++ {
		g.Go(func() error {
			_, err := svc.PayJob(context.Background(), clientProfile(1), models.PayJobRequest{JobID: 10})
			results <- err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("errgroup wait: %v", err)
	}
	close(results)

	var successes, rejections int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		if errors.Is(err, domain.ErrJobAlreadyPaid) {
			rejections++
			continue
		}
		t.Fatalf("unexpected concurrent payment error: %v", err)
	}

	if successes != 1 || rejections != 1 {
		t.Fatalf("expected exactly one success and one rejection, got %d/%d", successes, rejections)
	}
	if got := ledger.balance(2).StringFixed(2); got != "60.00" {
		t.Fatalf("contractor credited more than once: %s", got)
	}
	if got := ledger.balance(1).StringFixed(2); got != "40.00" {
		t.Fatalf("client debited more than once: %s", got)
	}
}

func TestJobServiceListUnpaidJobs(t *testing.T) {
	repo := &fakeJobRepo{jobs: []domain.Job{
		{ID: 10, ContractID: 100, Description: "api integration", Price: "120.00", PaymentStatus: domain.JobUnpaid},
		{ID: 11, ContractID: 100, Description: "schema design", Price: "80.00", PaymentStatus: domain.JobUnpaid},
	}}
	svc := services.NewJobService(repo, newFakeLedger())

	resp, err := svc.ListUnpaidJobs(context.Background(), clientProfile(1))
	if err != nil {
		t.Fatalf("list unpaid jobs failed: %v", err)
	}
	if len(*resp.Data) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(*resp.Data))
	}
	if (*resp.Data)[0].Status != "unpaid" {
		t.Fatalf("expected unpaid status, got %s", (*resp.Data)[0].Status)
	}
}
