package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/freelance-billing/src/internal/adapter/http/controller"
	"github.com/api-sage/freelance-billing/src/internal/adapter/http/middleware"
	"github.com/api-sage/freelance-billing/src/internal/adapter/http/router"
	"github.com/api-sage/freelance-billing/src/internal/adapter/repository/postgres"
	"github.com/api-sage/freelance-billing/src/internal/config"
	"github.com/api-sage/freelance-billing/src/internal/usecase/services"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := postgres.RunMigrations(migrateCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	profileRepo := postgres.NewProfileRepository(db)
	contractRepo := postgres.NewContractRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	ledgerRepo := postgres.NewLedgerRepository(db)

	profileService := services.NewProfileService(profileRepo)
	contractService := services.NewContractService(contractRepo)
	jobService := services.NewJobService(jobRepo, ledgerRepo)
	balanceService := services.NewBalanceService(ledgerRepo)
	reportService := services.NewReportService(reportRepo)

	mux := router.New(
		controller.NewProfileController(profileService),
		controller.NewContractController(contractService),
		controller.NewJobController(jobService),
		controller.NewBalanceController(balanceService),
		controller.NewReportController(reportService),
		middleware.ProfileAuth(profileRepo),
		middleware.BasicAuth(cfg.AdminID, cfg.AdminKey),
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
