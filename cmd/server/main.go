package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/anujay00/alpha-admin/internal/cache"
	"github.com/anujay00/alpha-admin/internal/clients/shopapi"
	"github.com/anujay00/alpha-admin/internal/config"
	"github.com/anujay00/alpha-admin/internal/database"
	"github.com/anujay00/alpha-admin/internal/events"
	"github.com/anujay00/alpha-admin/internal/jobs"
	"github.com/anujay00/alpha-admin/internal/modules/dashboard"
	"github.com/anujay00/alpha-admin/internal/modules/orders"
	"github.com/anujay00/alpha-admin/internal/modules/reviews"
	"github.com/anujay00/alpha-admin/internal/server"
	"github.com/anujay00/alpha-admin/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Int("port", cfg.Port).
		Str("shop_api", cfg.ShopAPIBaseURL).
		Bool("dev_mode", cfg.DevMode).
		Msg("Starting admin server")

	// Snapshot cache database. Losing it only costs the warm start.
	db, err := database.New(database.Config{
		Path: filepath.Join(cfg.DataDir, "cache.db"),
		Name: "cache",
	})
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	defer db.Close()

	snapshots, err := cache.NewSnapshotCache(db.Conn(), log)
	if err != nil {
		return fmt.Errorf("failed to initialize snapshot cache: %w", err)
	}

	bus := events.NewBus(log)
	shopClient := shopapi.NewClient(cfg.ShopAPIBaseURL, log)

	orderStore := orders.NewStore(log)
	orderService := orders.NewService(orderStore, shopClient, snapshots, bus, log)

	reviewStore := reviews.NewStore(log)
	reviewService := reviews.NewService(reviewStore, shopClient, snapshots, bus, log)

	dashboardService := dashboard.NewService(orderStore, log)

	// Serve the previous run's snapshots while the first fetch is in flight.
	orderService.WarmStart()
	reviewService.WarmStart()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		if err := orderService.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("Initial order fetch failed")
		}
		if err := reviewService.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("Initial review fetch failed")
		}
	}()

	scheduler := jobs.NewScheduler(log)
	if cfg.RefreshSchedule != "" {
		if err := scheduler.AddJob(cfg.RefreshSchedule, jobs.NewRefreshJob("orders-refresh", orderService)); err != nil {
			return fmt.Errorf("failed to schedule order refresh: %w", err)
		}
		if err := scheduler.AddJob(cfg.RefreshSchedule, jobs.NewRefreshJob("reviews-refresh", reviewService)); err != nil {
			return fmt.Errorf("failed to schedule review refresh: %w", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	srv := server.New(server.Config{
		Log:              log,
		Config:           cfg,
		Bus:              bus,
		Snapshots:        snapshots,
		OrderService:     orderService,
		ReviewService:    reviewService,
		DashboardService: dashboardService,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
