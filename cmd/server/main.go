package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostel-management-backend/internal/cache"
	"hostel-management-backend/internal/config"
	"hostel-management-backend/internal/database"
	"hostel-management-backend/internal/logger"
	"hostel-management-backend/internal/realtime"
	"hostel-management-backend/internal/repository"
	"hostel-management-backend/internal/seed"
	"hostel-management-backend/internal/server"
	"hostel-management-backend/internal/service"
	"hostel-management-backend/internal/validation"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const cacheNamespace = "hostel:"

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", logger.FieldError, err)
		os.Exit(1)
	}
	log.Info("server exited")
}

func run(cfg *config.Config, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log.Info("configuration loaded", "storage", cfg.Database.Driver, "cache", cfg.Redis.Driver)

	// 2. Initialize JWT utilities and request validators
	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	if err := validation.RegisterGin(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Storage and cache
	repos, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	aggregates, err := openCache(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer aggregates.Close()

	if cfg.Database.Seed {
		seeded, err := seed.Load(ctx, repos, time.Now())
		if err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		if seeded {
			log.Info("demo data loaded")
		}
	}

	// 4. Services, realtime feed and background jobs
	hub := realtime.NewHub(log)
	svc := service.New(repos, aggregates, service.Options{
		CacheTTL:       cfg.Redis.TTL,
		InvoiceDueDays: cfg.Billing.InvoiceDueDays,
		Publisher:      hub,
		Logger:         log,
	})

	worker := service.NewOverdueWorker(svc.Invoices, cfg.Billing.OverdueInterval, log)
	scheduler, err := service.NewBillingScheduler(svc.Invoices, cfg.Billing.InvoiceSchedule, log)
	if err != nil {
		return err
	}

	// 5. HTTP server
	srv := &http.Server{
		Addr: ":" + cfg.Server.Port,
		Handler: server.NewRouter(server.Deps{
			Config:   cfg,
			Services: svc,
			Hub:      hub,
			Logger:   log,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := hub.Close(); err != nil {
			log.Warn("failed to close websocket hub", logger.FieldError, err)
		}
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return worker.Start(gctx)
	})
	g.Go(func() error {
		return scheduler.Start(gctx)
	})

	return g.Wait()
}

// openStorage returns the repositories for the configured driver and a
// function releasing them
func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*repository.Repositories, func(), error) {
	ids := utils.NewIDGenerator()
	if cfg.Database.Driver == config.StorageMemory {
		log.Warn("using in-memory storage; data is lost on restart")
		return repository.NewMemoryRepositories(ids), func() {}, nil
	}

	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}
	return repository.NewGormRepositories(db, ids), func() {
		if err := database.Close(db); err != nil {
			log.Warn("failed to close database", logger.FieldError, err)
		}
	}, nil
}

// openCache returns the aggregate cache for the configured driver
func openCache(ctx context.Context, cfg *config.Config, log *slog.Logger) (cache.Cache, error) {
	if cfg.Redis.Driver != config.CacheRedis {
		return cache.NewMemoryCache(), nil
	}

	c, err := cache.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cacheNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.WithComponent(log, logger.ComponentCache).Info("connected to redis", "addr", cfg.Redis.Addr)
	return c, nil
}
