// Command server runs the daily record lifecycle engine: the REST API and
// the nightly generation scheduler.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/config"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/auth"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/generator"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/records/cash"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/records/inventory"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/templates"
	v1 "github.com/hanjihoon31-beep/erphan-sub000/internal/infrastructure/http/v1"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/infrastructure/redisx"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/infrastructure/storage/postgres"
	"github.com/hanjihoon31-beep/erphan-sub000/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = logger.WithLogger(ctx, log)

	if cfg.DatabaseURL == "" {
		logger.Fatal(ctx, "DATABASE_URL is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		logger.Fatal(ctx, "failed to connect to database", "error", err)
	}
	defer pool.Close()

	go postgres.ReportPoolStats(ctx, pool.Unwrap(), time.Minute)

	txManager := postgres.NewTxManager(pool)

	storeRepo := postgres.NewStoreRepo(txManager)
	productRepo := postgres.NewProductRepo(txManager)
	templateRepo := postgres.NewTemplateRepo(txManager)
	inventoryRepo := postgres.NewInventoryRepo(txManager)
	cashRepo := postgres.NewCashRepo(txManager)

	templateService := templates.NewService(templateRepo, storeRepo, productRepo, txManager)
	inventoryService := inventory.NewService(inventoryRepo, txManager)
	cashService := cash.NewService(cashRepo, txManager)

	runner := generator.NewRunner(storeRepo, templateRepo, inventoryRepo)

	// The lock is optional: a single-replica deployment runs fine without
	// Redis, it just loses run coordination.
	var locker generator.Locker
	if cfg.RedisAddr != "" {
		redisClient, err := redisx.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Fatal(ctx, "failed to connect to redis", "error", err)
		}
		defer redisClient.Close()
		locker = redisx.NewLock(redisClient)
	}

	scheduler := generator.NewScheduler(runner, locker, generator.SchedulerConfig{
		Hour:     cfg.GenerationHour,
		Minute:   cfg.GenerationMinute,
		Location: cfg.Location(),
	})
	go scheduler.Start(ctx)

	router := v1.NewRouter(v1.RouterConfig{
		Logger:      log,
		Pool:        pool,
		JWTService:  auth.NewJWTService(auth.DefaultJWTConfig(cfg.JWTSecret)),
		Templates:   templateService,
		Inventory:   inventoryService,
		Cash:        cashService,
		Runner:      runner,
		Location:    cfg.Location(),
		Development: cfg.IsDevelopment(),
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info(ctx, "server starting", "port", cfg.HTTPPort, "env", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info(ctx, "server stopped")
}
