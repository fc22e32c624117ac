package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rutamovil/booking-gateway/internal/cron"
	"github.com/rutamovil/booking-gateway/internal/promotions"
	"github.com/rutamovil/booking-gateway/pkg/config"
	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	"github.com/rutamovil/booking-gateway/pkg/logger"
	"github.com/rutamovil/booking-gateway/pkg/metrics"
	"github.com/rutamovil/booking-gateway/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "cron-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "cron-worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	coreClient, err := coreapi.NewClient(cfg.CoreAPI, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create core api client", err)
		os.Exit(1)
	}

	promotionService := promotions.NewService(coreClient, redisClient, cfg.Promotions.CacheTTL, logg)

	promoJob, err := cron.NewPromoRefreshJob(cron.PromoRefreshJobParams{
		Logger:     logg,
		Promotions: promotionService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create promo refresh job", err)
		os.Exit(1)
	}
	sweepJob, err := cron.NewIntentSweepJob(cron.IntentSweepJobParams{
		Logger: logg,
		Store:  redisClient,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create intent sweep job", err)
		os.Exit(1)
	}

	lock, err := cron.NewRedisLock(redisClient, redisClient.CronLockKey(cfg.App.Env), cfg.Cron.LockTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cron lock", err)
		os.Exit(1)
	}

	service, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: cron.NewRegistry(promoJob, sweepJob),
		Lock:     lock,
		Metrics:  metrics.NewCronJobMetrics(prometheus.DefaultRegisterer),
		Interval: cfg.Cron.Interval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cron service", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env})
	logg.Info(ctx, "starting cron worker")

	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "cron worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "cron worker shutting down gracefully")
}
