package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rutamovil/booking-gateway/api/routes"
	adminsvc "github.com/rutamovil/booking-gateway/internal/admin"
	authsvc "github.com/rutamovil/booking-gateway/internal/auth"
	checkoutsvc "github.com/rutamovil/booking-gateway/internal/checkout"
	paymentmethodsvc "github.com/rutamovil/booking-gateway/internal/paymentmethods"
	"github.com/rutamovil/booking-gateway/internal/pricing"
	promotionsvc "github.com/rutamovil/booking-gateway/internal/promotions"
	reservationsvc "github.com/rutamovil/booking-gateway/internal/reservations"
	searchsvc "github.com/rutamovil/booking-gateway/internal/search"
	supportsvc "github.com/rutamovil/booking-gateway/internal/support"
	"github.com/rutamovil/booking-gateway/pkg/auth/session"
	"github.com/rutamovil/booking-gateway/pkg/config"
	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	"github.com/rutamovil/booking-gateway/pkg/logger"
	"github.com/rutamovil/booking-gateway/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
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

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		CoreClient:     coreClient,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	searchService, err := searchsvc.NewService(coreClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create search service", err)
		os.Exit(1)
	}

	promotionService := promotionsvc.NewService(coreClient, redisClient, cfg.Promotions.CacheTTL, logg)

	bookingWindow, err := pricing.NewWindow(cfg.Booking)
	if err != nil {
		logg.Error(context.Background(), "failed to build booking window", err)
		os.Exit(1)
	}
	checkoutService := checkoutsvc.NewService(redisClient, promotionService, coreClient, bookingWindow, cfg.Checkout.IntentTTL, logg)

	reservationService, err := reservationsvc.NewService(coreClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create reservation service", err)
		os.Exit(1)
	}

	paymentMethodService, err := paymentmethodsvc.NewService(coreClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create payment method service", err)
		os.Exit(1)
	}

	supportService, err := supportsvc.NewService(coreClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create support service", err)
		os.Exit(1)
	}

	adminService, err := adminsvc.NewService(coreClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create admin service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting booking gateway")

	registry := prometheus.NewRegistry()
	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, redisClient, sessionManager, routes.Services{
			Auth:           authService,
			Search:         searchService,
			Promotions:     promotionService,
			Checkout:       checkoutService,
			Reservations:   reservationService,
			PaymentMethods: paymentMethodService,
			Support:        supportService,
			Admin:          adminService,
		}, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "gateway stopped unexpectedly", err)
		os.Exit(1)
	}
}
