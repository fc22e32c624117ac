package controllers

import (
	"context"
	"net/http"

	"github.com/rutamovil/booking-gateway/api/responses"
	"github.com/rutamovil/booking-gateway/pkg/config"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

const envHeader = "X-RutaMovil-Env"

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the redis dependency before reporting ready. The core
// API is intentionally not probed: the gateway can serve cached promotions
// and health traffic while the upstream restarts.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisClient pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis ping"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
