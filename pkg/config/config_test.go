package config

import (
	"os"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("RUTAMOVIL_APP_ENV", "dev")
	t.Setenv("RUTAMOVIL_APP_PORT", "8080")
	t.Setenv("RUTAMOVIL_CORE_API_URL", "http://core-api.local")
	t.Setenv("RUTAMOVIL_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("RUTAMOVIL_JWT_SECRET", "test-secret")
	t.Setenv("RUTAMOVIL_JWT_ISSUER", "rutamovil")
	t.Setenv("RUTAMOVIL_JWT_EXPIRATION_MINUTES", "30")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !cfg.App.IsDev() || cfg.App.IsProd() {
		t.Fatalf("expected dev environment, got %q", cfg.App.Env)
	}
	if cfg.CoreAPI.Timeout != 15*time.Second {
		t.Fatalf("unexpected core api timeout %s", cfg.CoreAPI.Timeout)
	}
	if cfg.Booking.Timezone != "UTC" || cfg.Booking.StartClamp != 5*time.Minute {
		t.Fatalf("unexpected booking defaults %+v", cfg.Booking)
	}
	if cfg.Checkout.IntentTTL != 2*time.Hour {
		t.Fatalf("unexpected intent ttl %s", cfg.Checkout.IntentTTL)
	}
	if cfg.Promotions.CacheTTL != 10*time.Minute {
		t.Fatalf("unexpected promo cache ttl %s", cfg.Promotions.CacheTTL)
	}
	if cfg.JWT.SessionTTL() != 720*time.Minute {
		t.Fatalf("unexpected session ttl %s", cfg.JWT.SessionTTL())
	}
	if len(cfg.App.CORSOrigins) != 2 {
		t.Fatalf("unexpected cors origins %v", cfg.App.CORSOrigins)
	}
	if cfg.Cron.Interval != 5*time.Minute || cfg.Cron.LockTTL != 4*time.Minute {
		t.Fatalf("unexpected cron defaults %+v", cfg.Cron)
	}
}

func TestLoadRejectsBadCoreAPIURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RUTAMOVIL_CORE_API_URL", "ftp://core-api.local")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-http core api url")
	}
}

func TestLoadRejectsMissingBookingTimezone(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RUTAMOVIL_BOOKING_TIMEZONE", "   ")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for blank booking timezone")
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("RUTAMOVIL_JWT_SECRET")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing jwt secret")
	}
}
