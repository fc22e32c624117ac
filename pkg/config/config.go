package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix  = ""
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	CoreAPI       CoreAPIConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Booking       BookingConfig
	AuthRateLimit AuthRateLimitConfig
	Checkout      CheckoutConfig
	Promotions    PromotionsConfig
	Cron          CronConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.CoreAPI.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Booking.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"RUTAMOVIL_APP_ENV" required:"true"`
	Port         string   `envconfig:"RUTAMOVIL_APP_PORT" required:"true"`
	LogLevel     string   `envconfig:"RUTAMOVIL_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"RUTAMOVIL_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"RUTAMOVIL_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CoreAPIConfig points the gateway at the core platform REST API that owns
// pricing of record, reservation persistence, and user validation.
type CoreAPIConfig struct {
	BaseURL   string        `envconfig:"RUTAMOVIL_CORE_API_URL" required:"true"`
	Timeout   time.Duration `envconfig:"RUTAMOVIL_CORE_API_TIMEOUT" default:"15s"`
	UserAgent string        `envconfig:"RUTAMOVIL_CORE_API_USER_AGENT" default:"rutamovil-booking-gateway"`
}

func (c CoreAPIConfig) validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("parsing core api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("core api url must be http(s), got %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("core api timeout must be positive")
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"RUTAMOVIL_REDIS_URL" required:"true"`
	Address      string        `envconfig:"RUTAMOVIL_REDIS_ADDR"`
	Password     string        `envconfig:"RUTAMOVIL_REDIS_PASSWORD"`
	DB           int           `envconfig:"RUTAMOVIL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RUTAMOVIL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RUTAMOVIL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RUTAMOVIL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RUTAMOVIL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RUTAMOVIL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"RUTAMOVIL_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"RUTAMOVIL_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"RUTAMOVIL_JWT_EXPIRATION_MINUTES" required:"true"`
	SessionTTLMinutes int    `envconfig:"RUTAMOVIL_SESSION_TTL_MINUTES" default:"720"`
}

// SessionTTL returns the gateway session lifetime configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

// BookingConfig makes the checkout time-zone handling explicit instead of
// hiding it in constants: reservation windows are built at 12:00 (start)
// and 23:00 (end) in Timezone, and a start that is not strictly in the
// future is pushed forward by StartClamp so same-day bookings survive the
// core API's "start must be future" rule.
type BookingConfig struct {
	Timezone   string        `envconfig:"RUTAMOVIL_BOOKING_TIMEZONE" default:"UTC"`
	StartClamp time.Duration `envconfig:"RUTAMOVIL_BOOKING_START_CLAMP" default:"5m"`
}

func (b BookingConfig) validate() error {
	if strings.TrimSpace(b.Timezone) == "" {
		return fmt.Errorf("booking timezone is required")
	}
	if b.StartClamp <= 0 {
		return fmt.Errorf("booking start clamp must be positive")
	}
	return nil
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"RUTAMOVIL_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"RUTAMOVIL_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"RUTAMOVIL_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"RUTAMOVIL_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"RUTAMOVIL_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"RUTAMOVIL_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

// CheckoutConfig bounds the transient reservation-intent storage.
type CheckoutConfig struct {
	IntentTTL time.Duration `envconfig:"RUTAMOVIL_CHECKOUT_INTENT_TTL" default:"2h"`
}

type PromotionsConfig struct {
	CacheTTL time.Duration `envconfig:"RUTAMOVIL_PROMOTIONS_CACHE_TTL" default:"10m"`
}

type CronConfig struct {
	Interval time.Duration `envconfig:"RUTAMOVIL_CRON_INTERVAL" default:"5m"`
	LockTTL  time.Duration `envconfig:"RUTAMOVIL_CRON_LOCK_TTL" default:"4m"`
}
