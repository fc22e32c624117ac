package promotions

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/rutamovil/booking-gateway/internal/pricing"
	"github.com/rutamovil/booking-gateway/pkg/coreapi"
	pkgerrors "github.com/rutamovil/booking-gateway/pkg/errors"
	"github.com/rutamovil/booking-gateway/pkg/logger"
)

// Promotion is the gateway-side view of a backend promotion. Validity dates
// stay advisory: the core API only returns promotions inside their window,
// and out-of-range discount percents pass through untouched.
type Promotion struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	DiscountPercent float64 `json:"discount_percent"`
	ImageURL        string  `json:"image_url,omitempty"`
	ValidFrom       string  `json:"valid_from"`
	ValidTo         string  `json:"valid_to"`
}

// ToPricing adapts the promotion for quote computation.
func (p *Promotion) ToPricing() *pricing.Promotion {
	if p == nil {
		return nil
	}
	from, _ := pricing.ParseDate(p.ValidFrom, nil)
	to, _ := pricing.ParseDate(p.ValidTo, nil)
	return &pricing.Promotion{
		ID:              p.ID,
		Title:           p.Title,
		DiscountPercent: p.DiscountPercent,
		ValidFrom:       from,
		ValidTo:         to,
	}
}

type catalogClient interface {
	ActivePromotions(ctx context.Context) ([]coreapi.Promotion, error)
}

type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	PromoCacheKey() string
}

// Service serves the active-promotion catalog through a redis read-through
// cache so checkout quoting does not hit the core API on every keystroke.
type Service interface {
	Active(ctx context.Context) ([]Promotion, error)
	Resolve(ctx context.Context, id int64) (*Promotion, error)
	Refresh(ctx context.Context) (int, error)
}

type service struct {
	core   catalogClient
	cache  cacheStore
	ttl    time.Duration
	logger *logger.Logger
}

func NewService(core catalogClient, cache cacheStore, ttl time.Duration, logg *logger.Logger) Service {
	return &service{core: core, cache: cache, ttl: ttl, logger: logg}
}

// Active returns the cached snapshot, falling back to the core API on a
// miss and repopulating the cache.
func (s *service) Active(ctx context.Context) ([]Promotion, error) {
	if cached, err := s.cache.Get(ctx, s.cache.PromoCacheKey()); err == nil {
		var promos []Promotion
		if err := json.Unmarshal([]byte(cached), &promos); err == nil {
			return promos, nil
		}
		// Corrupt snapshot: fall through and rebuild.
	} else if !errors.Is(err, redislib.Nil) && s.logger != nil {
		s.logger.Warn(ctx, "promotion cache read failed, falling back to core api")
	}

	promos, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, promos)
	return promos, nil
}

// Resolve finds a selected promotion among the active set.
func (s *service) Resolve(ctx context.Context, id int64) (*Promotion, error) {
	promos, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	for i := range promos {
		if promos[i].ID == id {
			return &promos[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "promotion not active")
}

// Refresh repopulates the snapshot unconditionally and reports how many
// promotions it cached. The cron worker calls this on every cycle.
func (s *service) Refresh(ctx context.Context) (int, error) {
	promos, err := s.fetch(ctx)
	if err != nil {
		return 0, err
	}
	s.store(ctx, promos)
	return len(promos), nil
}

func (s *service) fetch(ctx context.Context) ([]Promotion, error) {
	upstream, err := s.core.ActivePromotions(ctx)
	if err != nil {
		return nil, err
	}
	promos := make([]Promotion, 0, len(upstream))
	for _, p := range upstream {
		promos = append(promos, Promotion{
			ID:              p.ID,
			Title:           p.Titulo,
			Description:     p.Descripcion,
			DiscountPercent: p.Descuento,
			ImageURL:        p.ImagenURL,
			ValidFrom:       p.FechaInicio,
			ValidTo:         p.FechaFin,
		})
	}
	return promos, nil
}

func (s *service) store(ctx context.Context, promos []Promotion) {
	payload, err := json.Marshal(promos)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.PromoCacheKey(), payload, s.ttl); err != nil && s.logger != nil {
		s.logger.Warn(ctx, "promotion cache write failed")
	}
}
