package cron

import (
	"context"
	"fmt"

	"github.com/rutamovil/booking-gateway/pkg/logger"
)

type promotionRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

type PromoRefreshJobParams struct {
	Logger     *logger.Logger
	Promotions promotionRefresher
}

// NewPromoRefreshJob repopulates the promotion cache so checkout quotes use
// fresh discounts instead of waiting for a cache miss.
func NewPromoRefreshJob(params PromoRefreshJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Promotions == nil {
		return nil, fmt.Errorf("promotions service required")
	}
	return &promoRefreshJob{
		logg:   params.Logger,
		promos: params.Promotions,
	}, nil
}

type promoRefreshJob struct {
	logg   *logger.Logger
	promos promotionRefresher
}

func (j *promoRefreshJob) Name() string { return "promo-refresh" }

func (j *promoRefreshJob) Run(ctx context.Context) error {
	count, err := j.promos.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("promo refresh: %w", err)
	}
	logCtx := j.logg.WithField(ctx, "active_promotions", count)
	j.logg.Info(logCtx, "promotion cache refreshed")
	return nil
}
