package cron

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rutamovil/booking-gateway/pkg/logger"
)

type fakeRefresher struct {
	count int
	err   error
	calls int
}

func (f *fakeRefresher) Refresh(context.Context) (int, error) {
	f.calls++
	return f.count, f.err
}

func TestPromoRefreshJob(t *testing.T) {
	refresher := &fakeRefresher{count: 3}
	job, err := NewPromoRefreshJob(PromoRefreshJobParams{
		Logger:     logger.New(logger.Options{ServiceName: "cron-test", Output: io.Discard}),
		Promotions: refresher,
	})
	if err != nil {
		t.Fatalf("construct job: %v", err)
	}
	if job.Name() != "promo-refresh" {
		t.Fatalf("unexpected name %q", job.Name())
	}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if refresher.calls != 1 {
		t.Fatalf("expected one refresh call, got %d", refresher.calls)
	}
}

func TestPromoRefreshJobPropagatesError(t *testing.T) {
	refresher := &fakeRefresher{err: errors.New("upstream down")}
	job, err := NewPromoRefreshJob(PromoRefreshJobParams{
		Logger:     logger.New(logger.Options{ServiceName: "cron-test", Output: io.Discard}),
		Promotions: refresher,
	})
	if err != nil {
		t.Fatalf("construct job: %v", err)
	}

	if err := job.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
