package cron

import (
	"context"
	"fmt"

	"github.com/rutamovil/booking-gateway/pkg/logger"
)

type intentSweepStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	SRem(ctx context.Context, key string, members ...any) error
	SMembers(ctx context.Context, key string) ([]string, error)
	IntentKey(userID, intentID string) string
	IntentIndexKey(userID string) string
	IntentOwnersKey() string
}

type IntentSweepJobParams struct {
	Logger *logger.Logger
	Store  intentSweepStore
}

// NewIntentSweepJob prunes index entries for checkout intents whose payloads
// already expired. Intent values carry a TTL; the per-user index sets do not,
// so without the sweep they grow with every abandoned checkout.
func NewIntentSweepJob(params IntentSweepJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("intent store required")
	}
	return &intentSweepJob{
		logg:  params.Logger,
		store: params.Store,
	}, nil
}

type intentSweepJob struct {
	logg  *logger.Logger
	store intentSweepStore
}

func (j *intentSweepJob) Name() string { return "intent-sweep" }

func (j *intentSweepJob) Run(ctx context.Context) error {
	owners, err := j.store.SMembers(ctx, j.store.IntentOwnersKey())
	if err != nil {
		return fmt.Errorf("list intent owners: %w", err)
	}

	var pruned, live int
	for _, userID := range owners {
		indexKey := j.store.IntentIndexKey(userID)
		intentIDs, err := j.store.SMembers(ctx, indexKey)
		if err != nil {
			return fmt.Errorf("list intents for user %s: %w", userID, err)
		}

		remaining := len(intentIDs)
		for _, intentID := range intentIDs {
			exists, err := j.store.Exists(ctx, j.store.IntentKey(userID, intentID))
			if err != nil {
				return fmt.Errorf("check intent %s: %w", intentID, err)
			}
			if exists {
				live++
				continue
			}
			if err := j.store.SRem(ctx, indexKey, intentID); err != nil {
				return fmt.Errorf("prune intent %s: %w", intentID, err)
			}
			pruned++
			remaining--
		}

		if remaining == 0 {
			if err := j.store.SRem(ctx, j.store.IntentOwnersKey(), userID); err != nil {
				return fmt.Errorf("prune owner %s: %w", userID, err)
			}
		}
	}

	logCtx := j.logg.WithFields(ctx, map[string]any{
		"owners":         len(owners),
		"pruned_intents": pruned,
		"live_intents":   live,
	})
	j.logg.Info(logCtx, "intent sweep complete")
	return nil
}
