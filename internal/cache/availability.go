package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ArthurMoreiraS/OperlyService/internal/config"
	"github.com/ArthurMoreiraS/OperlyService/internal/logger"
	"github.com/ArthurMoreiraS/OperlyService/internal/metrics"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/appointment"
)

// slotTTL is short on purpose: the cache only has to absorb bursts of
// public availability polling, and a booking invalidates the day anyway.
const slotTTL = 30 * time.Second

// Availability caches computed slot grids in Redis. A nil *Availability is
// valid and disables caching, so callers never branch on configuration.
type Availability struct {
	client *redis.Client
}

func NewAvailability(cfg *config.Config) *Availability {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Get().Sugar().Warnw("redis unavailable, availability cache disabled",
			"addr", cfg.RedisAddr, "err", err)
		return nil
	}
	return &Availability{client: client}
}

func key(businessID, date, serviceID string, durationMin int) string {
	return fmt.Sprintf("availability:%s:%s:%s:%d", businessID, date, serviceID, durationMin)
}

func (a *Availability) Get(
	ctx context.Context,
	businessID string,
	date string,
	serviceID string,
	durationMin int,
) ([]domain.TimeSlot, bool) {

	if a == nil {
		return nil, false
	}

	raw, err := a.client.Get(ctx, key(businessID, date, serviceID, durationMin)).Bytes()
	if err != nil {
		metrics.RecordCacheLookup(false)
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		metrics.RecordCacheLookup(false)
		return nil, false
	}

	metrics.RecordCacheLookup(true)
	return slots, true
}

func (a *Availability) Set(
	ctx context.Context,
	businessID string,
	date string,
	serviceID string,
	durationMin int,
	slots []domain.TimeSlot,
) {
	if a == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := a.client.Set(ctx, key(businessID, date, serviceID, durationMin), raw, slotTTL).Err(); err != nil {
		logger.Get().Sugar().Warnw("availability cache write failed", "err", err)
	}
}

// InvalidateDay drops every cached grid for the business on the given date,
// across all durations. Called after any booking mutation.
func (a *Availability) InvalidateDay(ctx context.Context, businessID, date string) {
	if a == nil {
		return
	}
	pattern := fmt.Sprintf("availability:%s:%s:*", businessID, date)
	keys, err := a.client.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := a.client.Del(ctx, keys...).Err(); err != nil {
		logger.Get().Sugar().Warnw("availability cache invalidation failed", "err", err)
	}
}
