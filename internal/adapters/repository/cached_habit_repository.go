package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/comitanigiacomo/lifeboard/internal/core/domain"
	"github.com/comitanigiacomo/lifeboard/internal/logging"
	"github.com/comitanigiacomo/lifeboard/internal/telemetry"
)

var _ domain.HabitRepository = (*CachedHabitRepository)(nil)

const (
	habitListKey = "habits:all"
	habitListTTL = 30 * time.Minute
)

// CachedHabitRepository keeps the habit list in redis. Every write through
// it drops the cached list.
type CachedHabitRepository struct {
	next  domain.HabitRepository
	cache *redis.Client
	log   zerolog.Logger
}

func NewCachedHabitRepository(next domain.HabitRepository, cache *redis.Client) *CachedHabitRepository {
	return &CachedHabitRepository{
		next:  next,
		cache: cache,
		log:   logging.Component("cache"),
	}
}

func (r *CachedHabitRepository) invalidate(ctx context.Context) {
	if err := r.cache.Del(ctx, habitListKey).Err(); err != nil {
		r.log.Warn().Err(err).Str("key", habitListKey).Msg("Failed to invalidate cache")
	}
}

func (r *CachedHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	val, err := r.cache.Get(ctx, habitListKey).Result()
	switch {
	case err == nil:
		var habits []*domain.Habit
		if err := json.Unmarshal([]byte(val), &habits); err == nil {
			telemetry.CacheLookupsTotal.WithLabelValues("hit").Inc()
			return habits, nil
		}
		r.log.Warn().Str("key", habitListKey).Msg("Corrupted cache entry, cleaning up key")
		r.cache.Del(ctx, habitListKey)
		telemetry.CacheLookupsTotal.WithLabelValues("miss").Inc()
	case err == redis.Nil:
		telemetry.CacheLookupsTotal.WithLabelValues("miss").Inc()
	default:
		telemetry.CacheLookupsTotal.WithLabelValues("error").Inc()
		r.log.Error().Err(err).Msg("Redis read error")
	}

	habits, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(habits); err == nil {
		if setErr := r.cache.Set(ctx, habitListKey, data, habitListTTL).Err(); setErr != nil {
			r.log.Error().Err(setErr).Msg("Redis set error")
		}
	}

	return habits, nil
}

func (r *CachedHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Create(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Update(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) Delete(ctx context.Context, id string) error {
	defer r.invalidate(ctx)
	return r.next.Delete(ctx, id)
}

func (r *CachedHabitRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	defer r.invalidate(ctx)
	return r.next.UpdateStreaks(ctx, id, current, longest)
}
