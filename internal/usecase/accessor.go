package usecase

import (
	"context"
	"errors"
	"time"

	"FinPlan/internal/domain/models"
	"FinPlan/internal/service/cache"
	applogger "FinPlan/pkg/logger"
)

// Outcome labels for cache metrics.
const (
	outcomeHit      = "hit"
	outcomeMiss     = "miss"
	outcomeStale    = "stale"
	outcomeFallback = "fallback"
	outcomeAbsent   = "absent"
)

// lookup describes one accessor call through the cache/fetch/stale/fallback sequence.
type lookup[T any] struct {
	provider string
	key      string
	cache    *cache.Tiered[T]
	fetch    func(ctx context.Context) (T, error)
	// fallback returns the static value, if the category has one.
	fallback func() (T, bool)
	// cacheable decides whether a live value is stored. Nil stores everything.
	cacheable func(T) bool
	// label stamps the origin onto the returned value. Nil leaves it untouched.
	label func(*T, models.Origin)
}

// resolve runs the accessor state machine:
// hit -> value; miss -> fetch; ok -> store; unusable -> static fallback;
// error -> stale -> static fallback -> error.
func resolve[T any](ctx context.Context, s *MarketDataService, lk lookup[T]) (T, models.Origin, error) {
	category := string(lk.cache.Category())
	log := s.log.With(
		applogger.String("provider", lk.provider),
		applogger.String("category", category),
		applogger.String("key", lk.key),
	)
	finish := func(v T, origin models.Origin, outcome string) (T, models.Origin, error) {
		if outcome != "" {
			s.metrics.RecordCache(category, outcome)
		}
		if lk.label != nil {
			lk.label(&v, origin)
		}
		return v, origin, nil
	}

	if v, ok := lk.cache.Get(ctx, lk.key); ok {
		log.Debug("cache hit")
		return finish(v, models.OriginCache, outcomeHit)
	}
	s.metrics.RecordCache(category, outcomeMiss)

	v, err := s.fetch(ctx, lk.provider, category+":"+lk.key, func(ctx context.Context) (interface{}, error) {
		return lk.fetch(ctx)
	})
	if err == nil {
		val := v.(T)
		if lk.cacheable == nil || lk.cacheable(val) {
			lk.cache.Put(ctx, lk.key, val)
		}
		return finish(val, models.OriginLive, "")
	}

	if !errors.Is(err, models.ErrNoData) {
		if stale, fetchedAt, ok := lk.cache.GetStale(ctx, lk.key); ok {
			log.Warn("upstream failed, serving stale value",
				applogger.Error(err),
				applogger.Duration("age_ms", s.now().Sub(fetchedAt)))
			return finish(stale, models.OriginStale, outcomeStale)
		}
	}

	if lk.fallback != nil {
		if fb, ok := lk.fallback(); ok {
			log.Warn("upstream failed, serving static fallback", applogger.Error(err))
			return finish(fb, models.OriginFallback, outcomeFallback)
		}
	}

	s.metrics.RecordCache(category, outcomeAbsent)
	log.Warn("upstream failed, no value available", applogger.Error(err))
	var zero T
	return zero, "", err
}

// fetch performs a single deduplicated upstream call, honoring per-provider spacing and throttle cooldowns.
// The shared call runs detached from the caller's cancellation and bounded by the flight timeout,
// so one caller giving up does not fail the others joined on the same key.
func (s *MarketDataService) fetch(ctx context.Context, provider, flightKey string, fn func(context.Context) (interface{}, error)) (interface{}, error) {
	if s.limiter.Throttled(provider) {
		s.log.Debug("provider in cooldown, skipping request", applogger.String("provider", provider))
		return nil, models.ErrThrottled
	}

	ch := s.group.DoChan(flightKey, func() (interface{}, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.flightTimeout)
		defer cancel()
		if err := s.limiter.Wait(fctx, provider); err != nil {
			return nil, errors.Join(models.ErrUnavailable, err)
		}
		start := time.Now()
		v, err := fn(fctx)
		s.metrics.RecordUpstream(provider, resultLabel(err), time.Since(start).Seconds())
		if errors.Is(err, models.ErrThrottled) {
			s.limiter.Throttle(provider, s.cooldown)
			s.log.Warn("provider throttled, cooling down",
				applogger.String("provider", provider),
				applogger.Duration("cooldown_ms", s.cooldown))
		}
		return v, err
	})
	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, errors.Join(models.ErrUnavailable, ctx.Err())
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, models.ErrThrottled):
		return "throttled"
	case errors.Is(err, models.ErrNoData):
		return "unusable"
	default:
		return "error"
	}
}
