package cache

import (
	"context"
	"errors"
	"time"

	pkgcache "FinPlan/pkg/cache"
)

// ErrorHook receives store failures other than a plain miss.
type ErrorHook func(op, key string, err error)

// Option configures a Tiered cache.
type Option func(*options)

type options struct {
	now     func() time.Time
	onError ErrorHook
}

// WithClock overrides the time source used for age checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithErrorHook installs a callback for backend errors.
func WithErrorHook(h ErrorHook) Option {
	return func(o *options) { o.onError = h }
}

// Tiered is a typed, category-scoped view over a Store.
// Freshness is decided lazily on read from the category TTL; nothing is swept in the background.
type Tiered[T any] struct {
	store    pkgcache.Store
	category Category
	ttl      time.Duration
	now      func() time.Time
	onError  ErrorHook
}

// NewTiered creates a cache for one category, taking its TTL from policy.
func NewTiered[T any](store pkgcache.Store, category Category, policy Policy, opts ...Option) *Tiered[T] {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return &Tiered[T]{
		store:    store,
		category: category,
		ttl:      policy.TTL(category),
		now:      o.now,
		onError:  o.onError,
	}
}

// Category returns the category this cache serves.
func (t *Tiered[T]) Category() Category { return t.category }

// TTL returns the freshness window.
func (t *Tiered[T]) TTL() time.Duration { return t.ttl }

// Get returns the value only if it is within the TTL.
func (t *Tiered[T]) Get(ctx context.Context, key string) (T, bool) {
	v, fetchedAt, ok := t.load(ctx, key)
	if !ok || t.now().Sub(fetchedAt) > t.ttl {
		var zero T
		return zero, false
	}
	return v, true
}

// GetStale returns the last stored value regardless of age.
func (t *Tiered[T]) GetStale(ctx context.Context, key string) (T, time.Time, bool) {
	return t.load(ctx, key)
}

// Put stores v as fetched now.
func (t *Tiered[T]) Put(ctx context.Context, key string, v T) {
	k := t.key(key)
	if err := pkgcache.SaveTyped(ctx, t.store, k, v, t.now()); err != nil {
		t.report("save", k, err)
	}
}

func (t *Tiered[T]) load(ctx context.Context, key string) (T, time.Time, bool) {
	k := t.key(key)
	v, fetchedAt, err := pkgcache.LoadTyped[T](ctx, t.store, k)
	if err != nil {
		if !errors.Is(err, pkgcache.ErrCacheMiss) {
			t.report("load", k, err)
		}
		var zero T
		return zero, time.Time{}, false
	}
	return v, fetchedAt, true
}

func (t *Tiered[T]) key(key string) string {
	return pkgcache.GenerateKey(string(t.category), key)
}

func (t *Tiered[T]) report(op, key string, err error) {
	if t.onError != nil {
		t.onError(op, key, err)
	}
}
