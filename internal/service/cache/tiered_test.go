package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgcache "FinPlan/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type brokenStore struct{ pkgcache.Store }

func (brokenStore) Load(context.Context, string) (pkgcache.Record, error) {
	return pkgcache.Record{}, errors.New("connection refused")
}

func TestTieredFreshThenStale(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	c := NewTiered[float64](pkgcache.NewMemoryStore(), CategoryQuote, DefaultPolicy(), WithClock(clock.Now))

	c.Put(ctx, "AAPL", 190.25)

	clock.Advance(59 * time.Minute)
	v, ok := c.Get(ctx, "AAPL")
	require.True(t, ok)
	assert.Equal(t, 190.25, v)

	clock.Advance(2 * time.Minute)
	_, ok = c.Get(ctx, "AAPL")
	assert.False(t, ok, "expired after one hour")

	stale, fetchedAt, ok := c.GetStale(ctx, "AAPL")
	require.True(t, ok)
	assert.Equal(t, 190.25, stale)
	assert.Equal(t, 61*time.Minute, clock.Now().Sub(fetchedAt))
}

func TestTieredCategoryTTLs(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, time.Hour, p.TTL(CategoryQuote))
	assert.Equal(t, time.Hour, p.TTL(CategoryForex))
	assert.Equal(t, 24*time.Hour, p.TTL(CategoryInflation))
	assert.Equal(t, 24*time.Hour, p.TTL(CategoryIndicators))
	assert.Equal(t, 4*time.Hour, p.TTL(CategorySentiment))

	merged := p.Merge(Policy{CategorySentiment: time.Hour, CategoryQuote: 0})
	assert.Equal(t, time.Hour, merged.TTL(CategorySentiment))
	assert.Equal(t, time.Hour, merged.TTL(CategoryQuote))
	assert.Equal(t, 4*time.Hour, p.TTL(CategorySentiment), "merge does not mutate")
}

func TestTieredCategoriesShareStoreWithoutCollisions(t *testing.T) {
	ctx := context.Background()
	store := pkgcache.NewMemoryStore()
	quotes := NewTiered[string](store, CategoryQuote, DefaultPolicy())
	forex := NewTiered[string](store, CategoryForex, DefaultPolicy())

	quotes.Put(ctx, "X", "quote")
	forex.Put(ctx, "X", "forex")

	q, _ := quotes.Get(ctx, "X")
	f, _ := forex.Get(ctx, "X")
	assert.Equal(t, "quote", q)
	assert.Equal(t, "forex", f)
	assert.Equal(t, 2, store.Len())
}

func TestTieredMissAndBackendError(t *testing.T) {
	ctx := context.Background()

	c := NewTiered[int](pkgcache.NewMemoryStore(), CategorySentiment, DefaultPolicy())
	_, ok := c.Get(ctx, "none")
	assert.False(t, ok)
	_, _, ok = c.GetStale(ctx, "none")
	assert.False(t, ok)

	var reported []string
	broken := NewTiered[int](brokenStore{}, CategorySentiment, DefaultPolicy(),
		WithErrorHook(func(op, key string, err error) { reported = append(reported, op+" "+key) }))
	_, ok = broken.Get(ctx, "fng")
	assert.False(t, ok)
	assert.Equal(t, []string{"load sentiment:fng"}, reported)
}
