package cache

import (
	"context"
	"errors"
	"time"
)

// LayeredStore implements a two-level store (L1: Memory, L2: Redis).
// An L1 record older than RecheckAfter is compared against L2 and the newer fetch wins,
// so a refresh made by another process becomes visible locally.
type LayeredStore struct {
	mem          *MemoryStore
	l2           Store
	recheckAfter time.Duration
}

// NewLayeredStore creates a layered store in front of l2.
func NewLayeredStore(l2 Store, opts ...LayeredOption) *LayeredStore {
	cfg := &LayeredConfig{
		RecheckAfter: time.Minute,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &LayeredStore{
		mem:          NewMemoryStore(WithMemoryMaxSize(cfg.MemoryMaxSize)),
		l2:           l2,
		recheckAfter: cfg.RecheckAfter,
	}
}

func (ls *LayeredStore) Save(ctx context.Context, key string, rec Record) error {
	// Write-through. L1 is written even when L2 is down so stale reads still work locally.
	memErr := ls.mem.Save(ctx, key, rec)
	return errors.Join(ls.l2.Save(ctx, key, rec), memErr)
}

func (ls *LayeredStore) Load(ctx context.Context, key string) (Record, error) {
	item, ok := ls.mem.load(key)
	if ok && ls.mem.now().Sub(item.storedAt) < ls.recheckAfter {
		return item.rec, nil
	}

	rec, err := ls.l2.Load(ctx, key)
	switch {
	case err == nil:
		if ok && item.rec.FetchedAt.After(rec.FetchedAt) {
			rec = item.rec
		}
		_ = ls.mem.Save(ctx, key, rec)
		return rec, nil
	case ok:
		// L2 down or evicted; the local copy is still better than nothing.
		return item.rec, nil
	case errors.Is(err, ErrCacheMiss):
		return Record{}, ErrCacheMiss
	default:
		return Record{}, err
	}
}

func (ls *LayeredStore) Delete(ctx context.Context, keys ...string) error {
	_ = ls.mem.Delete(ctx, keys...)
	return ls.l2.Delete(ctx, keys...)
}

// Close closes both layers.
func (ls *LayeredStore) Close() error {
	_ = ls.mem.Close()
	return ls.l2.Close()
}
