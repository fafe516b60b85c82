package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrCacheMiss = errors.New("cache: key not found")
)

// Record is a stored payload together with the time it was fetched upstream.
// Stores never judge freshness; the caller compares FetchedAt against its own TTL.
type Record struct {
	Value     json.RawMessage `json:"value"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Age returns how old the record is at now.
func (r Record) Age(now time.Time) time.Duration {
	return now.Sub(r.FetchedAt)
}

// Store defines the backing key/record operations.
type Store interface {
	Load(ctx context.Context, key string) (Record, error)
	Save(ctx context.Context, key string, rec Record) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// LoadTyped loads a record and decodes its payload into T.
func LoadTyped[T any](ctx context.Context, s Store, key string) (T, time.Time, error) {
	var out T
	rec, err := s.Load(ctx, key)
	if err != nil {
		return out, time.Time{}, err
	}
	if err := json.Unmarshal(rec.Value, &out); err != nil {
		return out, time.Time{}, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, rec.FetchedAt, nil
}

// SaveTyped encodes v and stores it with the given fetch time.
func SaveTyped[T any](ctx context.Context, s Store, key string, v T, fetchedAt time.Time) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Save(ctx, key, Record{Value: b, FetchedAt: fetchedAt})
}
