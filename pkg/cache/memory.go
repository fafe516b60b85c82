package cache

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	rec      Record
	storedAt time.Time
	access   time.Time
}

// MemoryStore implements Store using an in-process map.
// Entries are never expired here; optional LRU eviction applies only when MaxSize is set.
type MemoryStore struct {
	data    map[string]*memoryItem
	mutex   sync.RWMutex
	maxSize int
	now     func() time.Time
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	cfg := &MemoryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &MemoryStore{
		data:    make(map[string]*memoryItem),
		maxSize: cfg.MaxSize,
		now:     time.Now,
	}
}

func (ms *MemoryStore) Load(_ context.Context, key string) (Record, error) {
	item, ok := ms.load(key)
	if !ok {
		return Record{}, ErrCacheMiss
	}
	return item.rec, nil
}

func (ms *MemoryStore) load(key string) (memoryItem, bool) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	item, ok := ms.data[key]
	if !ok {
		return memoryItem{}, false
	}
	item.access = ms.now()
	return *item, true
}

func (ms *MemoryStore) Save(_ context.Context, key string, rec Record) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	if _, exists := ms.data[key]; !exists && ms.maxSize > 0 && len(ms.data) >= ms.maxSize {
		ms.evictLRU()
	}

	now := ms.now()
	ms.data[key] = &memoryItem{rec: rec, storedAt: now, access: now}
	return nil
}

func (ms *MemoryStore) Delete(_ context.Context, keys ...string) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	for _, key := range keys {
		delete(ms.data, key)
	}
	return nil
}

// Len reports the number of stored keys.
func (ms *MemoryStore) Len() int {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	return len(ms.data)
}

func (ms *MemoryStore) evictLRU() {
	var oldestKey string
	var oldest time.Time

	for key, item := range ms.data {
		if oldestKey == "" || item.access.Before(oldest) {
			oldest = item.access
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(ms.data, oldestKey)
	}
}

// Close is a no-op; there is no background work to stop.
func (ms *MemoryStore) Close() error {
	return nil
}
