package cache

import "time"

// RedisOption configures Redis store.
type RedisOption func(*RedisConfig)

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	PoolTimeout  time.Duration
	MinIdleConns int
	Prefix       string
	// Retention bounds how long a record survives in Redis, fresh or stale.
	Retention time.Duration
}

// WithRedisAddr sets Redis host:port.
func WithRedisAddr(addr string) RedisOption {
	return func(c *RedisConfig) {
		c.Addr = addr
	}
}

// WithRedisPassword sets Redis password.
func WithRedisPassword(password string) RedisOption {
	return func(c *RedisConfig) {
		c.Password = password
	}
}

// WithRedisDB sets Redis database number.
func WithRedisDB(db int) RedisOption {
	return func(c *RedisConfig) {
		c.DB = db
	}
}

// WithRedisPool sets connection pool settings.
func WithRedisPool(poolSize, minIdleConns int, timeout time.Duration) RedisOption {
	return func(c *RedisConfig) {
		c.PoolSize = poolSize
		c.MinIdleConns = minIdleConns
		c.PoolTimeout = timeout
	}
}

// WithRedisPrefix sets key prefix.
func WithRedisPrefix(prefix string) RedisOption {
	return func(c *RedisConfig) {
		c.Prefix = prefix
	}
}

// WithRedisRetention sets how long records are kept for stale fallback.
func WithRedisRetention(d time.Duration) RedisOption {
	return func(c *RedisConfig) {
		c.Retention = d
	}
}

// MemoryOption configures Memory store.
type MemoryOption func(*MemoryConfig)

// MemoryConfig holds memory store configuration.
type MemoryConfig struct {
	// MaxSize of zero means unbounded.
	MaxSize int
}

// WithMemoryMaxSize sets max number of keys before LRU eviction.
func WithMemoryMaxSize(size int) MemoryOption {
	return func(c *MemoryConfig) {
		c.MaxSize = size
	}
}

// LayeredOption configures Layered store.
type LayeredOption func(*LayeredConfig)

// LayeredConfig holds layered store configuration.
type LayeredConfig struct {
	MemoryMaxSize int
	// RecheckAfter is how long an L1 record is trusted before L2 is consulted for a newer one.
	RecheckAfter time.Duration
}

// WithLayeredMemorySize sets L1 size.
func WithLayeredMemorySize(size int) LayeredOption {
	return func(c *LayeredConfig) {
		c.MemoryMaxSize = size
	}
}

// WithLayeredRecheck sets the L1 trust window.
func WithLayeredRecheck(d time.Duration) LayeredOption {
	return func(c *LayeredConfig) {
		c.RecheckAfter = d
	}
}
