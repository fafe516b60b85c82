package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		SlowThreshold   time.Duration `yaml:"slow_threshold" default:"2s"`
		CORSOrigins     []string      `yaml:"cors_origins"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Cache struct {
		Backend       string        `yaml:"backend" default:"memory"` // memory | redis | layered
		MemoryMaxSize int           `yaml:"memory_max_size" default:"10000"`
		RecheckAfter  time.Duration `yaml:"recheck_after" default:"30s"`
		Redis         struct {
			Addr      string        `yaml:"addr" default:"localhost:6379"`
			Password  string        `yaml:"password"`
			DB        int           `yaml:"db"`
			PoolSize  int           `yaml:"pool_size" default:"20"`
			Prefix    string        `yaml:"prefix" default:"finplan"`
			Retention time.Duration `yaml:"retention" default:"168h"`
		} `yaml:"redis"`
		// TTL overrides keyed by category (quote, forex, inflation, indicators, sentiment).
		TTL map[string]time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Providers struct {
		Yahoo        Provider `yaml:"yahoo"`
		Finnhub      Provider `yaml:"finnhub"`
		ExchangeRate Provider `yaml:"exchangerate"`
		WorldBank    Provider `yaml:"worldbank"`
		FearGreed    Provider `yaml:"feargreed"`
	} `yaml:"providers"`
	Quotes struct {
		Provider   string   `yaml:"provider" default:"yahoo"` // yahoo | finnhub
		Benchmarks []string `yaml:"benchmarks"`
	} `yaml:"quotes"`
	Throttle struct {
		Cooldown time.Duration `yaml:"cooldown" default:"1m"`
	} `yaml:"throttle"`
	Aggregate struct {
		Timeout time.Duration `yaml:"timeout" default:"15s"`
	} `yaml:"aggregate"`
	Kafka struct {
		Enabled      bool          `yaml:"enabled"`
		Brokers      []string      `yaml:"brokers"`
		Topic        string        `yaml:"topic" default:"finplan.market-context"`
		RequiredAcks int           `yaml:"required_acks" default:"-1"`
		Compression  string        `yaml:"compression" default:"gzip"`
		MaxAttempts  int           `yaml:"max_attempts" default:"3"`
		BatchTimeout time.Duration `yaml:"batch_timeout" default:"100ms"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"10s"`
		Async        bool          `yaml:"async"`
	} `yaml:"kafka"`
}

// Provider configures one upstream HTTP source.
type Provider struct {
	BaseURL     string        `yaml:"base_url"`
	APIKey      string        `yaml:"api_key"`
	Timeout     time.Duration `yaml:"timeout" default:"10s"`
	MinInterval time.Duration `yaml:"min_interval" default:"250ms"`
}

// Load reads and parses a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML bytes on top of the defaults and validates the result.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.applyEnv(os.Getenv)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("FINNHUB_API_KEY"); v != "" {
		c.Providers.Finnhub.APIKey = v
	}
	if v := getenv("QUOTES_PROVIDER"); v != "" {
		c.Quotes.Provider = v
	}
	if v := getenv("BENCHMARK_SYMBOLS"); v != "" {
		c.Quotes.Benchmarks = strings.Split(v, ",")
	}
	if v := getenv("CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}
	if v := getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
		c.Kafka.Enabled = true
	}
	if v := getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
}

func (c *Config) providers() map[string]Provider {
	p := c.Providers
	return map[string]Provider{
		"yahoo":        p.Yahoo,
		"finnhub":      p.Finnhub,
		"exchangerate": p.ExchangeRate,
		"worldbank":    p.WorldBank,
		"feargreed":    p.FearGreed,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	switch c.Cache.Backend {
	case "memory", "redis", "layered":
	default:
		return fmt.Errorf("cache.backend must be 'memory', 'redis' or 'layered', got '%s'", c.Cache.Backend)
	}
	if c.Cache.Backend != "memory" && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required for backend '%s'", c.Cache.Backend)
	}
	for name, ttl := range c.Cache.TTL {
		if ttl <= 0 {
			return fmt.Errorf("cache.ttl.%s must be positive", name)
		}
	}
	for name, p := range c.providers() {
		if p.MinInterval <= 0 {
			return fmt.Errorf("providers.%s.min_interval must be positive", name)
		}
	}
	switch c.Quotes.Provider {
	case "yahoo":
	case "finnhub":
		if c.Providers.Finnhub.APIKey == "" {
			return fmt.Errorf("providers.finnhub.api_key is required when quotes.provider is finnhub")
		}
	default:
		return fmt.Errorf("quotes.provider must be 'yahoo' or 'finnhub', got '%s'", c.Quotes.Provider)
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
		}
		if c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}
	return nil
}
