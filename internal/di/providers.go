package di

import (
	"fmt"

	"FinPlan/internal/domain/repository"
	"FinPlan/internal/handler/api"
	internalrepo "FinPlan/internal/repository"
	"FinPlan/internal/service/cache"
	"FinPlan/internal/service/exchangerate"
	"FinPlan/internal/service/feargreed"
	"FinPlan/internal/service/finnhub"
	imetrics "FinPlan/internal/service/metrics"
	"FinPlan/internal/service/ratelimit"
	"FinPlan/internal/service/worldbank"
	"FinPlan/internal/service/yahoo"
	"FinPlan/internal/usecase"
	pkgcache "FinPlan/pkg/cache"
	"FinPlan/pkg/config"
	xhttp "FinPlan/pkg/http"
	pkgkafka "FinPlan/pkg/kafka"
	applogger "FinPlan/pkg/logger"
	"FinPlan/pkg/metrics"
	"FinPlan/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ProvideLogger creates the application logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideRegistry creates the Prometheus registry every collector registers on.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg *prometheus.Registry) repository.Metrics {
	return metrics.New(reg)
}

// ProvideEndpointMetrics creates the per-endpoint API metrics.
func ProvideEndpointMetrics(reg *prometheus.Registry) *imetrics.Endpoint {
	return imetrics.NewEndpoint(reg)
}

// ProvideCacheStore builds the cache backend selected by cache.backend.
func ProvideCacheStore(cfg *config.Config) (pkgcache.Store, error) {
	c := cfg.Cache
	if c.Backend == "memory" {
		return pkgcache.NewMemoryStore(pkgcache.WithMemoryMaxSize(c.MemoryMaxSize)), nil
	}

	redisStore, err := pkgcache.NewRedisStore(
		pkgcache.WithRedisAddr(c.Redis.Addr),
		pkgcache.WithRedisPassword(c.Redis.Password),
		pkgcache.WithRedisDB(c.Redis.DB),
		pkgcache.WithRedisPool(c.Redis.PoolSize, 2, cfg.Server.ReadTimeout),
		pkgcache.WithRedisPrefix(c.Redis.Prefix),
		pkgcache.WithRedisRetention(c.Redis.Retention),
	)
	if err != nil {
		return nil, fmt.Errorf("cache store: %w", err)
	}
	if c.Backend == "redis" {
		return redisStore, nil
	}
	return pkgcache.NewLayeredStore(redisStore,
		pkgcache.WithLayeredMemorySize(c.MemoryMaxSize),
		pkgcache.WithLayeredRecheck(c.RecheckAfter),
	), nil
}

// ProvideCachePolicy merges configured TTL overrides onto the default policy.
func ProvideCachePolicy(cfg *config.Config) cache.Policy {
	overrides := make(cache.Policy, len(cfg.Cache.TTL))
	for name, ttl := range cfg.Cache.TTL {
		overrides[cache.Category(name)] = ttl
	}
	return cache.DefaultPolicy().Merge(overrides)
}

// ProvideLimiter configures per-provider call spacing.
func ProvideLimiter(cfg *config.Config) *ratelimit.Limiter {
	p := cfg.Providers
	return ratelimit.New(
		ratelimit.WithSpacing(yahoo.Name, p.Yahoo.MinInterval),
		ratelimit.WithSpacing(finnhub.Name, p.Finnhub.MinInterval),
		ratelimit.WithSpacing(exchangerate.Name, p.ExchangeRate.MinInterval),
		ratelimit.WithSpacing(worldbank.Name, p.WorldBank.MinInterval),
		ratelimit.WithSpacing(feargreed.Name, p.FearGreed.MinInterval),
	)
}

// ProvideSources creates the upstream clients.
func ProvideSources(cfg *config.Config) usecase.Sources {
	p := cfg.Providers
	src := usecase.Sources{
		Quotes:    yahoo.New(p.Yahoo.BaseURL, p.Yahoo.Timeout),
		Forex:     exchangerate.New(p.ExchangeRate.BaseURL, p.ExchangeRate.Timeout),
		Inflation: worldbank.New(p.WorldBank.BaseURL, p.WorldBank.Timeout),
		Sentiment: feargreed.New(p.FearGreed.BaseURL, p.FearGreed.Timeout),
	}
	if cfg.Quotes.Provider == "finnhub" {
		// Finnhub does not serve the ^TNX/^IRX index tickers; keep Yahoo for the yield curve.
		src.Treasury = src.Quotes
		src.Quotes = finnhub.New(p.Finnhub.APIKey, p.Finnhub.BaseURL, p.Finnhub.Timeout)
	}
	return src
}

// ProvideMarketDataService creates the cached market data accessors.
func ProvideMarketDataService(
	cfg *config.Config,
	src usecase.Sources,
	store pkgcache.Store,
	policy cache.Policy,
	limiter *ratelimit.Limiter,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.MarketDataService {
	return usecase.NewMarketDataService(src, store, policy, limiter, m, l,
		usecase.WithThrottleCooldown(cfg.Throttle.Cooldown),
		usecase.WithFlightTimeout(cfg.Aggregate.Timeout),
	)
}

// ProvideSnapshotPublisher creates the Kafka snapshot publisher, or nil when kafka is disabled.
func ProvideSnapshotPublisher(cfg *config.Config, reg *prometheus.Registry) (repository.SnapshotPublisher, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	k := cfg.Kafka
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(k.Brokers),
		pkgkafka.WithCompression(k.Compression),
		pkgkafka.WithRequiredAcks(k.RequiredAcks),
		pkgkafka.WithBatchTimeout(k.BatchTimeout),
		pkgkafka.WithTimeouts(k.WriteTimeout, k.ReadTimeout),
		pkgkafka.WithMaxAttempts(k.MaxAttempts),
		pkgkafka.WithAsync(k.Async),
		pkgkafka.WithHashByKey(true),
		pkgkafka.WithRegisterer(reg),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaSnapshotPublisher(producer, k.Topic, k.WriteTimeout), nil
}

// ProvideMarketContextAggregator creates the market context fan-out.
func ProvideMarketContextAggregator(
	cfg *config.Config,
	data *usecase.MarketDataService,
	pub repository.SnapshotPublisher,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.MarketContextAggregator {
	opts := []usecase.AggregatorOption{usecase.WithAggregateTimeout(cfg.Aggregate.Timeout)}
	if len(cfg.Quotes.Benchmarks) > 0 {
		opts = append(opts, usecase.WithBenchmarkSymbols(cfg.Quotes.Benchmarks))
	}
	if pub != nil {
		opts = append(opts, usecase.WithSnapshotPublisher(pub))
	}
	return usecase.NewMarketContextAggregator(data, m, l, opts...)
}

// ProvidePlanningService creates the projection use case.
func ProvidePlanningService(data *usecase.MarketDataService, l *applogger.Logger) *usecase.PlanningService {
	return usecase.NewPlanningService(data, l)
}

// ProvideHandlers creates every HTTP route group.
func ProvideHandlers(
	l *applogger.Logger,
	data *usecase.MarketDataService,
	agg *usecase.MarketContextAggregator,
	planner *usecase.PlanningService,
	em *imetrics.Endpoint,
) []xhttp.Handler {
	return []xhttp.Handler{
		api.NewMarketEchoHandler(l, data, agg, em),
		api.NewProjectionEchoHandler(l, planner, em),
	}
}

// ProvideHTTPServer creates the echo server.
func ProvideHTTPServer(cfg *config.Config, reg *prometheus.Registry, l *applogger.Logger, handlers []xhttp.Handler) *xhttp.Server {
	s := cfg.Server
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	return xhttp.NewServer(handlers,
		xhttp.WithHost(s.Host),
		xhttp.WithPort(s.Port),
		xhttp.WithTimeouts(s.ReadTimeout, s.WriteTimeout, s.ShutdownTimeout),
		xhttp.WithSlowThreshold(s.SlowThreshold),
		xhttp.WithCORS(true, s.CORSOrigins...),
		xhttp.WithMetrics(reg, metricsPath),
		xhttp.WithLogger(l),
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	srv *xhttp.Server,
	store pkgcache.Store,
	pub repository.SnapshotPublisher,
) *server.App {
	return server.New(cfg, l, srv, store, pub)
}
