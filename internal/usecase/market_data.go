package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"FinPlan/internal/domain/models"
	domrepo "FinPlan/internal/domain/repository"
	"FinPlan/internal/service/cache"
	"FinPlan/internal/service/ratelimit"
	"FinPlan/internal/service/reference"
	pkgcache "FinPlan/pkg/cache"
	applogger "FinPlan/pkg/logger"
	"FinPlan/pkg/metrics"

	"golang.org/x/sync/singleflight"
)

// Sources groups the upstream clients used by MarketDataService.
type Sources struct {
	Quotes    domrepo.QuoteSource
	Forex     domrepo.ForexSource
	Inflation domrepo.InflationSource
	Sentiment domrepo.SentimentSource
	// Treasury serves the yield curve tickers. Nil uses Quotes.
	Treasury domrepo.QuoteSource
}

// MarketDataService implements the per-category accessors on top of a shared store.
type MarketDataService struct {
	src      Sources
	limiter  *ratelimit.Limiter
	metrics  domrepo.Metrics
	log      *applogger.Logger
	now      func() time.Time
	cooldown time.Duration
	group    singleflight.Group

	flightTimeout time.Duration

	quotes     *cache.Tiered[models.Quote]
	forex      *cache.Tiered[models.RateTable]
	inflation  *cache.Tiered[models.InflationRecord]
	indicators *cache.Tiered[models.EconomicIndicatorSet]
	sentiment  *cache.Tiered[models.SentimentIndex]
}

// DefaultFlightTimeout bounds one shared upstream call.
const DefaultFlightTimeout = 15 * time.Second

type MarketDataOption func(*MarketDataService)

// WithMarketClock overrides the clock used for TTL checks and fallback timestamps.
func WithMarketClock(now func() time.Time) MarketDataOption {
	return func(s *MarketDataService) { s.now = now }
}

// WithThrottleCooldown sets how long a provider is skipped after a 429.
func WithThrottleCooldown(d time.Duration) MarketDataOption {
	return func(s *MarketDataService) {
		if d > 0 {
			s.cooldown = d
		}
	}
}

// WithFlightTimeout bounds each shared upstream call independently of the callers' contexts.
func WithFlightTimeout(d time.Duration) MarketDataOption {
	return func(s *MarketDataService) {
		if d > 0 {
			s.flightTimeout = d
		}
	}
}

func NewMarketDataService(src Sources, store pkgcache.Store, policy cache.Policy, limiter *ratelimit.Limiter, m domrepo.Metrics, l *applogger.Logger, opts ...MarketDataOption) *MarketDataService {
	if l == nil {
		l = applogger.NewNop()
	}
	if limiter == nil {
		limiter = ratelimit.New()
	}
	if policy == nil {
		policy = cache.DefaultPolicy()
	}
	s := &MarketDataService{
		src:      src,
		limiter:  limiter,
		metrics:  m,
		log:      l.Component("market_data"),
		now:      time.Now,
		cooldown: ratelimit.DefaultCooldown,

		flightTimeout: DefaultFlightTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.Nop{}
	}

	copts := []cache.Option{
		cache.WithClock(s.now),
		cache.WithErrorHook(func(op, key string, err error) {
			s.log.Warn("cache backend error", applogger.String("op", op), applogger.String("key", key), applogger.Error(err))
		}),
	}
	s.quotes = cache.NewTiered[models.Quote](store, cache.CategoryQuote, policy, copts...)
	s.forex = cache.NewTiered[models.RateTable](store, cache.CategoryForex, policy, copts...)
	s.inflation = cache.NewTiered[models.InflationRecord](store, cache.CategoryInflation, policy, copts...)
	s.indicators = cache.NewTiered[models.EconomicIndicatorSet](store, cache.CategoryIndicators, policy, copts...)
	s.sentiment = cache.NewTiered[models.SentimentIndex](store, cache.CategorySentiment, policy, copts...)
	return s
}

// GetStockQuote returns a quote for symbol. There is no static fallback for quotes,
// so an unavailable upstream with no cached value yields models.ErrUnavailable.
func (s *MarketDataService) GetStockQuote(ctx context.Context, symbol string) (models.Quote, error) {
	return s.quote(ctx, s.src.Quotes, symbol)
}

func (s *MarketDataService) treasuryQuote(ctx context.Context, symbol string) (models.Quote, error) {
	if s.src.Treasury == nil {
		return s.quote(ctx, s.src.Quotes, symbol)
	}
	return s.quote(ctx, s.src.Treasury, symbol)
}

func (s *MarketDataService) quote(ctx context.Context, src domrepo.QuoteSource, symbol string) (models.Quote, error) {
	sym, err := reference.NormalizeSymbol(symbol)
	if err != nil {
		return models.Quote{}, err
	}
	q, _, err := resolve(ctx, s, lookup[models.Quote]{
		provider: src.Name(),
		key:      sym,
		cache:    s.quotes,
		fetch: func(ctx context.Context) (models.Quote, error) {
			return src.FetchQuote(ctx, sym)
		},
		label: func(q *models.Quote, o models.Origin) { q.Origin = o },
	})
	if err != nil {
		return models.Quote{}, fmt.Errorf("quote %s: %w", sym, err)
	}
	return q, nil
}

// GetMultipleStocks fetches symbols concurrently and returns whatever resolved, keyed by normalized symbol.
func (s *MarketDataService) GetMultipleStocks(ctx context.Context, symbols []string) map[string]models.Quote {
	out := make(map[string]models.Quote, len(symbols))
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		seen = make(map[string]bool, len(symbols))
	)
	for _, raw := range symbols {
		sym, err := reference.NormalizeSymbol(raw)
		if err != nil {
			s.log.Warn("skipping invalid symbol", applogger.String("symbol", raw))
			continue
		}
		if seen[sym] {
			continue
		}
		seen[sym] = true

		wg.Add(1)
		go func(sym string) {
			defer wg.Done()
			q, err := s.GetStockQuote(ctx, sym)
			if err != nil {
				return
			}
			mu.Lock()
			out[sym] = q
			mu.Unlock()
		}(sym)
	}
	wg.Wait()
	return out
}

// GetForexRate returns the spot rate from -> to. Rate tables are cached per base currency.
func (s *MarketDataService) GetForexRate(ctx context.Context, from, to string) (models.ForexRate, error) {
	base, err := reference.NormalizeCurrency(from)
	if err != nil {
		return models.ForexRate{}, err
	}
	quote, err := reference.NormalizeCurrency(to)
	if err != nil {
		return models.ForexRate{}, err
	}
	if base == quote {
		return models.ForexRate{From: base, To: quote, Rate: 1, Timestamp: s.now().UTC(), Origin: models.OriginLive}, nil
	}

	tbl, origin, err := resolve(ctx, s, lookup[models.RateTable]{
		provider: s.src.Forex.Name(),
		key:      base,
		cache:    s.forex,
		fetch: func(ctx context.Context) (models.RateTable, error) {
			return s.src.Forex.FetchRates(ctx, base)
		},
	})
	if err != nil {
		return models.ForexRate{}, fmt.Errorf("forex %s/%s: %w", base, quote, err)
	}
	rate, ok := tbl.Rates[quote]
	if !ok || rate <= 0 {
		return models.ForexRate{}, fmt.Errorf("forex %s/%s: unknown currency: %w", base, quote, models.ErrInvalidIdentifier)
	}
	return models.ForexRate{From: base, To: quote, Rate: rate, Timestamp: tbl.Timestamp, Origin: origin}, nil
}

// GetInflationRate always yields a record for a well-formed country code.
func (s *MarketDataService) GetInflationRate(ctx context.Context, country string) (models.InflationRecord, error) {
	cc, err := reference.NormalizeCountry(country)
	if err != nil {
		return models.InflationRecord{}, err
	}
	fallback := func() (models.InflationRecord, bool) { return reference.FallbackInflation(cc), true }
	rec, _, err := resolve(ctx, s, lookup[models.InflationRecord]{
		provider: s.src.Inflation.Name(),
		key:      cc,
		cache:    s.inflation,
		fetch: func(ctx context.Context) (models.InflationRecord, error) {
			return s.src.Inflation.FetchInflation(ctx, cc)
		},
		fallback: fallback,
		label:    func(r *models.InflationRecord, o models.Origin) { r.Origin = o },
	})
	if err != nil {
		rec, _ = fallback()
	}
	return rec, nil
}

// GetCryptoSentimentIndex always yields a value, neutral when nothing else is available.
func (s *MarketDataService) GetCryptoSentimentIndex(ctx context.Context) models.SentimentIndex {
	fallback := func() (models.SentimentIndex, bool) { return reference.FallbackSentiment(s.now().UTC()), true }
	idx, _, err := resolve(ctx, s, lookup[models.SentimentIndex]{
		provider: s.src.Sentiment.Name(),
		key:      "fng",
		cache:    s.sentiment,
		fetch:    s.src.Sentiment.FetchSentiment,
		fallback: fallback,
		label:    func(v *models.SentimentIndex, o models.Origin) { v.Origin = o },
	})
	if err != nil {
		idx, _ = fallback()
	}
	return idx
}

// GetEconomicIndicators merges curated constants with live-derived entries.
// For the US the yield curve spread is derived from the 10Y and 3M treasury quotes and
// omitted when either is missing. A set is cached only when every derived entry resolved
// from a fresh value, so a gap is retried on the next call.
func (s *MarketDataService) GetEconomicIndicators(ctx context.Context, country string) (models.EconomicIndicatorSet, error) {
	cc, err := reference.NormalizeCountry(country)
	if err != nil {
		return models.EconomicIndicatorSet{}, err
	}
	if set, ok := s.indicators.Get(ctx, cc); ok {
		s.metrics.RecordCache(string(cache.CategoryIndicators), outcomeHit)
		set.Origin = models.OriginCache
		return set, nil
	}
	s.metrics.RecordCache(string(cache.CategoryIndicators), outcomeMiss)

	now := s.now().UTC()
	set := models.EconomicIndicatorSet{
		Country:    cc,
		Indicators: reference.CuratedIndicators(cc, now),
		AsOf:       now,
		Origin:     models.OriginCurated,
	}

	complete := true
	if reference.HasYieldCurve(cc) {
		var long, short models.Quote
		var longErr, shortErr error
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			long, longErr = s.treasuryQuote(ctx, reference.SymbolTreasury10Y)
		}()
		go func() {
			defer wg.Done()
			short, shortErr = s.treasuryQuote(ctx, reference.SymbolTreasury3M)
		}()
		wg.Wait()

		if longErr == nil && shortErr == nil {
			origin := worstOrigin(long.Origin, short.Origin)
			add := func(name string, v float64, unit string, ts time.Time) {
				set.Indicators[name] = models.Indicator{Name: name, Value: v, Unit: unit, Country: cc, Timestamp: ts, Origin: origin}
			}
			add(models.IndicatorTreasury10Y, long.Price, "percent", long.AsOf)
			add(models.IndicatorTreasury3M, short.Price, "percent", short.AsOf)
			add(models.IndicatorYieldSpread, long.Price-short.Price, "percentage points", now)
			set.Origin = origin
			complete = origin == models.OriginLive || origin == models.OriginCache
		} else {
			complete = false
			s.log.Warn("yield curve spread omitted",
				applogger.String("country", cc),
				applogger.Any("long_error", errString(longErr)),
				applogger.Any("short_error", errString(shortErr)))
		}
	}

	if complete {
		s.indicators.Put(ctx, cc, set)
	}
	return set, nil
}

// GetFinancialBenchmarks returns the static benchmark tables.
func (s *MarketDataService) GetFinancialBenchmarks() models.FinancialBenchmarks {
	return reference.Benchmarks()
}

// worstOrigin picks the least fresh of two origins.
func worstOrigin(a, b models.Origin) models.Origin {
	rank := map[models.Origin]int{
		models.OriginLive:     0,
		models.OriginCache:    1,
		models.OriginStale:    2,
		models.OriginFallback: 3,
	}
	if rank[b] > rank[a] {
		return b
	}
	return a
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
