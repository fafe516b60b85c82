package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"FinPlan/internal/domain/models"
	domrepo "FinPlan/internal/domain/repository"
	domsvc "FinPlan/internal/domain/service"
	"FinPlan/internal/service/reference"
	applogger "FinPlan/pkg/logger"
	"FinPlan/pkg/metrics"
)

// Branch names of the market context fan-out.
const (
	branchBenchmarks = "benchmarks"
	branchInflation  = "inflation"
	branchIndicators = "indicators"
	branchSentiment  = "sentiment"
)

// MarketContextAggregator assembles market snapshots from independent accessors.
type MarketContextAggregator struct {
	data       domsvc.MarketData
	publisher  domrepo.SnapshotPublisher
	metrics    domrepo.Metrics
	log        *applogger.Logger
	benchmarks []string
	timeout    time.Duration
	now        func() time.Time
}

type AggregatorOption func(*MarketContextAggregator)

// WithBenchmarkSymbols overrides the index symbols quoted in each snapshot.
func WithBenchmarkSymbols(symbols []string) AggregatorOption {
	return func(a *MarketContextAggregator) {
		if len(symbols) > 0 {
			a.benchmarks = symbols
		}
	}
}

// WithAggregateTimeout bounds a whole fan-out.
func WithAggregateTimeout(d time.Duration) AggregatorOption {
	return func(a *MarketContextAggregator) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithSnapshotPublisher ships every assembled context downstream. Nil disables publishing.
func WithSnapshotPublisher(p domrepo.SnapshotPublisher) AggregatorOption {
	return func(a *MarketContextAggregator) { a.publisher = p }
}

func WithAggregatorClock(now func() time.Time) AggregatorOption {
	return func(a *MarketContextAggregator) { a.now = now }
}

func NewMarketContextAggregator(data domsvc.MarketData, m domrepo.Metrics, l *applogger.Logger, opts ...AggregatorOption) *MarketContextAggregator {
	if l == nil {
		l = applogger.NewNop()
	}
	if m == nil {
		m = metrics.Nop{}
	}
	a := &MarketContextAggregator{
		data:       data,
		metrics:    m,
		log:        l.Component("market_context"),
		benchmarks: reference.DefaultBenchmarkSymbols,
		timeout:    15 * time.Second,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// GetMarketContext fans out to every accessor and settles all of them.
// A failed branch leaves its field absent and is recorded in Errors; the aggregate never fails.
func (a *MarketContextAggregator) GetMarketContext(ctx context.Context, country string) models.MarketContext {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	res := models.MarketContext{
		Country:     strings.ToUpper(strings.TrimSpace(country)),
		GeneratedAt: a.now().UTC(),
		Errors:      map[string]string{},
	}

	type item struct {
		name string
		val  interface{}
		err  error
	}
	ch := make(chan item, 4)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v := a.data.GetMultipleStocks(ctx, a.benchmarks)
		var err error
		if len(v) == 0 {
			err = models.ErrUnavailable
		}
		ch <- item{branchBenchmarks, v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := a.data.GetInflationRate(ctx, country)
		ch <- item{branchInflation, v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := a.data.GetEconomicIndicators(ctx, country)
		if err == nil && len(v.Indicators) == 0 {
			err = models.ErrNoData
		}
		ch <- item{branchIndicators, v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		ch <- item{branchSentiment, a.data.GetCryptoSentimentIndex(ctx), nil}
	}()

	go func() { wg.Wait(); close(ch) }()

	for it := range ch {
		if it.err != nil {
			res.Errors[it.name] = it.err.Error()
			a.metrics.RecordBranchFailure(it.name)
			a.log.Warn("market context branch unavailable",
				applogger.String("branch", it.name),
				applogger.String("country", res.Country),
				applogger.Error(it.err))
			continue
		}
		switch it.name {
		case branchBenchmarks:
			res.Benchmarks = it.val.(map[string]models.Quote)
		case branchInflation:
			v := it.val.(models.InflationRecord)
			res.Inflation = &v
			res.Country = v.Country
		case branchIndicators:
			v := it.val.(models.EconomicIndicatorSet)
			res.Indicators = &v
		case branchSentiment:
			v := it.val.(models.SentimentIndex)
			res.Sentiment = &v
		}
	}

	if len(res.Errors) == 0 {
		res.Errors = nil
	}
	a.publish(ctx, res)
	return res
}

// GetMarketNarrative renders the snapshot as fixed-order text sections.
func (a *MarketContextAggregator) GetMarketNarrative(ctx context.Context, country string) string {
	return RenderNarrative(a.GetMarketContext(ctx, country))
}

func (a *MarketContextAggregator) publish(ctx context.Context, mc models.MarketContext) {
	if a.publisher == nil {
		return
	}
	err := a.publisher.PublishSnapshot(ctx, mc)
	a.metrics.RecordSnapshotPublished(err == nil)
	if err != nil {
		a.log.Warn("publish market snapshot failed", applogger.String("country", mc.Country), applogger.Error(err))
	}
}
