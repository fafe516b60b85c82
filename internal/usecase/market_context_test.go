package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"FinPlan/internal/domain/models"
	"FinPlan/internal/service/reference"
	applogger "FinPlan/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMarketData struct {
	quotes     map[string]models.Quote
	inflation  models.InflationRecord
	inflErr    error
	indicators models.EconomicIndicatorSet
	indErr     error
	sentiment  models.SentimentIndex
	delay      time.Duration
}

func (s *stubMarketData) GetStockQuote(ctx context.Context, symbol string) (models.Quote, error) {
	q, ok := s.quotes[symbol]
	if !ok {
		return models.Quote{}, models.ErrUnavailable
	}
	return q, nil
}

func (s *stubMarketData) GetMultipleStocks(ctx context.Context, symbols []string) map[string]models.Quote {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	out := map[string]models.Quote{}
	for _, sym := range symbols {
		if q, ok := s.quotes[sym]; ok {
			out[sym] = q
		}
	}
	return out
}

func (s *stubMarketData) GetForexRate(ctx context.Context, from, to string) (models.ForexRate, error) {
	return models.ForexRate{}, models.ErrUnavailable
}

func (s *stubMarketData) GetInflationRate(ctx context.Context, country string) (models.InflationRecord, error) {
	return s.inflation, s.inflErr
}

func (s *stubMarketData) GetEconomicIndicators(ctx context.Context, country string) (models.EconomicIndicatorSet, error) {
	return s.indicators, s.indErr
}

func (s *stubMarketData) GetCryptoSentimentIndex(ctx context.Context) models.SentimentIndex {
	return s.sentiment
}

func (s *stubMarketData) GetFinancialBenchmarks() models.FinancialBenchmarks {
	return reference.Benchmarks()
}

type recordingPublisher struct {
	mu   sync.Mutex
	got  []models.MarketContext
	fail bool
}

func (p *recordingPublisher) PublishSnapshot(_ context.Context, mc models.MarketContext) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, mc)
	if p.fail {
		return errors.New("broker down")
	}
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func fullStub() *stubMarketData {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return &stubMarketData{
		quotes: map[string]models.Quote{
			"^GSPC": {Symbol: "^GSPC", Price: 5100, ChangePercent: 1.5, Origin: models.OriginLive},
			"^IXIC": {Symbol: "^IXIC", Price: 16000, ChangePercent: 1.1, Origin: models.OriginLive},
			"^DJI":  {Symbol: "^DJI", Price: 39000, ChangePercent: 0.7, Origin: models.OriginLive},
		},
		inflation: models.InflationRecord{Country: "US", Rate: 4.6, Year: 2023, Origin: models.OriginLive},
		indicators: models.EconomicIndicatorSet{
			Country: "US",
			Indicators: map[string]models.Indicator{
				models.IndicatorYieldSpread: {Name: models.IndicatorYieldSpread, Value: -0.8, Timestamp: now, Origin: models.OriginLive},
				models.IndicatorPolicyRate:  {Name: models.IndicatorPolicyRate, Value: 4.5, Origin: models.OriginCurated},
			},
		},
		sentiment: models.SentimentIndex{Value: 20, Class: models.SentimentExtremeFear, Origin: models.OriginLive},
	}
}

func newAggregator(data *stubMarketData, opts ...AggregatorOption) *MarketContextAggregator {
	opts = append(opts, WithAggregatorClock(func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }))
	return NewMarketContextAggregator(data, nil, applogger.NewNop(), opts...)
}

func TestGetMarketContextAllBranches(t *testing.T) {
	pub := &recordingPublisher{}
	agg := newAggregator(fullStub(), WithSnapshotPublisher(pub))

	mc := agg.GetMarketContext(context.Background(), "us")
	assert.Len(t, mc.Benchmarks, 3)
	require.NotNil(t, mc.Inflation)
	require.NotNil(t, mc.Indicators)
	require.NotNil(t, mc.Sentiment)
	assert.Nil(t, mc.Errors)
	assert.Equal(t, "US", mc.Country)
	require.Len(t, pub.got, 1)
	assert.Equal(t, mc.Country, pub.got[0].Country)
}

func TestGetMarketContextPartialFailure(t *testing.T) {
	data := fullStub()
	data.quotes = nil
	data.indErr = models.ErrInvalidIdentifier

	mc := newAggregator(data).GetMarketContext(context.Background(), "US")
	assert.Nil(t, mc.Benchmarks)
	assert.Nil(t, mc.Indicators)
	require.NotNil(t, mc.Inflation, "siblings survive")
	require.NotNil(t, mc.Sentiment)
	assert.Contains(t, mc.Errors, branchBenchmarks)
	assert.Contains(t, mc.Errors, branchIndicators)
}

func TestGetMarketContextPublishFailureIsIgnored(t *testing.T) {
	pub := &recordingPublisher{fail: true}
	mc := newAggregator(fullStub(), WithSnapshotPublisher(pub)).GetMarketContext(context.Background(), "US")
	assert.NotNil(t, mc.Inflation)
	assert.Len(t, pub.got, 1)
}

func TestGetMarketNarrativeSectionOrder(t *testing.T) {
	data := fullStub()
	data.delay = 20 * time.Millisecond // benchmarks settle last

	text := newAggregator(data).GetMarketNarrative(context.Background(), "US")

	idx := func(s string) int { return strings.Index(text, s) }
	require.NotEqual(t, -1, idx(SectionStocks))
	assert.Less(t, idx(SectionStocks), idx(SectionCrypto))
	assert.Less(t, idx(SectionCrypto), idx(SectionMacro))
	assert.Less(t, idx(SectionMacro), idx(SectionGuidance))

	assert.Contains(t, text, "Overall: STRONGLY BULLISH")
	assert.Contains(t, text, "HIGH inflation")
	assert.Contains(t, text, "INVERTED yield curve")
	assert.Contains(t, text, "Fear & Greed Index: 20/100 (Extreme Fear)")
	assert.Contains(t, text, "S&P 500 (^GSPC)")
}

func TestRenderNarrativeOmitsMissingSections(t *testing.T) {
	mc := models.MarketContext{
		Country:   "DE",
		Inflation: &models.InflationRecord{Country: "DE", Rate: 2.5, Year: 2024, Origin: models.OriginFallback},
		Sentiment: &models.SentimentIndex{Value: 50, Class: models.SentimentNeutral, Origin: models.OriginFallback},
	}
	text := RenderNarrative(mc)
	assert.NotContains(t, text, SectionStocks)
	assert.Contains(t, text, SectionCrypto)
	assert.Contains(t, text, "historical average")
	assert.Contains(t, text, "MODERATE inflation")
	assert.NotContains(t, text, "yield curve")
	assert.Contains(t, text, SectionGuidance)

	empty := RenderNarrative(models.MarketContext{Country: "ZZ"})
	assert.NotContains(t, empty, SectionGuidance)
	assert.Contains(t, empty, "currently unavailable")
}

func TestThresholdLabels(t *testing.T) {
	assert.Equal(t, "HIGH", InflationLabel(4.01))
	assert.Equal(t, "MODERATE", InflationLabel(4))
	assert.Equal(t, "MODERATE", InflationLabel(2))
	assert.Equal(t, "LOW", InflationLabel(0))
	assert.Equal(t, "DEFLATION", InflationLabel(-0.1))

	assert.Equal(t, "INVERTED", YieldCurveLabel(-0.01))
	assert.Equal(t, "FLAT", YieldCurveLabel(0))
	assert.Equal(t, "FLAT", YieldCurveLabel(0.49))
	assert.Equal(t, "NORMAL", YieldCurveLabel(0.5))

	assert.Equal(t, "STRONGLY BULLISH", StockSentimentLabel(1))
	assert.Equal(t, "BULLISH", StockSentimentLabel(0.25))
	assert.Equal(t, "NEUTRAL", StockSentimentLabel(0.2))
	assert.Equal(t, "NEUTRAL", StockSentimentLabel(-0.2))
	assert.Equal(t, "BEARISH", StockSentimentLabel(-0.25))
	assert.Equal(t, "STRONGLY BEARISH", StockSentimentLabel(-1))
}
