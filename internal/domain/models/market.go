package models

import "time"

// Origin tells the caller where a value came from.
type Origin string

const (
	OriginLive     Origin = "live"
	OriginCache    Origin = "cache"
	OriginStale    Origin = "stale"
	OriginFallback Origin = "fallback"
	// OriginCurated marks manually maintained constants that are not a substitute for a live value.
	OriginCurated Origin = "curated"
)

// Quote is a normalized equity/index quote.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
	Volume        *int64    `json:"volume,omitempty"`
	MarketCap     *float64  `json:"market_cap,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	AsOf          time.Time `json:"as_of"`
	Origin        Origin    `json:"origin"`
}

type ForexRate struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Rate      float64   `json:"rate"`
	Timestamp time.Time `json:"timestamp"`
	Origin    Origin    `json:"origin"`
}

// InflationRecord is the annual consumer price inflation for a country, in percent.
type InflationRecord struct {
	Country string  `json:"country"`
	Rate    float64 `json:"rate"`
	Year    int     `json:"year"`
	Source  string  `json:"source"`
	Origin  Origin  `json:"origin"`
}

type Indicator struct {
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Country   string    `json:"country"`
	Timestamp time.Time `json:"timestamp"`
	Origin    Origin    `json:"origin"`
}

// Well-known indicator names.
const (
	IndicatorYieldSpread  = "yield_curve_spread"
	IndicatorTreasury10Y  = "treasury_10y"
	IndicatorTreasury3M   = "treasury_3m"
	IndicatorPolicyRate   = "policy_rate"
	IndicatorUnemployment = "unemployment_rate"
	IndicatorGDPGrowth    = "gdp_growth"
)

type EconomicIndicatorSet struct {
	Country    string               `json:"country"`
	Indicators map[string]Indicator `json:"indicators"`
	AsOf       time.Time            `json:"as_of"`
	Origin     Origin               `json:"origin"`
}

// Get returns the named indicator if present.
func (s EconomicIndicatorSet) Get(name string) (Indicator, bool) {
	ind, ok := s.Indicators[name]
	return ind, ok
}

type SentimentClass string

const (
	SentimentExtremeFear  SentimentClass = "Extreme Fear"
	SentimentFear         SentimentClass = "Fear"
	SentimentNeutral      SentimentClass = "Neutral"
	SentimentGreed        SentimentClass = "Greed"
	SentimentExtremeGreed SentimentClass = "Extreme Greed"
)

// SentimentIndex is a 0-100 market mood score.
type SentimentIndex struct {
	Value     int            `json:"value"`
	Class     SentimentClass `json:"classification"`
	Timestamp time.Time      `json:"timestamp"`
	Origin    Origin         `json:"origin"`
}

// ClampSentiment bounds v to 0..100.
func ClampSentiment(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

// ClassifySentiment buckets a clamped value.
func ClassifySentiment(v int) SentimentClass {
	v = ClampSentiment(v)
	switch {
	case v <= 24:
		return SentimentExtremeFear
	case v <= 44:
		return SentimentFear
	case v <= 55:
		return SentimentNeutral
	case v <= 75:
		return SentimentGreed
	default:
		return SentimentExtremeGreed
	}
}

// MarketContext is the aggregate snapshot. Every field may be absent independently.
type MarketContext struct {
	Country     string                `json:"country"`
	Benchmarks  map[string]Quote      `json:"benchmarks,omitempty"`
	Inflation   *InflationRecord      `json:"inflation,omitempty"`
	Indicators  *EconomicIndicatorSet `json:"indicators,omitempty"`
	Sentiment   *SentimentIndex       `json:"sentiment,omitempty"`
	GeneratedAt time.Time             `json:"generated_at"`
	Errors      map[string]string     `json:"errors,omitempty"`
}

// RateTable holds spot rates for one base currency.
type RateTable struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Timestamp time.Time          `json:"timestamp"`
}
