package service

import (
	"context"

	"FinPlan/internal/domain/models"
)

// MarketData exposes the per-category accessors.
type MarketData interface {
	GetStockQuote(ctx context.Context, symbol string) (models.Quote, error)
	GetMultipleStocks(ctx context.Context, symbols []string) map[string]models.Quote
	GetForexRate(ctx context.Context, from, to string) (models.ForexRate, error)
	GetInflationRate(ctx context.Context, country string) (models.InflationRecord, error)
	GetEconomicIndicators(ctx context.Context, country string) (models.EconomicIndicatorSet, error)
	GetCryptoSentimentIndex(ctx context.Context) models.SentimentIndex
	GetFinancialBenchmarks() models.FinancialBenchmarks
}

// MarketContextProvider assembles snapshots and their narrative rendering.
type MarketContextProvider interface {
	GetMarketContext(ctx context.Context, country string) models.MarketContext
	GetMarketNarrative(ctx context.Context, country string) string
}

// Planner builds market-informed projections.
type Planner interface {
	BuildPlans(ctx context.Context, req models.PlanRequest) (models.PlanSet, error)
	RealisticTimeline(ctx context.Context, req models.TimelineRequest) (models.RealisticTimelineResult, error)
}
