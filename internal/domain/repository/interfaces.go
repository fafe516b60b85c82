package repository

import (
	"context"

	"FinPlan/internal/domain/models"
)

// Upstream sources. Implementations wrap transport failures in models.ErrUnavailable,
// rate limiting in models.ErrThrottled and empty payloads in models.ErrNoData.

type QuoteSource interface {
	Name() string
	FetchQuote(ctx context.Context, symbol string) (models.Quote, error)
}

type ForexSource interface {
	Name() string
	FetchRates(ctx context.Context, base string) (models.RateTable, error)
}

type InflationSource interface {
	Name() string
	FetchInflation(ctx context.Context, country string) (models.InflationRecord, error)
}

type SentimentSource interface {
	Name() string
	FetchSentiment(ctx context.Context) (models.SentimentIndex, error)
}

// SnapshotPublisher ships assembled market contexts to downstream consumers.
type SnapshotPublisher interface {
	PublishSnapshot(ctx context.Context, mc models.MarketContext) error
	Close() error
}

type Metrics interface {
	RecordUpstream(provider, result string, seconds float64)
	RecordCache(category, outcome string)
	RecordBranchFailure(branch string)
	RecordSnapshotPublished(ok bool)
}
