package cache

import "time"

// Category identifies a class of upstream data with its own freshness window.
type Category string

const (
	CategoryQuote      Category = "quote"
	CategoryForex      Category = "forex"
	CategoryInflation  Category = "inflation"
	CategoryIndicators Category = "indicators"
	CategorySentiment  Category = "sentiment"
)

// Categories lists every known category in a stable order.
var Categories = []Category{
	CategoryQuote,
	CategoryForex,
	CategoryInflation,
	CategoryIndicators,
	CategorySentiment,
}

// TTL defaults per category.
const (
	TTLQuote      = time.Hour
	TTLForex      = time.Hour
	TTLInflation  = 24 * time.Hour // statistics are reported monthly
	TTLIndicators = 24 * time.Hour
	TTLSentiment  = 4 * time.Hour
)

// Policy maps a category to the maximum age of a value served as fresh.
type Policy map[Category]time.Duration

// DefaultPolicy returns the standard TTLs.
func DefaultPolicy() Policy {
	return Policy{
		CategoryQuote:      TTLQuote,
		CategoryForex:      TTLForex,
		CategoryInflation:  TTLInflation,
		CategoryIndicators: TTLIndicators,
		CategorySentiment:  TTLSentiment,
	}
}

// TTL returns the configured window, falling back to the default for the category.
func (p Policy) TTL(c Category) time.Duration {
	if d, ok := p[c]; ok && d > 0 {
		return d
	}
	return DefaultPolicy()[c]
}

// Merge returns a copy of p with non-zero overrides applied.
func (p Policy) Merge(overrides Policy) Policy {
	out := make(Policy, len(p))
	for c, d := range p {
		out[c] = d
	}
	for c, d := range overrides {
		if d > 0 {
			out[c] = d
		}
	}
	return out
}
