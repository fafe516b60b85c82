package finnhub

import (
	"context"
	"fmt"
	"time"

	"FinPlan/internal/domain/models"
	drepo "FinPlan/internal/domain/repository"
	"FinPlan/internal/service/upstream"
)

const (
	Name           = "finnhub"
	DefaultBaseURL = "https://finnhub.io/api/v1"
)

// Client implements a QuoteSource backed by the Finnhub REST quote endpoint.
type Client struct {
	*upstream.Base
	apiKey string
}

// New creates a new Finnhub QuoteSource.
func New(apiKey, baseURL string, timeout time.Duration) drepo.QuoteSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{Base: upstream.NewBase(Name, baseURL, timeout), apiKey: apiKey}
}

type fhQuote struct {
	C  float64 `json:"c"`  // current
	D  float64 `json:"d"`  // change
	DP float64 `json:"dp"` // percent change
	PC float64 `json:"pc"` // previous close
	T  int64   `json:"t"`  // unix seconds
}

// FetchQuote retrieves the current quote. Finnhub answers unknown symbols with zeros.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (models.Quote, error) {
	q := map[string][]string{"symbol": {symbol}}
	if c.apiKey != "" {
		q["token"] = []string{c.apiKey}
	}
	var m fhQuote
	if err := c.GetJSON(ctx, "/quote", q, &m); err != nil {
		return models.Quote{}, err
	}
	if m.C <= 0 {
		return models.Quote{}, fmt.Errorf("finnhub %s: no price: %w", symbol, models.ErrNoData)
	}

	quote := models.Quote{
		Symbol:        symbol,
		Price:         m.C,
		Change:        m.D,
		ChangePercent: m.DP,
		AsOf:          time.Now().UTC(),
		Origin:        models.OriginLive,
	}
	if m.T > 0 {
		quote.AsOf = time.Unix(m.T, 0).UTC()
	}
	if quote.Change == 0 && m.PC > 0 {
		quote.Change = m.C - m.PC
		quote.ChangePercent = quote.Change / m.PC * 100
	}
	return quote, nil
}
