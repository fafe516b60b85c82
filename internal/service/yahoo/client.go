package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"FinPlan/internal/domain/models"
	drepo "FinPlan/internal/domain/repository"
	"FinPlan/internal/service/upstream"
)

const (
	Name           = "yahoo"
	DefaultBaseURL = "https://query1.finance.yahoo.com"
)

// Client fetches quotes from the Yahoo Finance chart API.
type Client struct {
	*upstream.Base
}

// New creates a Yahoo QuoteSource.
func New(baseURL string, timeout time.Duration) drepo.QuoteSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{Base: upstream.NewBase(Name, baseURL, timeout)}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string   `json:"symbol"`
				Currency           string   `json:"currency"`
				RegularMarketPrice float64  `json:"regularMarketPrice"`
				ChartPreviousClose float64  `json:"chartPreviousClose"`
				PreviousClose      float64  `json:"previousClose"`
				RegularMarketVol   *int64   `json:"regularMarketVolume"`
				RegularMarketTime  int64    `json:"regularMarketTime"`
				MarketCap          *float64 `json:"marketCap"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchQuote retrieves the latest quote for an already-normalized symbol.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (models.Quote, error) {
	var resp chartResponse
	path := "/v8/finance/chart/" + url.PathEscape(symbol)
	q := map[string][]string{"interval": {"1d"}, "range": {"5d"}}
	if err := c.GetJSON(ctx, path, q, &resp); err != nil {
		return models.Quote{}, err
	}
	if resp.Chart.Error != nil {
		return models.Quote{}, fmt.Errorf("yahoo %s: %s: %w", symbol, resp.Chart.Error.Description, models.ErrNoData)
	}
	if len(resp.Chart.Result) == 0 {
		return models.Quote{}, fmt.Errorf("yahoo %s: no data returned: %w", symbol, models.ErrNoData)
	}

	meta := resp.Chart.Result[0].Meta
	if meta.RegularMarketPrice <= 0 {
		return models.Quote{}, fmt.Errorf("yahoo %s: no price: %w", symbol, models.ErrNoData)
	}
	prev := meta.ChartPreviousClose
	if prev <= 0 {
		prev = meta.PreviousClose
	}

	quote := models.Quote{
		Symbol:    symbol,
		Price:     meta.RegularMarketPrice,
		Volume:    meta.RegularMarketVol,
		MarketCap: meta.MarketCap,
		Currency:  meta.Currency,
		AsOf:      time.Now().UTC(),
		Origin:    models.OriginLive,
	}
	if meta.RegularMarketTime > 0 {
		quote.AsOf = time.Unix(meta.RegularMarketTime, 0).UTC()
	}
	if prev > 0 {
		quote.Change = meta.RegularMarketPrice - prev
		quote.ChangePercent = quote.Change / prev * 100
	}
	return quote, nil
}
