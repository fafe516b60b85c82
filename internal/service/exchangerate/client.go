package exchangerate

import (
	"context"
	"fmt"
	"time"

	"FinPlan/internal/domain/models"
	drepo "FinPlan/internal/domain/repository"
	"FinPlan/internal/service/upstream"
	"FinPlan/pkg/util"
)

const (
	Name           = "exchangerate"
	DefaultBaseURL = "https://api.exchangerate-api.com"
)

// Client for exchangerate-api.com
type Client struct {
	*upstream.Base
}

func New(baseURL string, timeout time.Duration) drepo.ForexSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{Base: upstream.NewBase(Name, baseURL, timeout)}
}

type latestResponse struct {
	Base            string             `json:"base"`
	TimeLastUpdated int64              `json:"time_last_updated"`
	Rates           map[string]float64 `json:"rates"`
}

// FetchRates returns every spot rate quoted against base.
func (c *Client) FetchRates(ctx context.Context, base string) (models.RateTable, error) {
	var resp latestResponse
	if err := c.GetJSON(ctx, "/v4/latest/"+base, nil, &resp); err != nil {
		return models.RateTable{}, err
	}
	if len(resp.Rates) == 0 {
		return models.RateTable{}, fmt.Errorf("exchangerate %s: empty rates: %w", base, models.ErrNoData)
	}
	return models.RateTable{
		Base:      base,
		Rates:     resp.Rates,
		Timestamp: util.UnixOr(resp.TimeLastUpdated, time.Now().UTC()),
	}, nil
}
