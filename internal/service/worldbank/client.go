package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"FinPlan/internal/domain/models"
	drepo "FinPlan/internal/domain/repository"
	"FinPlan/internal/service/upstream"
	"FinPlan/pkg/util"
)

const (
	Name           = "worldbank"
	DefaultBaseURL = "https://api.worldbank.org"

	// IndicatorCPI is annual consumer price inflation, percent.
	IndicatorCPI = "FP.CPI.TOTL.ZG"
)

// Client reads inflation statistics from the World Bank indicators API.
type Client struct {
	*upstream.Base
}

func New(baseURL string, timeout time.Duration) drepo.InflationSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{Base: upstream.NewBase(Name, baseURL, timeout)}
}

type observation struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// FetchInflation returns the most recent non-null CPI observation of the last five years.
func (c *Client) FetchInflation(ctx context.Context, country string) (models.InflationRecord, error) {
	path := fmt.Sprintf("/v2/country/%s/indicator/%s", country, IndicatorCPI)
	q := map[string][]string{"format": {"json"}, "mrv": {"5"}}

	// The payload is [pagination, observations]; an error payload is a single message object.
	var raw []json.RawMessage
	if err := c.GetJSON(ctx, path, q, &raw); err != nil {
		return models.InflationRecord{}, err
	}
	if len(raw) < 2 {
		return models.InflationRecord{}, fmt.Errorf("worldbank %s: no observations: %w", country, models.ErrNoData)
	}
	var obs []observation
	if err := json.Unmarshal(raw[1], &obs); err != nil {
		return models.InflationRecord{}, fmt.Errorf("worldbank %s: decode observations: %v: %w", country, err, models.ErrUnavailable)
	}
	for _, o := range obs {
		if o.Value == nil {
			continue
		}
		return models.InflationRecord{
			Country: country,
			Rate:    *o.Value,
			Year:    util.ParseIntDefault(o.Date, 0),
			Source:  "World Bank",
			Origin:  models.OriginLive,
		}, nil
	}
	return models.InflationRecord{}, fmt.Errorf("worldbank %s: all observations null: %w", country, models.ErrNoData)
}
