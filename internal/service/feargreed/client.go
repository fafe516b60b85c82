package feargreed

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"FinPlan/internal/domain/models"
	drepo "FinPlan/internal/domain/repository"
	"FinPlan/internal/service/upstream"
	"FinPlan/pkg/util"
)

const (
	Name           = "feargreed"
	DefaultBaseURL = "https://api.alternative.me"
)

// Client reads the crypto Fear & Greed index from alternative.me.
type Client struct {
	*upstream.Base
}

func New(baseURL string, timeout time.Duration) drepo.SentimentSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{Base: upstream.NewBase(Name, baseURL, timeout)}
}

type fngResponse struct {
	Data []struct {
		Value          string `json:"value"`
		Classification string `json:"value_classification"`
		Timestamp      string `json:"timestamp"`
	} `json:"data"`
}

// FetchSentiment returns the current index. The provider's own label is ignored and recomputed.
func (c *Client) FetchSentiment(ctx context.Context) (models.SentimentIndex, error) {
	var resp fngResponse
	if err := c.GetJSON(ctx, "/fng/", map[string][]string{"limit": {"1"}}, &resp); err != nil {
		return models.SentimentIndex{}, err
	}
	if len(resp.Data) == 0 {
		return models.SentimentIndex{}, fmt.Errorf("feargreed: empty data: %w", models.ErrNoData)
	}
	d := resp.Data[0]
	v, err := strconv.Atoi(strings.TrimSpace(d.Value))
	if err != nil {
		return models.SentimentIndex{}, fmt.Errorf("feargreed: value %q: %w", d.Value, models.ErrNoData)
	}
	v = models.ClampSentiment(v)
	return models.SentimentIndex{
		Value:     v,
		Class:     models.ClassifySentiment(v),
		Timestamp: util.ParseTimeDefault(d.Timestamp, time.Now().UTC()),
		Origin:    models.OriginLive,
	}, nil
}
