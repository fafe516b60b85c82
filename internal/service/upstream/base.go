package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"FinPlan/internal/domain/models"
	xhttp "FinPlan/pkg/http"
)

const DefaultTimeout = 10 * time.Second

// Base is the shared foundation for read-only JSON upstream clients.
// It owns client construction and maps transport failures onto the domain error taxonomy.
type Base struct {
	name    string
	baseURL string
	client  *xhttp.Client
}

// NewBase builds a client for provider name rooted at baseURL.
func NewBase(name, baseURL string, timeout time.Duration) *Base {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Base{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout), xhttp.WithUserAgent("Mozilla/5.0 (compatible; FinPlan/1.0)")),
	}
}

func (b *Base) Name() string { return b.name }

func (b *Base) BaseURL() string { return b.baseURL }

// GetJSON issues a GET for path under baseURL and decodes the JSON body into dest.
//
// 429 becomes models.ErrThrottled, 404 becomes models.ErrNoData and every other
// failure (transport, non-2xx, decode) becomes models.ErrUnavailable.
func (b *Base) GetJSON(ctx context.Context, path string, query map[string][]string, dest interface{}) error {
	if b.client == nil || b.baseURL == "" {
		return fmt.Errorf("%s: client not initialized: %w", b.name, models.ErrUnavailable)
	}
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         b.baseURL + path,
		Headers:     map[string]string{"Accept": "application/json"},
		QueryParams: query,
	}, dest)
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s get %s: %w", b.name, path, Classify(err))
}

// Classify maps a transport error onto the domain sentinels while keeping the cause.
func Classify(err error) error {
	var se *xhttp.StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w (status %d)", models.ErrThrottled, se.Code)
		case http.StatusNotFound:
			return fmt.Errorf("%w (status %d)", models.ErrNoData, se.Code)
		}
	}
	if errors.Is(err, models.ErrUnavailable) {
		return err
	}
	return errors.Join(models.ErrUnavailable, err)
}
