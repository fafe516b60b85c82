package metrics

import (
	"errors"
	"time"

	"FinPlan/internal/domain/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Endpoint records latency and error kinds per API endpoint.
type Endpoint struct {
	latency *prometheus.HistogramVec
	errors  *prometheus.CounterVec
}

// NewEndpoint registers the endpoint collectors on reg (nil = default registerer).
func NewEndpoint(reg prometheus.Registerer) *Endpoint {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Endpoint{
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "finplan",
				Subsystem: "api",
				Name:      "latency_seconds",
				Help:      "Latency of API endpoints",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		errors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "finplan",
				Subsystem: "api",
				Name:      "errors_total",
				Help:      "Errors by API endpoint and kind",
			},
			[]string{"endpoint", "kind"},
		),
	}
}

// Observe records one call. A nil receiver is a no-op.
func (m *Endpoint) Observe(endpoint string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.latency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		m.errors.WithLabelValues(endpoint, ErrorKind(err)).Inc()
	}
}

// ErrorKind buckets an error into a low-cardinality label.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidIdentifier):
		return "invalid"
	case errors.Is(err, models.ErrDomain):
		return "domain"
	case errors.Is(err, models.ErrThrottled):
		return "throttled"
	case errors.Is(err, models.ErrUnavailable):
		return "unavailable"
	default:
		return "internal"
	}
}
