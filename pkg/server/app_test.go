package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"FinPlan/internal/domain/models"
	pkgcache "FinPlan/pkg/cache"
	"FinPlan/pkg/config"
	xhttp "FinPlan/pkg/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closingPublisher struct {
	closed bool
	err    error
}

func (p *closingPublisher) PublishSnapshot(context.Context, models.MarketContext) error { return nil }

func (p *closingPublisher) Close() error {
	p.closed = true
	return p.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte("environment: test\nserver:\n  host: 127.0.0.1\n  port: 1\n"))
	require.NoError(t, err)
	cfg.Server.Port = 0
	cfg.Server.ShutdownTimeout = time.Second
	return cfg
}

func TestRunContextShutsDownAndClosesResources(t *testing.T) {
	cfg := testConfig(t)
	srv := xhttp.NewServer(nil,
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithMetrics(prometheus.NewRegistry(), ""),
	)
	pub := &closingPublisher{}
	app := New(cfg, nil, srv, pkgcache.NewMemoryStore(), pub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.RunContext(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.True(t, pub.closed)
}

func TestShutdownJoinsCloseErrors(t *testing.T) {
	cfg := testConfig(t)
	srv := xhttp.NewServer(nil, xhttp.WithMetrics(prometheus.NewRegistry(), ""))
	pub := &closingPublisher{err: errors.New("flush failed")}
	app := New(cfg, nil, srv, nil, pub)

	err := app.shutdown()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flush failed")
}
