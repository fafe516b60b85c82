package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer()
	assert.Error(t, err)

	p, err := NewProducer(WithBrokers([]string{"localhost:9092"}), WithCompression("zstd"))
	require.NoError(t, err)
	assert.Equal(t, "zstd", p.comp)
	require.NoError(t, p.Close())
}

func TestPublishEncodesValues(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := defaultProducerConfig()
	cfg.Registerer = reg
	w := &fakeWriter{}
	p := newProducer(w, cfg)
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, "snapshots", []byte("US"), map[string]int{"value": 1}))
	require.NoError(t, p.Publish(ctx, "snapshots", nil, "raw"))
	require.Len(t, w.msgs, 2)
	assert.JSONEq(t, `{"value":1}`, string(w.msgs[0].Value))
	assert.Equal(t, "US", string(w.msgs[0].Key))
	assert.Equal(t, "raw", string(w.msgs[1].Value))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.metrics.msgs.WithLabelValues("snapshots", "gzip", "ok")))

	w.err = errors.New("leader not available")
	assert.Error(t, p.Publish(ctx, "snapshots", nil, "x"))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.metrics.msgs.WithLabelValues("snapshots", "gzip", "error")))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestParseCompression(t *testing.T) {
	assert.Equal(t, kafka.Snappy, parseCompression("snappy"))
	assert.Equal(t, kafka.Lz4, parseCompression("lz4"))
	assert.Equal(t, kafka.Gzip, parseCompression("unknown"))
}
