package feargreed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"FinPlan/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fng/", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestFetchSentiment(t *testing.T) {
	url := serve(t, http.StatusOK, `{"name":"Fear and Greed Index","data":[{"value":"72",
		"value_classification":"Greed","timestamp":"1709251200","time_until_update":"3600"}],"metadata":{"error":null}}`)

	s, err := New(url, 0).FetchSentiment(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 72, s.Value)
	assert.Equal(t, models.SentimentGreed, s.Class)
	assert.Equal(t, int64(1709251200), s.Timestamp.Unix())
	assert.Equal(t, models.OriginLive, s.Origin)
}

func TestFetchSentimentClampsAndReclassifies(t *testing.T) {
	url := serve(t, http.StatusOK, `{"data":[{"value":"140","value_classification":"Fear"}]}`)
	s, err := New(url, 0).FetchSentiment(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, s.Value)
	assert.Equal(t, models.SentimentExtremeGreed, s.Class)
}

func TestFetchSentimentUnusable(t *testing.T) {
	for name, body := range map[string]string{
		"empty":     `{"data":[]}`,
		"non-digit": `{"data":[{"value":"n/a"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := New(serve(t, http.StatusOK, body), 0).FetchSentiment(context.Background())
			assert.ErrorIs(t, err, models.ErrNoData)
		})
	}
}

func TestFetchSentimentThrottled(t *testing.T) {
	_, err := New(serve(t, http.StatusTooManyRequests, ``), 0).FetchSentiment(context.Background())
	assert.ErrorIs(t, err, models.ErrThrottled)
}

func TestClassifySentimentBuckets(t *testing.T) {
	tests := []struct {
		v    int
		want models.SentimentClass
	}{
		{0, models.SentimentExtremeFear},
		{24, models.SentimentExtremeFear},
		{25, models.SentimentFear},
		{44, models.SentimentFear},
		{45, models.SentimentNeutral},
		{55, models.SentimentNeutral},
		{56, models.SentimentGreed},
		{75, models.SentimentGreed},
		{76, models.SentimentExtremeGreed},
		{100, models.SentimentExtremeGreed},
		{-5, models.SentimentExtremeFear},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, models.ClassifySentiment(tt.v), "value %d", tt.v)
	}
}
