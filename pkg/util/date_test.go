package util

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	require.True(t, ok)
	assert.Equal(t, s, got.UTC().Format(time.RFC3339))
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	require.True(t, ok)
	assert.Equal(t, ts, got.Unix())
}

func TestParseTimeDefault(t *testing.T) {
	def := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
	assert.True(t, ParseTimeDefault("", def).Equal(def))
	assert.True(t, ParseTimeDefault("yesterday", def).Equal(def))
}

func TestUnixOr(t *testing.T) {
	def := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, UnixOr(0, def).Equal(def))
	assert.Equal(t, int64(1709251201), UnixOr(1709251201, def).Unix())
}

func TestParseIntDefaultAndSplitList(t *testing.T) {
	assert.Equal(t, 2023, ParseIntDefault(" 2023 ", 0))
	assert.Equal(t, 7, ParseIntDefault("n/a", 7))
	assert.Equal(t, []string{"AAPL", "MSFT"}, SplitList(" AAPL, ,MSFT,"))
	assert.Empty(t, SplitList(""))
}
