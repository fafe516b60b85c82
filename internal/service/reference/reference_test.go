package reference

import (
	"testing"
	"time"

	"FinPlan/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "aapl", want: "AAPL"},
		{in: " spx ", want: "^GSPC"},
		{in: "SP500", want: "^GSPC"},
		{in: "nasdaq", want: "^IXIC"},
		{in: "dow", want: "^DJI"},
		{in: "^tnx", want: "^TNX"},
		{in: "BRK.B", want: "BRK.B"},
		{in: "EURUSD=X", want: "EURUSD=X"},
		{in: "", wantErr: true},
		{in: "AA PL", wantErr: true},
		{in: "TOOLONGSYMBOLNAME1", wantErr: true},
		{in: "$$$", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeSymbol(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidIdentifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeCountryAndCurrency(t *testing.T) {
	cc, err := NormalizeCountry("us")
	require.NoError(t, err)
	assert.Equal(t, "US", cc)

	cc, err = NormalizeCountry("deu")
	require.NoError(t, err)
	assert.Equal(t, "DEU", cc)

	_, err = NormalizeCountry("U1")
	assert.ErrorIs(t, err, models.ErrInvalidIdentifier)
	_, err = NormalizeCountry("UNITED")
	assert.ErrorIs(t, err, models.ErrInvalidIdentifier)

	cur, err := NormalizeCurrency("eur")
	require.NoError(t, err)
	assert.Equal(t, "EUR", cur)
	_, err = NormalizeCurrency("EURO")
	assert.ErrorIs(t, err, models.ErrInvalidIdentifier)
}

func TestFallbackInflation(t *testing.T) {
	us := FallbackInflation("US")
	assert.Equal(t, 3.0, us.Rate)
	assert.Equal(t, models.OriginFallback, us.Origin)
	assert.Equal(t, FallbackSource, us.Source)

	unknown := FallbackInflation("ZZ")
	assert.Equal(t, GlobalInflationFallback, unknown.Rate)
	assert.Equal(t, "ZZ", unknown.Country)
}

func TestFallbackSentimentIsNeutral(t *testing.T) {
	s := FallbackSentiment(time.Unix(0, 0))
	assert.Equal(t, 50, s.Value)
	assert.Equal(t, models.SentimentNeutral, s.Class)
	assert.Equal(t, models.OriginFallback, s.Origin)
}

func TestCuratedIndicators(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	us := CuratedIndicators("USA", now)
	require.Len(t, us, 3)
	assert.Equal(t, "US", us[models.IndicatorPolicyRate].Country)
	assert.Empty(t, CuratedIndicators("ZZ", now))

	assert.True(t, HasYieldCurve("US"))
	assert.False(t, HasYieldCurve("DE"))
}

func TestBenchmarksAreCopies(t *testing.T) {
	a := Benchmarks()
	a.SavingsRateByAge[0].RecommendedRate = 99
	b := Benchmarks()
	assert.Equal(t, 10.0, b.SavingsRateByAge[0].RecommendedRate)
	assert.Len(t, b.ExpenseRatioByCategory, 8)
	assert.NotEmpty(t, b.DebtToIncome)
	assert.NotEmpty(t, b.RetirementMultipleByAge)
	assert.NotEmpty(t, b.EmergencyFundMonthsByIncome)
}
