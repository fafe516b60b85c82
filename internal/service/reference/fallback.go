package reference

import (
	"time"

	"FinPlan/internal/domain/models"
)

// Static figures used when live sources fail. Refreshed out-of-band.

// FallbackSource labels records produced from these tables.
const FallbackSource = "historical average"

// FallbackYear is the reporting year of the curated tables.
const FallbackYear = 2024

// GlobalInflationFallback covers countries missing from InflationFallback.
const GlobalInflationFallback = 3.0

// NeutralSentiment is served when the sentiment index is unavailable.
const NeutralSentiment = 50

// InflationFallback is annual CPI inflation in percent, keyed by alpha-2 and alpha-3 code.
var InflationFallback = map[string]float64{
	"US": 3.0, "USA": 3.0,
	"GB": 3.2, "GBR": 3.2,
	"DE": 2.5, "DEU": 2.5,
	"FR": 2.3, "FRA": 2.3,
	"IT": 1.9, "ITA": 1.9,
	"ES": 3.0, "ESP": 3.0,
	"CA": 2.7, "CAN": 2.7,
	"JP": 2.7, "JPN": 2.7,
	"AU": 3.5, "AUS": 3.5,
	"IN": 4.9, "IND": 4.9,
	"CN": 0.2, "CHN": 0.2,
	"BR": 4.4, "BRA": 4.4,
	"MX": 4.7, "MEX": 4.7,
	"ZA": 4.4, "ZAF": 4.4,
	"KE": 4.5, "KEN": 4.5,
	"NG": 28.9, "NGA": 28.9,
	"VN": 3.6, "VNM": 3.6,
	"SG": 2.4, "SGP": 2.4,
	"CH": 1.1, "CHE": 1.1,
	"TR": 58.5, "TUR": 58.5,
}

// FallbackInflation returns the curated record for country, or the global default.
func FallbackInflation(country string) models.InflationRecord {
	rate, ok := InflationFallback[country]
	if !ok {
		rate = GlobalInflationFallback
	}
	return models.InflationRecord{
		Country: country,
		Rate:    rate,
		Year:    FallbackYear,
		Source:  FallbackSource,
		Origin:  models.OriginFallback,
	}
}

// FallbackSentiment returns the neutral index.
func FallbackSentiment(now time.Time) models.SentimentIndex {
	return models.SentimentIndex{
		Value:     NeutralSentiment,
		Class:     models.ClassifySentiment(NeutralSentiment),
		Timestamp: now,
		Origin:    models.OriginFallback,
	}
}

type curated struct {
	PolicyRate   float64
	Unemployment float64
	GDPGrowth    float64
}

// curatedIndicators are manually maintained macro figures, in percent.
var curatedIndicators = map[string]curated{
	"US": {PolicyRate: 4.50, Unemployment: 4.1, GDPGrowth: 2.8},
	"GB": {PolicyRate: 4.75, Unemployment: 4.3, GDPGrowth: 0.9},
	"DE": {PolicyRate: 3.15, Unemployment: 3.4, GDPGrowth: -0.2},
	"FR": {PolicyRate: 3.15, Unemployment: 7.4, GDPGrowth: 1.1},
	"CA": {PolicyRate: 3.25, Unemployment: 6.8, GDPGrowth: 1.3},
	"JP": {PolicyRate: 0.25, Unemployment: 2.5, GDPGrowth: 0.1},
	"AU": {PolicyRate: 4.35, Unemployment: 4.0, GDPGrowth: 1.0},
	"IN": {PolicyRate: 6.50, Unemployment: 7.8, GDPGrowth: 6.5},
}

var alpha3 = map[string]string{
	"USA": "US", "GBR": "GB", "DEU": "DE", "FRA": "FR",
	"CAN": "CA", "JPN": "JP", "AUS": "AU", "IND": "IN",
}

// CuratedIndicators returns the static indicators known for country, possibly none.
func CuratedIndicators(country string, asOf time.Time) map[string]models.Indicator {
	if cc, ok := alpha3[country]; ok {
		country = cc
	}
	c, ok := curatedIndicators[country]
	if !ok {
		return map[string]models.Indicator{}
	}
	mk := func(name string, v float64) models.Indicator {
		return models.Indicator{Name: name, Value: v, Unit: "percent", Country: country, Timestamp: asOf, Origin: models.OriginCurated}
	}
	return map[string]models.Indicator{
		models.IndicatorPolicyRate:   mk(models.IndicatorPolicyRate, c.PolicyRate),
		models.IndicatorUnemployment: mk(models.IndicatorUnemployment, c.Unemployment),
		models.IndicatorGDPGrowth:    mk(models.IndicatorGDPGrowth, c.GDPGrowth),
	}
}

// HasYieldCurve reports whether the treasury tickers describe country's curve.
func HasYieldCurve(country string) bool {
	return country == "US" || country == "USA"
}
