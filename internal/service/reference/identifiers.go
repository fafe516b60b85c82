package reference

import (
	"fmt"
	"regexp"
	"strings"

	"FinPlan/internal/domain/models"
)

// SymbolAliases maps common index nicknames to provider tickers.
var SymbolAliases = map[string]string{
	"SPX":    "^GSPC",
	"SP500":  "^GSPC",
	"SPX500": "^GSPC",
	"NASDAQ": "^IXIC",
	"DOW":    "^DJI",
	"VIX":    "^VIX",
}

// Treasury yield tickers used for the spread.
const (
	SymbolTreasury10Y = "^TNX"
	SymbolTreasury3M  = "^IRX"
)

// DefaultBenchmarkSymbols are the indices quoted in a market context.
var DefaultBenchmarkSymbols = []string{"^GSPC", "^IXIC", "^DJI"}

var (
	tickerRe   = regexp.MustCompile(`^\^?[A-Z0-9][A-Z0-9.\-=]{0,14}$`)
	countryRe  = regexp.MustCompile(`^[A-Z]{2,3}$`)
	currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)
)

// NormalizeSymbol upper-cases, resolves aliases and validates a ticker.
func NormalizeSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if mapped, ok := SymbolAliases[s]; ok {
		return mapped, nil
	}
	if !tickerRe.MatchString(s) {
		return "", fmt.Errorf("symbol %q: %w", symbol, models.ErrInvalidIdentifier)
	}
	return s, nil
}

// NormalizeCountry validates an ISO-3166 alpha-2 or alpha-3 code.
func NormalizeCountry(cc string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(cc))
	if !countryRe.MatchString(s) {
		return "", fmt.Errorf("country %q: %w", cc, models.ErrInvalidIdentifier)
	}
	return s, nil
}

// NormalizeCurrency validates an ISO-4217 code.
func NormalizeCurrency(code string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(code))
	if !currencyRe.MatchString(s) {
		return "", fmt.Errorf("currency %q: %w", code, models.ErrInvalidIdentifier)
	}
	return s, nil
}

// BenchmarkName returns a display name for well-known index tickers.
func BenchmarkName(symbol string) string {
	switch symbol {
	case "^GSPC":
		return "S&P 500"
	case "^IXIC":
		return "NASDAQ Composite"
	case "^DJI":
		return "Dow Jones"
	case "^VIX":
		return "VIX"
	}
	return symbol
}
