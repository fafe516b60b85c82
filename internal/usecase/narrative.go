package usecase

import (
	"fmt"
	"sort"
	"strings"

	"FinPlan/internal/domain/models"
	"FinPlan/internal/service/reference"
)

// Section titles in render order.
const (
	SectionStocks   = "STOCK MARKET SENTIMENT"
	SectionCrypto   = "CRYPTO SENTIMENT"
	SectionMacro    = "MACRO INDICATORS"
	SectionGuidance = "FINANCIAL PLANNING GUIDANCE"
)

// InflationLabel buckets an annual inflation rate in percent.
func InflationLabel(rate float64) string {
	switch {
	case rate > 4:
		return "HIGH"
	case rate >= 2:
		return "MODERATE"
	case rate >= 0:
		return "LOW"
	default:
		return "DEFLATION"
	}
}

// YieldCurveLabel buckets the 10Y minus 3M spread in percentage points.
func YieldCurveLabel(spread float64) string {
	switch {
	case spread < 0:
		return "INVERTED"
	case spread < 0.5:
		return "FLAT"
	default:
		return "NORMAL"
	}
}

// StockSentimentLabel buckets the mean percent change of the benchmark indices.
func StockSentimentLabel(meanChange float64) string {
	switch {
	case meanChange >= 1:
		return "STRONGLY BULLISH"
	case meanChange >= 0.25:
		return "BULLISH"
	case meanChange <= -1:
		return "STRONGLY BEARISH"
	case meanChange <= -0.25:
		return "BEARISH"
	default:
		return "NEUTRAL"
	}
}

// RenderNarrative formats a snapshot for a downstream text generator.
// Sections appear in a fixed order and only when their data resolved.
func RenderNarrative(mc models.MarketContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "MARKET CONTEXT (%s, as of %s)\n", mc.Country, mc.GeneratedAt.Format("2006-01-02 15:04 MST"))

	sections := 0
	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		sections++
		b.WriteString("\n")
		b.WriteString(title)
		b.WriteString(":\n")
		for _, l := range lines {
			b.WriteString("- ")
			b.WriteString(l)
			b.WriteString("\n")
		}
	}

	stockLabel, stockLines := stockSection(mc.Benchmarks)
	section(SectionStocks, stockLines)
	section(SectionCrypto, cryptoSection(mc.Sentiment))
	section(SectionMacro, macroSection(mc))
	section(SectionGuidance, guidanceSection(mc, stockLabel))

	if sections == 0 {
		b.WriteString("\nMarket data is currently unavailable; rely on long-term historical averages.\n")
	}
	return b.String()
}

func stockSection(quotes map[string]models.Quote) (string, []string) {
	if len(quotes) == 0 {
		return "", nil
	}
	symbols := make([]string, 0, len(quotes))
	for s := range quotes {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	var sum float64
	lines := make([]string, 0, len(symbols)+1)
	for _, s := range symbols {
		q := quotes[s]
		sum += q.ChangePercent
		line := fmt.Sprintf("%s (%s): %.2f (%+.2f%%)", reference.BenchmarkName(s), s, q.Price, q.ChangePercent)
		if q.Origin == models.OriginStale {
			line += " [delayed]"
		}
		lines = append(lines, line)
	}
	mean := sum / float64(len(symbols))
	label := StockSentimentLabel(mean)
	overall := fmt.Sprintf("Overall: %s (average move %+.2f%%)", label, mean)
	return label, append([]string{overall}, lines...)
}

func cryptoSection(s *models.SentimentIndex) []string {
	if s == nil {
		return nil
	}
	line := fmt.Sprintf("Fear & Greed Index: %d/100 (%s)", s.Value, s.Class)
	if s.Origin == models.OriginFallback {
		line += " - live index unavailable, using historical average"
	}
	return []string{line}
}

func macroSection(mc models.MarketContext) []string {
	var lines []string
	if inf := mc.Inflation; inf != nil {
		line := fmt.Sprintf("Inflation (%s", inf.Country)
		if inf.Year > 0 {
			line += fmt.Sprintf(", %d", inf.Year)
		}
		line += fmt.Sprintf("): %.2f%% - %s inflation", inf.Rate, InflationLabel(inf.Rate))
		if inf.Origin == models.OriginFallback {
			line += " (historical average)"
		}
		lines = append(lines, line)
	}
	if set := mc.Indicators; set != nil {
		if ind, ok := set.Get(models.IndicatorYieldSpread); ok {
			lines = append(lines, fmt.Sprintf("Yield curve (10Y-3M): %+.2f pp - %s yield curve", ind.Value, YieldCurveLabel(ind.Value)))
		}
		for _, name := range []struct{ key, title string }{
			{models.IndicatorPolicyRate, "Policy rate"},
			{models.IndicatorUnemployment, "Unemployment"},
			{models.IndicatorGDPGrowth, "GDP growth"},
		} {
			if ind, ok := set.Get(name.key); ok {
				lines = append(lines, fmt.Sprintf("%s: %.2f%%", name.title, ind.Value))
			}
		}
	}
	return lines
}

func guidanceSection(mc models.MarketContext, stockLabel string) []string {
	var lines []string
	resolved := stockLabel != "" || mc.Sentiment != nil || mc.Inflation != nil

	if inf := mc.Inflation; inf != nil {
		switch InflationLabel(inf.Rate) {
		case "HIGH":
			lines = append(lines, "High inflation erodes cash savings; keep only the emergency fund in cash and favor inflation-protected or growth assets.")
		case "DEFLATION":
			lines = append(lines, "Prices are falling; paying down fixed-rate debt is less attractive and cash holds its value.")
		}
	}
	if mc.Indicators != nil {
		if ind, ok := mc.Indicators.Get(models.IndicatorYieldSpread); ok {
			resolved = true
			if YieldCurveLabel(ind.Value) == "INVERTED" {
				lines = append(lines, "An inverted yield curve has historically preceded recessions; make sure the emergency fund covers 6 months of expenses.")
			}
		}
	}
	switch stockLabel {
	case "STRONGLY BEARISH", "BEARISH":
		lines = append(lines, "Equities are falling; continue regular contributions rather than trying to time the market.")
	case "STRONGLY BULLISH":
		lines = append(lines, "Equities are rallying; rebalance to the target allocation instead of chasing gains.")
	}
	if s := mc.Sentiment; s != nil && s.Origin != models.OriginFallback {
		switch s.Class {
		case models.SentimentExtremeFear:
			lines = append(lines, "Crypto sentiment shows extreme fear; avoid panic selling and keep speculative assets a small share of the portfolio.")
		case models.SentimentExtremeGreed:
			lines = append(lines, "Crypto sentiment shows extreme greed; expect volatility and size speculative positions conservatively.")
		}
	}
	if resolved && len(lines) == 0 {
		lines = append(lines, "Conditions are within normal ranges; stay with a diversified long-term plan and automate monthly contributions.")
	}
	return lines
}
