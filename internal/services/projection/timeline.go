package projection

import (
	"fmt"

	"FinPlan/internal/domain/models"
)

const (
	// MaxTimelineYears is the search ceiling.
	MaxTimelineYears = 100
	// RealisticHorizonYears is the longest horizon reported as realistic.
	RealisticHorizonYears = 30

	DefaultUtilization    = 0.7
	DefaultTimelineReturn = 0.075
)

type timelineConfig struct {
	utilization  float64
	annualReturn float64
}

// TimelineOption tunes SolveRealisticTimeline.
type TimelineOption func(*timelineConfig)

// WithUtilization sets the share of monthly capacity actually contributed.
func WithUtilization(u float64) TimelineOption {
	return func(c *timelineConfig) { c.utilization = u }
}

// WithAnnualReturn sets the assumed annual return.
func WithAnnualReturn(r float64) TimelineOption {
	return func(c *timelineConfig) { c.annualReturn = r }
}

// SolveRealisticTimeline finds the first whole year in which savings plus a
// utilization-discounted share of capacity reach target.
func SolveRealisticTimeline(target, savings, capacity float64, opts ...TimelineOption) (models.RealisticTimelineResult, error) {
	cfg := timelineConfig{utilization: DefaultUtilization, annualReturn: DefaultTimelineReturn}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkFinite(target, savings, capacity, cfg.utilization, cfg.annualReturn); err != nil {
		return models.RealisticTimelineResult{}, err
	}
	if target <= 0 {
		return models.RealisticTimelineResult{}, fmt.Errorf("target %.2f: %w", target, models.ErrDomain)
	}
	if cfg.utilization <= 0 || cfg.utilization > 1 {
		return models.RealisticTimelineResult{}, fmt.Errorf("utilization %.2f: %w", cfg.utilization, models.ErrDomain)
	}

	res := models.RealisticTimelineResult{AnnualReturn: cfg.annualReturn}
	if capacity <= 0 {
		res.YearsNeeded = MaxTimelineYears
		res.Unbounded = true
		res.ProjectedValue = RoundMoney(savings)
		return res, nil
	}

	monthly := RoundMoney(capacity * cfg.utilization)
	res.MonthlyContribution = monthly

	var fv float64
	for year := 1; year <= MaxTimelineYears; year++ {
		var err error
		fv, err = FutureValue(savings, monthly, cfg.annualReturn, float64(year))
		if err != nil {
			return models.RealisticTimelineResult{}, err
		}
		if fv >= target {
			res.YearsNeeded = year
			res.ProjectedValue = RoundMoney(fv)
			res.IsRealistic = year <= RealisticHorizonYears
			return res, nil
		}
	}

	res.YearsNeeded = MaxTimelineYears
	res.Unbounded = true
	res.ProjectedValue = RoundMoney(fv)
	return res, nil
}
