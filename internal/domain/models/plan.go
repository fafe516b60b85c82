package models

type RiskTier string

const (
	RiskLow    RiskTier = "Low"
	RiskMedium RiskTier = "Medium"
	RiskHigh   RiskTier = "High"
)

type InvestmentPlan struct {
	Name             string   `json:"name"`
	RiskTier         RiskTier `json:"risk_tier"`
	AnnualReturn     float64  `json:"annual_return"`
	MonthlyPayment   float64  `json:"monthly_payment"`
	FutureValue      float64  `json:"future_value"`
	TotalContributed float64  `json:"total_contributed"`
	TotalGains       float64  `json:"total_gains"`
	// Affordable is true when MonthlyPayment fits within the saving capacity.
	Affordable  bool     `json:"affordable"`
	Description string   `json:"description"`
	Vehicles    []string `json:"vehicles"`
	// RealFutureValue is FutureValue in today's money; set only when an inflation rate was applied.
	RealFutureValue *float64 `json:"real_future_value,omitempty"`
}

type PlanSet struct {
	TargetAmount       float64          `json:"target_amount"`
	CurrentSavings     float64          `json:"current_savings"`
	Years              int              `json:"years"`
	MaxMonthlyCapacity float64          `json:"max_monthly_capacity"`
	Plans              []InvestmentPlan `json:"plans"`
	Inflation          *InflationRecord `json:"inflation,omitempty"`
}

// Plan returns the plan with the given name.
func (s PlanSet) Plan(name string) (InvestmentPlan, bool) {
	for _, p := range s.Plans {
		if p.Name == name {
			return p, true
		}
	}
	return InvestmentPlan{}, false
}

type RealisticTimelineResult struct {
	// YearsNeeded is the first year the target is met. When Unbounded it holds the search ceiling.
	YearsNeeded         int     `json:"years_needed"`
	Unbounded           bool    `json:"unbounded"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualReturn        float64 `json:"annual_return"`
	ProjectedValue      float64 `json:"projected_value"`
	IsRealistic         bool    `json:"is_realistic"`
}
