package projection

import (
	"fmt"
	"math"

	"FinPlan/internal/domain/models"

	"github.com/shopspring/decimal"
)

// Scenario is a named assumed-return tier.
type Scenario struct {
	Name         string
	Tier         models.RiskTier
	AnnualReturn float64
	Description  string
	Vehicles     []string
}

const (
	Conservative = "Conservative"
	Balanced     = "Balanced"
	Aggressive   = "Aggressive"
)

// Scenarios are the standard plan tiers, lowest risk first.
var Scenarios = []Scenario{
	{
		Name:         Conservative,
		Tier:         models.RiskLow,
		AnnualReturn: 0.045,
		Description:  "Capital preservation with modest growth; suited to short horizons or low risk tolerance.",
		Vehicles:     []string{"High-yield savings account", "Certificates of deposit", "Government bond funds", "Treasury bills"},
	},
	{
		Name:         Balanced,
		Tier:         models.RiskMedium,
		AnnualReturn: 0.075,
		Description:  "A mix of equities and bonds balancing growth against volatility.",
		Vehicles:     []string{"Broad market index funds", "Target-date funds", "60/40 stock-bond portfolio", "Dividend ETFs"},
	},
	{
		Name:         Aggressive,
		Tier:         models.RiskHigh,
		AnnualReturn: 0.11,
		Description:  "Equity-heavy growth; expect large drawdowns along the way.",
		Vehicles:     []string{"Growth stock ETFs", "Small-cap funds", "Emerging market funds", "Sector ETFs"},
	},
}

// PlanInput describes a savings goal.
type PlanInput struct {
	TargetAmount    float64
	CurrentSavings  float64
	MonthlyIncome   float64
	MonthlyExpenses float64
	Years           int
}

// MonthlyCapacity is income minus expenses, floored at zero.
func MonthlyCapacity(income, expenses float64) float64 {
	return math.Max(0, income-expenses)
}

// BuildInvestmentPlans computes one plan per scenario. Money fields are rounded to cents and
// TotalGains is exactly FutureValue minus TotalContributed.
func BuildInvestmentPlans(in PlanInput) (models.PlanSet, error) {
	if err := checkFinite(in.TargetAmount, in.CurrentSavings, in.MonthlyIncome, in.MonthlyExpenses); err != nil {
		return models.PlanSet{}, err
	}
	if in.TargetAmount <= 0 {
		return models.PlanSet{}, fmt.Errorf("target %.2f: %w", in.TargetAmount, models.ErrDomain)
	}
	if in.Years <= 0 {
		return models.PlanSet{}, fmt.Errorf("years %d: %w", in.Years, models.ErrDomain)
	}
	if in.CurrentSavings < 0 {
		return models.PlanSet{}, fmt.Errorf("current savings %.2f: %w", in.CurrentSavings, models.ErrDomain)
	}

	capacity := RoundMoney(MonthlyCapacity(in.MonthlyIncome, in.MonthlyExpenses))
	set := models.PlanSet{
		TargetAmount:       in.TargetAmount,
		CurrentSavings:     in.CurrentSavings,
		Years:              in.Years,
		MaxMonthlyCapacity: capacity,
		Plans:              make([]models.InvestmentPlan, 0, len(Scenarios)),
	}
	years := float64(in.Years)
	months := decimal.NewFromInt(int64(in.Years * 12))

	for _, sc := range Scenarios {
		payment, err := RequiredMonthlyPayment(in.TargetAmount, in.CurrentSavings, sc.AnnualReturn, years)
		if err != nil {
			return models.PlanSet{}, fmt.Errorf("%s plan: %w", sc.Name, err)
		}
		payment = RoundMoney(payment)
		fv, err := FutureValue(in.CurrentSavings, payment, sc.AnnualReturn, years)
		if err != nil {
			return models.PlanSet{}, fmt.Errorf("%s plan: %w", sc.Name, err)
		}

		fvDec := decimal.NewFromFloat(fv).Round(2)
		contributed := decimal.NewFromFloat(in.CurrentSavings).Add(decimal.NewFromFloat(payment).Mul(months)).Round(2)
		set.Plans = append(set.Plans, models.InvestmentPlan{
			Name:             sc.Name,
			RiskTier:         sc.Tier,
			AnnualReturn:     sc.AnnualReturn,
			MonthlyPayment:   payment,
			FutureValue:      fvDec.InexactFloat64(),
			TotalContributed: contributed.InexactFloat64(),
			TotalGains:       fvDec.Sub(contributed).InexactFloat64(),
			Affordable:       payment <= capacity,
			Description:      sc.Description,
			Vehicles:         append([]string(nil), sc.Vehicles...),
		})
	}
	return set, nil
}

// ApplyInflation sets each plan's value in today's money: FV / (1+i)^years, i in percent.
func ApplyInflation(set *models.PlanSet, inflation models.InflationRecord) {
	deflator := math.Pow(1+inflation.Rate/100, float64(set.Years))
	if deflator <= 0 || math.IsInf(deflator, 0) || math.IsNaN(deflator) {
		return
	}
	for i := range set.Plans {
		adj := RoundMoney(set.Plans[i].FutureValue / deflator)
		set.Plans[i].RealFutureValue = &adj
	}
	rec := inflation
	set.Inflation = &rec
}
