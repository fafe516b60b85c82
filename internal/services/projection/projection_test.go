package projection

import (
	"math"
	"testing"

	"FinPlan/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureValuePrincipalOnly(t *testing.T) {
	for _, tc := range []struct {
		p, rate, years float64
	}{
		{10000, 0.05, 10},
		{2500, 0.11, 30},
		{1, 0.001, 0.5},
	} {
		got, err := FutureValue(tc.p, 0, tc.rate, tc.years)
		require.NoError(t, err)
		want := tc.p * math.Pow(1+tc.rate/12, 12*tc.years)
		assert.InDelta(t, want, got, 1e-9*want)
	}
}

func TestFutureValueZeroRateIsLinear(t *testing.T) {
	got, err := FutureValue(1000, 250, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 1000+250*12*4.0, got)

	got, err = FutureValue(0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestFutureValueKnownValue(t *testing.T) {
	// 500/month for 10 years at 6% with 10k initial.
	got, err := FutureValue(10000, 500, 0.06, 10)
	require.NoError(t, err)
	assert.InDelta(t, 100133.64, got, 0.01)
}

func TestFutureValueDomain(t *testing.T) {
	_, err := FutureValue(1000, 0, 0.05, -1)
	assert.ErrorIs(t, err, models.ErrDomain)
	_, err = FutureValue(math.NaN(), 0, 0.05, 1)
	assert.ErrorIs(t, err, models.ErrDomain)
	_, err = FutureValue(1000, 0, -1, 1)
	assert.ErrorIs(t, err, models.ErrDomain)
}

func TestRequiredMonthlyPaymentRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		target, principal, rate, years float64
	}{
		{50000, 5000, 0.075, 10},
		{1_000_000, 0, 0.11, 35},
		{20000, 19000, 0.045, 1},
		{12000, 0, 0, 2},
	} {
		pmt, err := RequiredMonthlyPayment(tc.target, tc.principal, tc.rate, tc.years)
		require.NoError(t, err)
		require.Greater(t, pmt, 0.0)
		fv, err := FutureValue(tc.principal, pmt, tc.rate, tc.years)
		require.NoError(t, err)
		assert.InDelta(t, tc.target, fv, 1e-6*tc.target)
	}
}

func TestRequiredMonthlyPaymentZeroWhenPrincipalSuffices(t *testing.T) {
	pmt, err := RequiredMonthlyPayment(10000, 10000, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pmt)

	pmt, err = RequiredMonthlyPayment(15000, 10000, 0.08, 10) // grows to ~22k
	require.NoError(t, err)
	assert.Equal(t, 0.0, pmt)

	pmt, err = RequiredMonthlyPayment(500, 1000, 0.05, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pmt)
}

func TestRequiredMonthlyPaymentDomain(t *testing.T) {
	_, err := RequiredMonthlyPayment(0, 100, 0.05, 5)
	assert.ErrorIs(t, err, models.ErrDomain)
	_, err = RequiredMonthlyPayment(-10, 100, 0.05, 5)
	assert.ErrorIs(t, err, models.ErrDomain)
	_, err = RequiredMonthlyPayment(1000, 0, 0.05, -2)
	assert.ErrorIs(t, err, models.ErrDomain)
	_, err = RequiredMonthlyPayment(1000, 0, 0.05, 0)
	assert.ErrorIs(t, err, models.ErrDomain)
}

func TestBuildInvestmentPlansScenario(t *testing.T) {
	set, err := BuildInvestmentPlans(PlanInput{
		TargetAmount:    50000,
		CurrentSavings:  5000,
		MonthlyIncome:   4000,
		MonthlyExpenses: 3000,
		Years:           10,
	})
	require.NoError(t, err)
	require.Len(t, set.Plans, 3)
	assert.Equal(t, 1000.0, set.MaxMonthlyCapacity)

	names := []string{Conservative, Balanced, Aggressive}
	tiers := []models.RiskTier{models.RiskLow, models.RiskMedium, models.RiskHigh}
	for i, p := range set.Plans {
		assert.Equal(t, names[i], p.Name)
		assert.Equal(t, tiers[i], p.RiskTier)
		assert.InDelta(t, p.FutureValue-p.TotalContributed, p.TotalGains, 1e-6)
		assert.InDelta(t, 5000+p.MonthlyPayment*120, p.TotalContributed, 0.01)
		assert.InDelta(t, 50000, p.FutureValue, 5, "rounded payment lands on target")
		assert.True(t, p.Affordable)
		assert.NotEmpty(t, p.Vehicles)
		assert.Nil(t, p.RealFutureValue)
	}
	assert.Greater(t, set.Plans[0].MonthlyPayment, set.Plans[1].MonthlyPayment)
	assert.Greater(t, set.Plans[1].MonthlyPayment, set.Plans[2].MonthlyPayment)

	p, ok := set.Plan(Balanced)
	require.True(t, ok)
	assert.Equal(t, 0.075, p.AnnualReturn)
}

func TestBuildInvestmentPlansCapacityFloor(t *testing.T) {
	set, err := BuildInvestmentPlans(PlanInput{TargetAmount: 10000, MonthlyIncome: 2000, MonthlyExpenses: 2500, Years: 5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, set.MaxMonthlyCapacity)
	for _, p := range set.Plans {
		assert.False(t, p.Affordable)
	}
}

func TestBuildInvestmentPlansDomain(t *testing.T) {
	_, err := BuildInvestmentPlans(PlanInput{TargetAmount: 0, Years: 5})
	assert.ErrorIs(t, err, models.ErrDomain)
	_, err = BuildInvestmentPlans(PlanInput{TargetAmount: 1000, Years: -1})
	assert.ErrorIs(t, err, models.ErrDomain)
	_, err = BuildInvestmentPlans(PlanInput{TargetAmount: 1000, Years: 0})
	assert.ErrorIs(t, err, models.ErrDomain)
}

func TestApplyInflation(t *testing.T) {
	set, err := BuildInvestmentPlans(PlanInput{TargetAmount: 50000, CurrentSavings: 5000, MonthlyIncome: 4000, MonthlyExpenses: 3000, Years: 10})
	require.NoError(t, err)

	ApplyInflation(&set, models.InflationRecord{Country: "US", Rate: 3})
	require.NotNil(t, set.Inflation)
	for _, p := range set.Plans {
		require.NotNil(t, p.RealFutureValue)
		assert.InDelta(t, p.FutureValue/math.Pow(1.03, 10), *p.RealFutureValue, 0.01)
	}
}

func TestSolveRealisticTimeline(t *testing.T) {
	res, err := SolveRealisticTimeline(50000, 5000, 1000)
	require.NoError(t, err)
	assert.Equal(t, 700.0, res.MonthlyContribution)
	assert.Equal(t, DefaultTimelineReturn, res.AnnualReturn)
	assert.True(t, res.IsRealistic)
	assert.False(t, res.Unbounded)
	assert.GreaterOrEqual(t, res.ProjectedValue, 50000.0)

	prev, err := FutureValue(5000, 700, DefaultTimelineReturn, float64(res.YearsNeeded-1))
	require.NoError(t, err)
	assert.Less(t, prev, 50000.0, "first qualifying year")
}

func TestSolveRealisticTimelineNoCapacity(t *testing.T) {
	for _, capacity := range []float64{0, -500} {
		res, err := SolveRealisticTimeline(50000, 5000, capacity)
		require.NoError(t, err)
		assert.False(t, res.IsRealistic)
		assert.True(t, res.Unbounded)
		assert.Equal(t, 0.0, res.MonthlyContribution)
		assert.GreaterOrEqual(t, res.YearsNeeded, 1)
		assert.LessOrEqual(t, res.YearsNeeded, MaxTimelineYears)
	}
}

func TestSolveRealisticTimelineBounds(t *testing.T) {
	// Tiny contributions: beyond 30 years but within the ceiling.
	res, err := SolveRealisticTimeline(100000, 0, 100, WithAnnualReturn(0.05))
	require.NoError(t, err)
	assert.Greater(t, res.YearsNeeded, RealisticHorizonYears)
	assert.False(t, res.IsRealistic)
	assert.False(t, res.Unbounded)

	// Unreachable at zero return within 100 years.
	res, err = SolveRealisticTimeline(1e9, 0, 10, WithAnnualReturn(0))
	require.NoError(t, err)
	assert.True(t, res.Unbounded)
	assert.Equal(t, MaxTimelineYears, res.YearsNeeded)
	assert.False(t, res.IsRealistic)

	// Already funded: one year is the floor.
	res, err = SolveRealisticTimeline(1000, 5000, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, res.YearsNeeded)
	assert.True(t, res.IsRealistic)
}

func TestSolveRealisticTimelineOptionsAndDomain(t *testing.T) {
	res, err := SolveRealisticTimeline(50000, 0, 1000, WithUtilization(1), WithAnnualReturn(0.11))
	require.NoError(t, err)
	assert.Equal(t, 1000.0, res.MonthlyContribution)
	assert.Equal(t, 0.11, res.AnnualReturn)

	_, err = SolveRealisticTimeline(0, 0, 1000)
	assert.ErrorIs(t, err, models.ErrDomain)
	_, err = SolveRealisticTimeline(1000, 0, 1000, WithUtilization(0))
	assert.ErrorIs(t, err, models.ErrDomain)
	_, err = SolveRealisticTimeline(1000, 0, 1000, WithUtilization(1.5))
	assert.ErrorIs(t, err, models.ErrDomain)
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 1.01, RoundMoney(1.005))
	assert.Equal(t, -2.35, RoundMoney(-2.345))
	assert.Equal(t, 10.0, RoundMoney(9.999))
}
