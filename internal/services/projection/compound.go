package projection

import (
	"fmt"
	"math"

	"FinPlan/internal/domain/models"

	"github.com/shopspring/decimal"
)

// FutureValue projects a balance with monthly compounding:
//
//	FV = P(1+r)^n + C((1+r)^n - 1)/r,  r = annualRate/12, n = 12*years
//
// A zero rate uses the linear limit P + C*n.
func FutureValue(principal, monthlyContribution, annualRate, years float64) (float64, error) {
	if err := checkFinite(principal, monthlyContribution, annualRate, years); err != nil {
		return 0, err
	}
	if years < 0 {
		return 0, fmt.Errorf("years %.2f: %w", years, models.ErrDomain)
	}
	if annualRate <= -1 {
		return 0, fmt.Errorf("annual rate %.4f: %w", annualRate, models.ErrDomain)
	}

	n := years * 12
	if annualRate == 0 {
		return principal + monthlyContribution*n, nil
	}
	r := annualRate / 12
	growth := math.Pow(1+r, n)
	return principal*growth + monthlyContribution*(growth-1)/r, nil
}

// RequiredMonthlyPayment solves FutureValue for the contribution that reaches target.
// It returns 0 when the principal's own growth already covers the target.
func RequiredMonthlyPayment(target, principal, annualRate, years float64) (float64, error) {
	if err := checkFinite(target, principal, annualRate, years); err != nil {
		return 0, err
	}
	if target <= 0 {
		return 0, fmt.Errorf("target %.2f: %w", target, models.ErrDomain)
	}
	grown, err := FutureValue(principal, 0, annualRate, years)
	if err != nil {
		return 0, err
	}
	if grown >= target {
		return 0, nil
	}
	if years == 0 {
		return 0, fmt.Errorf("no time to close a gap of %.2f: %w", target-grown, models.ErrDomain)
	}

	n := years * 12
	if annualRate == 0 {
		return (target - principal) / n, nil
	}
	r := annualRate / 12
	return (target - grown) * r / (math.Pow(1+r, n) - 1), nil
}

// RoundMoney rounds to cents, half away from zero.
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func checkFinite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite input %v: %w", v, models.ErrDomain)
		}
	}
	return nil
}
