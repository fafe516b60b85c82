package reference

import "FinPlan/internal/domain/models"

// Benchmarks returns a fresh copy of the curated financial rules of thumb.
func Benchmarks() models.FinancialBenchmarks {
	return models.FinancialBenchmarks{
		SavingsRateByAge: []models.SavingsRateBenchmark{
			{AgeRange: "20-29", MinAge: 20, MaxAge: 29, RecommendedRate: 10},
			{AgeRange: "30-39", MinAge: 30, MaxAge: 39, RecommendedRate: 15},
			{AgeRange: "40-49", MinAge: 40, MaxAge: 49, RecommendedRate: 20},
			{AgeRange: "50-59", MinAge: 50, MaxAge: 59, RecommendedRate: 25},
			{AgeRange: "60+", MinAge: 60, MaxAge: 0, RecommendedRate: 30},
		},
		EmergencyFundMonthsByIncome: []models.EmergencyFundBenchmark{
			{IncomeBracket: "low", MinMonthlyIncome: 0, MaxMonthlyIncome: 3000, Months: 6},
			{IncomeBracket: "middle", MinMonthlyIncome: 3000, MaxMonthlyIncome: 8000, Months: 4},
			{IncomeBracket: "high", MinMonthlyIncome: 8000, Months: 3},
		},
		DebtToIncome: []models.DebtToIncomeThreshold{
			{Label: "healthy", MaxRatio: 0.20, Guidance: "debt is comfortably manageable"},
			{Label: "manageable", MaxRatio: 0.36, Guidance: "typical lender ceiling for total debt"},
			{Label: "stretched", MaxRatio: 0.43, Guidance: "qualified mortgage limit; avoid new debt"},
			{Label: "critical", MaxRatio: 1.00, Guidance: "prioritize paying down debt"},
		},
		RetirementMultipleByAge: []models.RetirementMultiple{
			{Age: 30, Multiple: 1},
			{Age: 35, Multiple: 2},
			{Age: 40, Multiple: 3},
			{Age: 45, Multiple: 4},
			{Age: 50, Multiple: 6},
			{Age: 55, Multiple: 7},
			{Age: 60, Multiple: 8},
			{Age: 67, Multiple: 10},
		},
		ExpenseRatioByCategory: []models.ExpenseRatio{
			{Category: "housing", Percent: 30},
			{Category: "transportation", Percent: 15},
			{Category: "food", Percent: 12},
			{Category: "utilities", Percent: 8},
			{Category: "insurance", Percent: 10},
			{Category: "healthcare", Percent: 5},
			{Category: "savings", Percent: 15},
			{Category: "personal", Percent: 5},
		},
	}
}
