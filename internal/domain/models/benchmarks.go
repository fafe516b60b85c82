package models

type SavingsRateBenchmark struct {
	AgeRange        string  `json:"age_range"`
	MinAge          int     `json:"min_age"`
	MaxAge          int     `json:"max_age"`
	RecommendedRate float64 `json:"recommended_rate"`
}

type EmergencyFundBenchmark struct {
	IncomeBracket    string  `json:"income_bracket"`
	MinMonthlyIncome float64 `json:"min_monthly_income"`
	MaxMonthlyIncome float64 `json:"max_monthly_income,omitempty"` // 0 = open ended
	Months           int     `json:"months"`
}

type DebtToIncomeThreshold struct {
	Label    string  `json:"label"`
	MaxRatio float64 `json:"max_ratio"`
	Guidance string  `json:"guidance"`
}

type RetirementMultiple struct {
	Age      int     `json:"age"`
	Multiple float64 `json:"multiple_of_salary"`
}

type ExpenseRatio struct {
	Category string  `json:"category"`
	Percent  float64 `json:"percent_of_income"`
}

// FinancialBenchmarks are curated rules of thumb served as-is.
type FinancialBenchmarks struct {
	SavingsRateByAge            []SavingsRateBenchmark   `json:"savings_rate_by_age"`
	EmergencyFundMonthsByIncome []EmergencyFundBenchmark `json:"emergency_fund_months_by_income"`
	DebtToIncome                []DebtToIncomeThreshold  `json:"debt_to_income"`
	RetirementMultipleByAge     []RetirementMultiple     `json:"retirement_multiple_by_age"`
	ExpenseRatioByCategory      []ExpenseRatio           `json:"expense_ratio_by_category"`
}
