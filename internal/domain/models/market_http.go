package models

// Requests for the market and projection HTTP endpoints.

type QuoteRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required,max=20"`
}

type QuotesRequest struct {
	Symbols string `query:"symbols" json:"symbols" validate:"required"` // comma separated
}

type ForexRequest struct {
	From string `query:"from" json:"from" validate:"required,len=3,alpha"`
	To   string `query:"to" json:"to" validate:"required,len=3,alpha"`
}

type CountryRequest struct {
	Country string `query:"country" json:"country" default:"US" validate:"min=2,max=3,alpha"`
}

type FutureValueRequest struct {
	Principal           float64 `json:"principal" validate:"gte=0"`
	MonthlyContribution float64 `json:"monthly_contribution" validate:"gte=0"`
	AnnualRate          float64 `json:"annual_rate" validate:"gte=-0.5,lte=1"`
	Years               float64 `json:"years" validate:"gte=0,lte=100"`
}

type RequiredPaymentRequest struct {
	Target     float64 `json:"target" validate:"gt=0"`
	Principal  float64 `json:"principal" validate:"gte=0"`
	AnnualRate float64 `json:"annual_rate" validate:"gte=-0.5,lte=1"`
	Years      float64 `json:"years" validate:"gt=0,lte=100"`
}

type PlanRequest struct {
	TargetAmount    float64 `json:"target_amount" validate:"gt=0"`
	CurrentSavings  float64 `json:"current_savings" validate:"gte=0"`
	MonthlyIncome   float64 `json:"monthly_income" validate:"gte=0"`
	MonthlyExpenses float64 `json:"monthly_expenses" validate:"gte=0"`
	Years           int     `json:"years" validate:"gte=1,lte=100"`
	// Country, when set, adds inflation-adjusted values.
	Country string `json:"country" validate:"omitempty,min=2,max=3,alpha"`
}

type TimelineRequest struct {
	TargetAmount       float64 `json:"target_amount" validate:"gt=0"`
	CurrentSavings     float64 `json:"current_savings" validate:"gte=0"`
	MaxMonthlyCapacity float64 `json:"max_monthly_capacity"`
	Utilization        float64 `json:"utilization" default:"0.7" validate:"gt=0,lte=1"`
	// AnnualReturn is a pointer so an explicit 0 is kept apart from "not given".
	AnnualReturn *float64 `json:"annual_return" default:"0.075" validate:"omitempty,gte=0,lte=1"`
}

// Responses that have no natural domain type.

type FutureValueResponse struct {
	FutureValue      float64 `json:"future_value"`
	TotalContributed float64 `json:"total_contributed"`
	TotalGains       float64 `json:"total_gains"`
}

type RequiredPaymentResponse struct {
	MonthlyPayment float64 `json:"monthly_payment"`
}

type NarrativeResponse struct {
	Country   string `json:"country"`
	Narrative string `json:"narrative"`
}
