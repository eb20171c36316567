package domain

import "github.com/shopspring/decimal"

// TermComparisonInput describes a request to evaluate every whole-year term
// in [MinYears, MaxYears] for a loan.
type TermComparisonInput struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRate        decimal.Decimal `json:"annual_rate"`
	MinYears          int             `json:"min_years"`
	MaxYears          int             `json:"max_years"`
	MaxMonthlyPayment decimal.Decimal `json:"max_monthly_payment"`
	Preference        string          `json:"preference"` // minimize_interest, minimize_payment, balanced
}

// TermOption is one evaluated term, scored against the caller's preference.
type TermOption struct {
	Years          int             `json:"years"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	Score          float64         `json:"score"`
	Reason         string          `json:"reason"`
}

// TermComparisonResult lists the evaluated options, best score first.
type TermComparisonResult struct {
	RecommendedYears int          `json:"recommended_years"`
	Options          []TermOption `json:"options"`
}
