package service

import "github.com/shopspring/decimal"

const (
	MaxTermYears         = 50
	DefaultScheduleLimit = 12

	// Limit on the span of terms a comparison may evaluate.
	MaxCompareRangeYears = 10
)

// Comparison preferences.
const (
	PreferenceMinimizeInterest = "minimize_interest"
	PreferenceMinimizePayment  = "minimize_payment"
	PreferenceBalanced         = "balanced"
)

var (
	MaxPrincipal  = decimal.NewFromInt(1_000_000_000)
	MaxAnnualRate = decimal.NewFromInt(10) // 1000% annual
)
