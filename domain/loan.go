package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidLoanParameters is returned by NewLoanTerms when an input violates
// the loan constraints. Callers match it with errors.Is.
var ErrInvalidLoanParameters = errors.New("invalid loan parameters")

var twelve = decimal.NewFromInt(12)

// LoanTerms holds the validated parameters of a fixed-rate loan, immutable
// after construction. The monthly rate and period count are derived once here
// so every calculation works from the same values.
type LoanTerms struct {
	principal    decimal.Decimal
	annualRate   decimal.Decimal
	years        int
	monthlyRate  decimal.Decimal
	totalPeriods int
}

// NewLoanTerms validates the inputs and derives the monthly rate and total
// period count. The annual rate is a decimal fraction (0.045 for 4.5%).
func NewLoanTerms(principal, annualRate decimal.Decimal, years int) (LoanTerms, error) {
	if !principal.IsPositive() {
		return LoanTerms{}, fmt.Errorf("%w: principal must be greater than zero, got %s",
			ErrInvalidLoanParameters, principal)
	}
	if annualRate.IsNegative() {
		return LoanTerms{}, fmt.Errorf("%w: annual rate must not be negative, got %s",
			ErrInvalidLoanParameters, annualRate)
	}
	if years <= 0 {
		return LoanTerms{}, fmt.Errorf("%w: term must be at least one year, got %d",
			ErrInvalidLoanParameters, years)
	}

	return LoanTerms{
		principal:    principal,
		annualRate:   annualRate,
		years:        years,
		monthlyRate:  annualRate.Div(twelve),
		totalPeriods: years * 12,
	}, nil
}

func (t LoanTerms) Principal() decimal.Decimal   { return t.principal }
func (t LoanTerms) AnnualRate() decimal.Decimal  { return t.annualRate }
func (t LoanTerms) Years() int                   { return t.years }
func (t LoanTerms) MonthlyRate() decimal.Decimal { return t.monthlyRate }
func (t LoanTerms) TotalPeriods() int            { return t.totalPeriods }

// LoanInput carries raw loan parameters into the service layer.
type LoanInput struct {
	Principal  decimal.Decimal `json:"principal"`
	AnnualRate decimal.Decimal `json:"annual_rate"`
	Years      int             `json:"years"`
}

// LoanQuote is the whole-of-loan summary for a set of terms.
type LoanQuote struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	TotalCost      decimal.Decimal `json:"total_cost"`
}

// ScheduleEntry is the breakdown of a single payment period. All amounts are
// 2-decimal currency values.
type ScheduleEntry struct {
	Period    int             `json:"period"`
	Payment   decimal.Decimal `json:"payment"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Balance   decimal.Decimal `json:"balance"`
}
