package domain

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// Amortization computes fixed-rate loan figures from an immutable set of
// terms. The rounded monthly payment is the single source of truth: the
// schedule and the total-interest figure both derive from that exact value,
// so the quoted payment, the schedule rows, and the lifetime totals always
// agree. Values are safe for concurrent use; every call works only on local
// state.
type Amortization struct {
	terms LoanTerms
}

// NewAmortization wraps validated terms in an engine.
func NewAmortization(terms LoanTerms) Amortization {
	return Amortization{terms: terms}
}

// MonthlyPayment returns the constant payment that amortizes the loan over
// its full term, rounded half-up to cents. Zero-rate loans divide evenly;
// any cent remainder surfaces in the final balance rather than being
// redistributed.
func (a Amortization) MonthlyPayment() decimal.Decimal {
	periods := decimal.NewFromInt(int64(a.terms.totalPeriods))
	if a.terms.annualRate.IsZero() {
		return a.terms.principal.Div(periods).Round(2)
	}

	r := a.terms.monthlyRate
	factor := compoundFactor(r, a.terms.totalPeriods)
	return a.terms.principal.Mul(r).Mul(factor).Div(factor.Sub(one)).Round(2)
}

// Schedule returns the breakdown of periods 1..min(limit, TotalPeriods).
// Interest is billed in whole cents each period, and the rounded balance is
// carried into the next period's interest computation, matching how loan
// servicers actually bill. A non-positive limit yields no entries.
func (a Amortization) Schedule(limit int) []ScheduleEntry {
	n := limit
	if n > a.terms.totalPeriods {
		n = a.terms.totalPeriods
	}
	if n <= 0 {
		return nil
	}

	payment := a.MonthlyPayment()
	balance := a.terms.principal
	entries := make([]ScheduleEntry, 0, n)

	for p := 1; p <= n; p++ {
		interest := balance.Mul(a.terms.monthlyRate).Round(2)
		principal := payment.Sub(interest)
		balance = balance.Sub(principal)
		entries = append(entries, ScheduleEntry{
			Period:    p,
			Payment:   payment,
			Interest:  interest,
			Principal: principal,
			Balance:   balance.Round(2),
		})
	}
	return entries
}

// TotalInterest returns the interest paid over the whole term, independent of
// any schedule limit.
func (a Amortization) TotalInterest() decimal.Decimal {
	payment := a.MonthlyPayment()
	totalPaid := payment.Mul(decimal.NewFromInt(int64(a.terms.totalPeriods)))
	return totalPaid.Sub(a.terms.principal).Round(2)
}

// Quote bundles the whole-of-loan figures.
func (a Amortization) Quote() LoanQuote {
	interest := a.TotalInterest()
	return LoanQuote{
		MonthlyPayment: a.MonthlyPayment(),
		TotalInterest:  interest,
		TotalCost:      a.terms.principal.Add(interest),
	}
}

// compoundFactor computes (1+r)^n by repeated multiplication in the decimal
// domain. A binary-float pow accumulates error over long terms; decimal
// multiplication is exact.
func compoundFactor(r decimal.Decimal, n int) decimal.Decimal {
	base := one.Add(r)
	factor := one
	for i := 0; i < n; i++ {
		factor = factor.Mul(base)
	}
	return factor
}
