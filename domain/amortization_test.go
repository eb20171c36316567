package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTerms(t *testing.T, principal, rate string, years int) LoanTerms {
	t.Helper()
	terms, err := NewLoanTerms(
		decimal.RequireFromString(principal),
		decimal.RequireFromString(rate),
		years,
	)
	require.NoError(t, err)
	return terms
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"%s: want %s, got %s", msg, want, got)
}

func TestMonthlyPayment_30YearMortgage(t *testing.T) {
	// $250,000 at 4.5% for 30 years.
	engine := NewAmortization(mustTerms(t, "250000", "0.045", 30))

	assertAmount(t, "1266.71", engine.MonthlyPayment(), "monthly payment")
	assertAmount(t, "206015.60", engine.TotalInterest(), "total interest")
}

func TestMonthlyPayment_5YearCarLoan(t *testing.T) {
	// $25,000 at 6.75% for 5 years.
	engine := NewAmortization(mustTerms(t, "25000", "0.0675", 5))

	assertAmount(t, "492.09", engine.MonthlyPayment(), "monthly payment")
	assertAmount(t, "4525.40", engine.TotalInterest(), "total interest")
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	// $50,000 interest-free over 10 years: 50000/120 rounds to 416.67, and
	// the 40-cent rounding remainder shows up as "total interest".
	engine := NewAmortization(mustTerms(t, "50000", "0", 10))

	assertAmount(t, "416.67", engine.MonthlyPayment(), "monthly payment")
	assertAmount(t, "0.40", engine.TotalInterest(), "total interest")
}

func TestTotalInterest_MatchesPaymentTimesPeriods(t *testing.T) {
	terms := mustTerms(t, "250000", "0.045", 30)
	engine := NewAmortization(terms)

	payment := engine.MonthlyPayment()
	totalPaid := payment.Mul(decimal.NewFromInt(int64(terms.TotalPeriods())))
	want := totalPaid.Sub(terms.Principal()).Round(2)

	assert.True(t, engine.TotalInterest().Equal(want),
		"total interest must equal payment*periods - principal, want %s got %s",
		want, engine.TotalInterest())
}

func TestSchedule_FirstPeriodsOfMortgage(t *testing.T) {
	engine := NewAmortization(mustTerms(t, "250000", "0.045", 30))

	schedule := engine.Schedule(3)
	require.Len(t, schedule, 3)

	want := []struct {
		interest  string
		principal string
		balance   string
	}{
		{"937.50", "329.21", "249670.79"},
		{"936.27", "330.44", "249340.35"},
		{"935.03", "331.68", "249008.67"},
	}

	for i, w := range want {
		entry := schedule[i]
		assert.Equal(t, i+1, entry.Period)
		assertAmount(t, "1266.71", entry.Payment, "payment")
		assertAmount(t, w.interest, entry.Interest, "interest")
		assertAmount(t, w.principal, entry.Principal, "principal")
		assertAmount(t, w.balance, entry.Balance, "balance")
	}
}

func TestSchedule_EntryConsistency(t *testing.T) {
	terms := mustTerms(t, "25000", "0.0675", 5)
	engine := NewAmortization(terms)

	schedule := engine.Schedule(terms.TotalPeriods())
	require.Len(t, schedule, 60)

	payment := engine.MonthlyPayment()
	balance := terms.Principal()
	for _, entry := range schedule {
		assert.True(t, entry.Interest.Add(entry.Principal).Equal(payment),
			"period %d: interest %s + principal %s should equal payment %s",
			entry.Period, entry.Interest, entry.Principal, payment)

		balance = balance.Sub(entry.Principal)
		assert.True(t, entry.Balance.Equal(balance.Round(2)),
			"period %d: balance should be previous balance minus principal, want %s got %s",
			entry.Period, balance.Round(2), entry.Balance)
	}
}

func TestSchedule_InterestDecreasesPrincipalGrows(t *testing.T) {
	engine := NewAmortization(mustTerms(t, "250000", "0.045", 30))

	schedule := engine.Schedule(360)
	for i := 1; i < len(schedule); i++ {
		prev, cur := schedule[i-1], schedule[i]
		assert.True(t, cur.Interest.LessThanOrEqual(prev.Interest),
			"period %d: interest portion must not increase", cur.Period)
		assert.True(t, cur.Principal.GreaterThanOrEqual(prev.Principal),
			"period %d: principal portion must not decrease", cur.Period)
	}
}

func TestSchedule_LimitCapping(t *testing.T) {
	engine := NewAmortization(mustTerms(t, "25000", "0.0675", 5))

	assert.Len(t, engine.Schedule(500), 60, "limit past the term caps at total periods")
	assert.Len(t, engine.Schedule(12), 12)
	assert.Empty(t, engine.Schedule(0))
	assert.Empty(t, engine.Schedule(-1))
}

func TestSchedule_FinalBalanceRemainder(t *testing.T) {
	// $10,000 at 6% for 1 year: the constant rounded payment leaves a 4-cent
	// balance after the last period. That remainder is intentionally not
	// redistributed.
	engine := NewAmortization(mustTerms(t, "10000", "0.06", 1))

	schedule := engine.Schedule(12)
	require.Len(t, schedule, 12)

	assertAmount(t, "860.66", engine.MonthlyPayment(), "monthly payment")
	assertAmount(t, "50.00", schedule[0].Interest, "first interest")
	assertAmount(t, "0.04", schedule[11].Balance, "final balance")
}

func TestQuote_TotalCost(t *testing.T) {
	engine := NewAmortization(mustTerms(t, "250000", "0.045", 30))

	quote := engine.Quote()
	assertAmount(t, "1266.71", quote.MonthlyPayment, "monthly payment")
	assertAmount(t, "206015.60", quote.TotalInterest, "total interest")
	assertAmount(t, "456015.60", quote.TotalCost, "total cost")
}
