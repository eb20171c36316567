package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"amortizer/domain"
	"amortizer/repository"
)

func newComparisonService() *TermComparisonService {
	quotes := NewQuoteService(&MockQuoteRepository{}, repository.NewMockCache())
	return NewTermComparisonService(quotes)
}

func carLoanComparison() domain.TermComparisonInput {
	return domain.TermComparisonInput{
		Principal:         decimal.NewFromInt(25_000),
		AnnualRate:        decimal.RequireFromString("0.0675"),
		MinYears:          1,
		MaxYears:          5,
		MaxMonthlyPayment: decimal.NewFromInt(2500),
		Preference:        PreferenceMinimizeInterest,
	}
}

func TestCompare_MinimizeInterestPicksShortestTerm(t *testing.T) {
	result, err := newComparisonService().Compare(carLoanComparison())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.RecommendedYears != 1 {
		t.Errorf("expected the 1-year term to minimize interest, got %d", result.RecommendedYears)
	}
	if len(result.Options) != 5 {
		t.Errorf("expected all 5 terms to be feasible, got %d", len(result.Options))
	}
	for i := 1; i < len(result.Options); i++ {
		if result.Options[i].Score > result.Options[i-1].Score {
			t.Errorf("options not sorted by score: %v before %v",
				result.Options[i-1].Score, result.Options[i].Score)
		}
	}
}

func TestCompare_FiltersByMaxMonthlyPayment(t *testing.T) {
	input := carLoanComparison()
	// Only the 5-year term ($492.09/month) fits under $500.
	input.MaxMonthlyPayment = decimal.NewFromInt(500)

	result, err := newComparisonService().Compare(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Options) != 1 {
		t.Fatalf("expected a single feasible term, got %d", len(result.Options))
	}
	if result.RecommendedYears != 5 {
		t.Errorf("expected the 5-year term, got %d", result.RecommendedYears)
	}
	if got := result.Options[0].MonthlyPayment.StringFixed(2); got != "492.09" {
		t.Errorf("expected monthly payment 492.09, got %s", got)
	}
}

func TestCompare_NoFeasibleTerm(t *testing.T) {
	input := carLoanComparison()
	input.MaxMonthlyPayment = decimal.NewFromInt(100)

	if _, err := newComparisonService().Compare(input); err == nil {
		t.Errorf("expected error when no term fits the payment cap")
	}
}

func TestCompare_InvalidInputs(t *testing.T) {
	svc := newComparisonService()

	invalid := []struct {
		name   string
		mutate func(*domain.TermComparisonInput)
	}{
		{"min greater than max", func(in *domain.TermComparisonInput) { in.MinYears = 6 }},
		{"zero min", func(in *domain.TermComparisonInput) { in.MinYears = 0 }},
		{"range too wide", func(in *domain.TermComparisonInput) { in.MaxYears = in.MinYears + MaxCompareRangeYears + 1 }},
		{"max term over limit", func(in *domain.TermComparisonInput) { in.MaxYears = MaxTermYears + 1 }},
		{"bad preference", func(in *domain.TermComparisonInput) { in.Preference = "cheapest" }},
		{"zero payment cap", func(in *domain.TermComparisonInput) { in.MaxMonthlyPayment = decimal.Zero }},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			input := carLoanComparison()
			tc.mutate(&input)
			if _, err := svc.Compare(input); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}
