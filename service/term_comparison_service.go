package service

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"amortizer/domain"
)

// TermComparisonService evaluates a range of whole-year terms for a loan and
// ranks them by the caller's preference.
type TermComparisonService struct {
	quotes *QuoteService
}

func NewTermComparisonService(quotes *QuoteService) *TermComparisonService {
	return &TermComparisonService{quotes: quotes}
}

// Compare quotes every term in [MinYears, MaxYears], drops terms whose
// monthly payment exceeds the cap, and returns the remaining options sorted
// best score first.
func (s *TermComparisonService) Compare(
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {

	if input.MinYears <= 0 || input.MaxYears <= 0 {
		return domain.TermComparisonResult{}, errors.New("invalid term range")
	}
	if input.MinYears > input.MaxYears {
		return domain.TermComparisonResult{}, errors.New("minimum term is greater than maximum term")
	}
	if input.MaxYears > MaxTermYears {
		return domain.TermComparisonResult{}, fmt.Errorf("maximum term exceeds the limit of %d years", MaxTermYears)
	}
	if input.MaxYears-input.MinYears > MaxCompareRangeYears {
		return domain.TermComparisonResult{}, fmt.Errorf("term range exceeds the maximum of %d years", MaxCompareRangeYears)
	}
	if !input.MaxMonthlyPayment.IsPositive() {
		return domain.TermComparisonResult{}, errors.New("invalid maximum monthly payment")
	}

	switch input.Preference {
	case PreferenceMinimizeInterest, PreferenceMinimizePayment, PreferenceBalanced:
	default:
		return domain.TermComparisonResult{}, errors.New("invalid preference")
	}

	options := []domain.TermOption{}

	for years := input.MinYears; years <= input.MaxYears; years++ {
		quote, err := s.quotes.Quote(domain.LoanInput{
			Principal:  input.Principal,
			AnnualRate: input.AnnualRate,
			Years:      years,
		})
		if err != nil {
			log.Printf("Warning: failed to quote %d-year term: %v", years, err)
			continue
		}

		if quote.MonthlyPayment.GreaterThan(input.MaxMonthlyPayment) {
			continue
		}

		options = append(options, domain.TermOption{
			Years:          years,
			MonthlyPayment: quote.MonthlyPayment,
			TotalInterest:  quote.TotalInterest,
			Score:          s.score(quote, input, years),
			Reason:         reasonFor(input.Preference),
		})
	}

	if len(options) == 0 {
		return domain.TermComparisonResult{}, errors.New("no term fits the maximum monthly payment")
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})

	return domain.TermComparisonResult{
		RecommendedYears: options[0].Years,
		Options:          options,
	}, nil
}

// score ranks an option on a 0-10 scale. The normalization bounds are the
// simple-interest cost of the shortest and longest terms and the caller's
// payment cap.
func (s *TermComparisonService) score(
	quote domain.LoanQuote,
	input domain.TermComparisonInput,
	years int,
) float64 {
	amount := input.Principal.InexactFloat64()
	rate := input.AnnualRate.InexactFloat64()

	minInterest := amount * rate * float64(input.MinYears)
	maxInterest := amount * rate * float64(input.MaxYears)
	interestRange := maxInterest - minInterest

	lowestPayment := amount / float64(input.MaxYears*12)
	paymentRange := input.MaxMonthlyPayment.InexactFloat64() - lowestPayment

	var interestScore, paymentScore, termScore float64
	if interestRange > 0 {
		interestScore = 10 * (1 - (quote.TotalInterest.InexactFloat64()-minInterest)/interestRange)
	}
	if paymentRange > 0 {
		paymentScore = 10 * (1 - (quote.MonthlyPayment.InexactFloat64()-lowestPayment)/paymentRange)
	}
	if input.MaxYears > input.MinYears {
		termScore = 10 * (1 - float64(years-input.MinYears)/float64(input.MaxYears-input.MinYears))
	}

	var score float64
	switch input.Preference {
	case PreferenceMinimizeInterest:
		score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
	case PreferenceMinimizePayment:
		score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
	case PreferenceBalanced:
		score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
	}

	return math.Round(score*100) / 100
}

func reasonFor(preference string) string {
	switch preference {
	case PreferenceMinimizeInterest:
		return "term optimized to minimize total interest cost"
	case PreferenceMinimizePayment:
		return "term optimized to minimize the monthly payment"
	case PreferenceBalanced:
		return "best balance between monthly payment and total cost"
	}
	return "ranked against the provided parameters"
}
