package service

import (
	"encoding/json"
	"fmt"
	"log"

	"amortizer/domain"
	"amortizer/repository"
)

// QuoteService wraps the amortization engine with service-level limits, a
// quote cache, and a calculation history.
type QuoteService struct {
	repo  repository.QuoteRepository
	cache repository.CacheRepository
}

// NewQuoteService creates a QuoteService backed by the given history
// repository and cache.
func NewQuoteService(
	repo repository.QuoteRepository,
	cache repository.CacheRepository,
) *QuoteService {
	return &QuoteService{repo: repo, cache: cache}
}

// Quote computes the whole-of-loan figures for the input. Cached results are
// returned as-is; fresh results are cached and appended to the history
// (neither step is critical if it fails).
func (s *QuoteService) Quote(input domain.LoanInput) (domain.LoanQuote, error) {
	terms, err := s.newTerms(input)
	if err != nil {
		return domain.LoanQuote{}, err
	}

	key := cacheKey(input)
	if raw, ok := s.cache.Get(key); ok {
		var quote domain.LoanQuote
		if err := json.Unmarshal([]byte(raw), &quote); err == nil {
			return quote, nil
		}
	}

	quote := domain.NewAmortization(terms).Quote()

	if raw, err := json.Marshal(quote); err == nil {
		if err := s.cache.Set(key, string(raw)); err != nil {
			log.Printf("Warning: failed to cache quote: %v", err)
		}
	}
	if err := s.repo.Save(input, quote); err != nil {
		log.Printf("Warning: failed to save quote: %v", err)
	}

	return quote, nil
}

// Schedule returns the first limit periods of the amortization schedule. A
// non-positive limit falls back to DefaultScheduleLimit; limits past the end
// of the term are capped by the engine.
func (s *QuoteService) Schedule(
	input domain.LoanInput,
	limit int,
) ([]domain.ScheduleEntry, error) {
	terms, err := s.newTerms(input)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultScheduleLimit
	}
	return domain.NewAmortization(terms).Schedule(limit), nil
}

func (s *QuoteService) newTerms(input domain.LoanInput) (domain.LoanTerms, error) {
	if input.Principal.GreaterThan(MaxPrincipal) {
		return domain.LoanTerms{}, fmt.Errorf("principal exceeds the maximum of $%s", MaxPrincipal)
	}
	if input.AnnualRate.GreaterThan(MaxAnnualRate) {
		return domain.LoanTerms{}, fmt.Errorf("annual rate exceeds the maximum of %s", MaxAnnualRate)
	}
	if input.Years > MaxTermYears {
		return domain.LoanTerms{}, fmt.Errorf("term exceeds the maximum of %d years", MaxTermYears)
	}
	return domain.NewLoanTerms(input.Principal, input.AnnualRate, input.Years)
}

func cacheKey(input domain.LoanInput) string {
	return fmt.Sprintf("quote:%s:%s:%d", input.Principal, input.AnnualRate, input.Years)
}
