package repository

import "amortizer/domain"

// QuoteRepository records every computed quote.
type QuoteRepository interface {
	Save(input domain.LoanInput, quote domain.LoanQuote) error
}
