package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"amortizer/domain"
)

// QuoteRecord is one saved calculation.
type QuoteRecord struct {
	ID        uuid.UUID
	Input     domain.LoanInput
	Quote     domain.LoanQuote
	CreatedAt time.Time
}

// QuoteRepositoryMemory is an in-memory implementation of QuoteRepository.
type QuoteRepositoryMemory struct {
	mu   sync.Mutex
	data []QuoteRecord
}

// NewQuoteRepositoryMemory creates a new in-memory quote history.
func NewQuoteRepositoryMemory() *QuoteRepositoryMemory {
	return &QuoteRepositoryMemory{
		data: []QuoteRecord{},
	}
}

// Save appends the quote to the history.
func (r *QuoteRepositoryMemory) Save(
	input domain.LoanInput,
	quote domain.LoanQuote,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, QuoteRecord{
		ID:        uuid.New(),
		Input:     input,
		Quote:     quote,
		CreatedAt: time.Now(),
	})
	return nil
}

// History returns a copy of the saved records in insertion order.
func (r *QuoteRepositoryMemory) History() []QuoteRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]QuoteRecord, len(r.data))
	copy(out, r.data)
	return out
}
