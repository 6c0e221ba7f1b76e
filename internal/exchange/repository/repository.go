package repository

import (
	"context"

	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/domain"
)

// ExchangeRepository defines the interface for exchange data access
type ExchangeRepository interface {
	// Create inserts an exchange together with its messages
	Create(ctx context.Context, exchange *domain.Exchange) error

	// FindByID finds an exchange with its messages in creation order.
	// Returns (nil, nil) when no exchange has this ID.
	FindByID(ctx context.Context, id string) (*domain.Exchange, error)

	// List returns a page of exchanges without messages, newest first,
	// together with the total number of exchanges
	List(ctx context.Context, skip, take int) ([]*domain.Exchange, int64, error)

	// SearchCandidates returns every exchange header with its speaker names
	SearchCandidates(ctx context.Context) ([]domain.SearchCandidate, error)

	// Count returns the total number of exchanges
	Count(ctx context.Context) (int64, error)
}
