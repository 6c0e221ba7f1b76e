package usecase

import (
	"context"

	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/domain"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/pagination"
)

// ExchangeUsecase defines the interface for exchange business logic
type ExchangeUsecase interface {
	// CreateExchange stores a titled exchange built from ordered speaker turns
	CreateExchange(ctx context.Context, title string, segments []domain.Segment) (*domain.Exchange, error)

	// GetExchange loads one exchange with its messages
	GetExchange(ctx context.Context, id string) (*domain.Exchange, error)

	// ListExchanges returns one page of exchanges, newest first
	ListExchanges(ctx context.Context, req pagination.Request) (*pagination.Page[*domain.Exchange], error)

	// SearchExchanges ranks exchanges by how well their title or speakers
	// match query and returns one page of the matches
	SearchExchanges(ctx context.Context, query string, req pagination.Request) (*pagination.Page[*domain.Exchange], error)

	// CountExchanges returns the number of stored exchanges
	CountExchanges(ctx context.Context) (int64, error)
}
