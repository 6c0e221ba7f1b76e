package repository

import (
	"context"

	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/domain"
)

// SummaryRepository defines the interface for summary data access.
// Finders return (nil, nil) when nothing matches.
type SummaryRepository interface {
	// Create inserts a new summary. A second summary for the same
	// (user, exchange) pair fails with apperror.ErrConflict.
	Create(ctx context.Context, summary *domain.Summary) error

	// FindByIDForUser finds a summary by ID that belongs to userID
	FindByIDForUser(ctx context.Context, id, userID string) (*domain.Summary, error)

	// FindByUserAndExchange finds the user's summary of an exchange
	FindByUserAndExchange(ctx context.Context, userID, exchangeID string) (*domain.Summary, error)

	// FindByUser lists all summaries of a user, newest first
	FindByUser(ctx context.Context, userID string) ([]*domain.Summary, error)

	// UpdateContent replaces the stored content of a summary
	UpdateContent(ctx context.Context, id string, content []byte) error
}
