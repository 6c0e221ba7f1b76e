package usecase

import (
	"context"
	"encoding/json"

	exchangedomain "github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/domain"
	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/domain"
)

// SummaryUsecase defines the interface for summary business logic. Every
// operation is scoped to the calling user.
type SummaryUsecase interface {
	// GenerateSummary asks the oracle to summarize an exchange and stores the
	// result as the user's only summary of it
	GenerateSummary(ctx context.Context, userID, exchangeID string) (*domain.View, error)

	// ListSummaries returns the user's summaries in canonical shape
	ListSummaries(ctx context.Context, userID string) ([]*domain.View, error)

	// ListForExchange returns the user's summaries of one exchange
	ListForExchange(ctx context.Context, userID, exchangeID string) ([]*domain.View, error)

	// UpdateSummary merges a partial document into the user's summary
	UpdateSummary(ctx context.Context, userID, summaryID string, patch json.RawMessage) (*domain.View, error)
}

// ExchangeFetcher loads an exchange with its messages, failing with
// apperror.ErrNotFound when it does not exist
type ExchangeFetcher interface {
	GetExchange(ctx context.Context, id string) (*exchangedomain.Exchange, error)
}

// Summarizer produces a raw summary document for a transcript
type Summarizer interface {
	Summarize(ctx context.Context, segments []exchangedomain.Segment) (json.RawMessage, error)
}
