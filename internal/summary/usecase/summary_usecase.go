package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/domain"
	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/repository"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/apperror"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// summaryUsecase implements SummaryUsecase interface
type summaryUsecase struct {
	summaryRepo repository.SummaryRepository
	exchanges   ExchangeFetcher
	summarizer  Summarizer
	log         *zap.Logger
}

// NewSummaryUsecase creates a new instance of summaryUsecase
func NewSummaryUsecase(summaryRepo repository.SummaryRepository, exchanges ExchangeFetcher, summarizer Summarizer, log *zap.Logger) SummaryUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &summaryUsecase{
		summaryRepo: summaryRepo,
		exchanges:   exchanges,
		summarizer:  summarizer,
		log:         log.Named("summary"),
	}
}

func (u *summaryUsecase) GenerateSummary(ctx context.Context, userID, exchangeID string) (*domain.View, error) {
	exchange, err := u.exchanges.GetExchange(ctx, exchangeID)
	if err != nil {
		return nil, err
	}

	// Saves an oracle call; the unique index is what actually enforces this.
	existing, err := u.summaryRepo.FindByUserAndExchange(ctx, userID, exchangeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing summary: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("summary for exchange %s already exists: %w", exchangeID, apperror.ErrConflict)
	}

	raw, err := u.summarizer.Summarize(ctx, exchange.Segments())
	if err != nil {
		return nil, err
	}

	doc, err := domain.NormalizeForCreate(raw)
	if err != nil {
		u.log.Warn("oracle reply rejected",
			zap.String("exchange_id", exchangeID),
			zap.Error(err))
		return nil, err
	}

	content, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode summary: %w", err)
	}

	summary := &domain.Summary{
		UserID:     userID,
		ExchangeID: exchangeID,
		Content:    datatypes.JSON(content),
	}
	if err := u.summaryRepo.Create(ctx, summary); err != nil {
		return nil, err
	}

	u.log.Info("summary generated",
		zap.String("summary_id", summary.ID),
		zap.String("exchange_id", exchangeID),
		zap.String("user_id", userID))

	return &domain.View{
		ID:         summary.ID,
		ExchangeID: summary.ExchangeID,
		Document:   doc,
		CreatedAt:  summary.CreatedAt,
		UpdatedAt:  summary.UpdatedAt,
	}, nil
}

func (u *summaryUsecase) ListSummaries(ctx context.Context, userID string) ([]*domain.View, error) {
	summaries, err := u.summaryRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	return u.views(summaries), nil
}

func (u *summaryUsecase) ListForExchange(ctx context.Context, userID, exchangeID string) ([]*domain.View, error) {
	summary, err := u.summaryRepo.FindByUserAndExchange(ctx, userID, exchangeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}
	if summary == nil {
		return []*domain.View{}, nil
	}
	return u.views([]*domain.Summary{summary}), nil
}

func (u *summaryUsecase) UpdateSummary(ctx context.Context, userID, summaryID string, patch json.RawMessage) (*domain.View, error) {
	draft, err := domain.ParseDraft(patch)
	if err != nil {
		return nil, err
	}

	summary, err := u.summaryRepo.FindByIDForUser(ctx, summaryID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}
	if summary == nil {
		return nil, fmt.Errorf("summary %s: %w", summaryID, apperror.ErrNotFound)
	}

	stored, err := domain.NormalizeStored(summary.Content)
	if err != nil {
		return nil, fmt.Errorf("stored summary %s is unreadable: %v", summaryID, err)
	}

	merged := domain.Merge(stored, draft)
	content, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := u.summaryRepo.UpdateContent(ctx, summary.ID, content); err != nil {
		return nil, err
	}
	summary.UpdatedAt = time.Now()

	return &domain.View{
		ID:         summary.ID,
		ExchangeID: summary.ExchangeID,
		Document:   merged,
		CreatedAt:  summary.CreatedAt,
		UpdatedAt:  summary.UpdatedAt,
	}, nil
}

// views normalizes stored rows. A row that cannot be read is logged and
// skipped so one corrupt document does not hide the rest.
func (u *summaryUsecase) views(summaries []*domain.Summary) []*domain.View {
	views := make([]*domain.View, 0, len(summaries))
	for _, s := range summaries {
		v, err := domain.NewView(s)
		if err != nil {
			u.log.Error("stored summary is unreadable",
				zap.String("summary_id", s.ID),
				zap.Error(err))
			continue
		}
		views = append(views, v)
	}
	return views
}
