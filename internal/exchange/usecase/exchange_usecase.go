package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/domain"
	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/repository"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/apperror"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/fuzzy"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/pagination"

	"go.uber.org/zap"
)

// exchangeUsecase implements ExchangeUsecase interface
type exchangeUsecase struct {
	exchangeRepo repository.ExchangeRepository
	log          *zap.Logger
}

// NewExchangeUsecase creates a new instance of exchangeUsecase
func NewExchangeUsecase(exchangeRepo repository.ExchangeRepository, log *zap.Logger) ExchangeUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &exchangeUsecase{
		exchangeRepo: exchangeRepo,
		log:          log.Named("exchange"),
	}
}

func (u *exchangeUsecase) CreateExchange(ctx context.Context, title string, segments []domain.Segment) (*domain.Exchange, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required: %w", apperror.ErrInvalidInput)
	}

	exchange := &domain.Exchange{
		Title:    title,
		Messages: make([]domain.Message, 0, len(segments)),
	}
	for _, seg := range segments {
		exchange.Messages = append(exchange.Messages, domain.Message{
			Speaker:   seg.Speaker,
			SpeakerID: seg.SpeakerID,
			Text:      seg.Text,
		})
	}

	if err := u.exchangeRepo.Create(ctx, exchange); err != nil {
		return nil, fmt.Errorf("failed to create exchange: %w", err)
	}

	u.log.Info("exchange created",
		zap.String("exchange_id", exchange.ID),
		zap.Int("messages", len(exchange.Messages)))
	return exchange, nil
}

func (u *exchangeUsecase) GetExchange(ctx context.Context, id string) (*domain.Exchange, error) {
	exchange, err := u.exchangeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange: %w", err)
	}
	if exchange == nil {
		return nil, fmt.Errorf("exchange %s: %w", id, apperror.ErrNotFound)
	}
	return exchange, nil
}

func (u *exchangeUsecase) ListExchanges(ctx context.Context, req pagination.Request) (*pagination.Page[*domain.Exchange], error) {
	return pagination.Paginate(ctx, req, u.exchangeRepo.List)
}

func (u *exchangeUsecase) SearchExchanges(ctx context.Context, query string, req pagination.Request) (*pagination.Page[*domain.Exchange], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return u.ListExchanges(ctx, req)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	candidates, err := u.exchangeRepo.SearchCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load search candidates: %w", err)
	}

	type scored struct {
		exchange *domain.Exchange
		score    float64
	}
	var matches []scored
	for _, c := range candidates {
		if !fuzzy.MatchExchange(query, c.Exchange.Title, c.Speakers) {
			continue
		}
		matches = append(matches, scored{
			exchange: c.Exchange,
			score:    fuzzy.CalculateRelevanceScore(query, c.Exchange.Title, c.Speakers),
		})
	}

	// Candidates arrive newest first; a stable sort keeps that order among ties.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	ranked := make([]*domain.Exchange, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, m.exchange)
	}
	return pagination.Paginate(ctx, req, pagination.SliceFetch(ranked))
}

func (u *exchangeUsecase) CountExchanges(ctx context.Context) (int64, error) {
	return u.exchangeRepo.Count(ctx)
}
