package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// gormExchangeRepository implements ExchangeRepository using GORM
type gormExchangeRepository struct {
	db *gorm.DB
}

// NewGormExchangeRepository creates a new GORM-based ExchangeRepository
func NewGormExchangeRepository(db *gorm.DB) ExchangeRepository {
	return &gormExchangeRepository{db: db}
}

func (r *gormExchangeRepository) Create(ctx context.Context, exchange *domain.Exchange) error {
	if exchange.ID == "" {
		exchange.ID = uuid.New().String()
	}
	now := time.Now()
	exchange.CreatedAt = now
	exchange.UpdatedAt = now

	for i := range exchange.Messages {
		m := &exchange.Messages[i]
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		m.ExchangeID = exchange.ID
		m.Seq = i
		m.CreatedAt = now
		m.UpdatedAt = now
	}

	// Exchange and messages are created in one transaction by association save.
	return r.db.WithContext(ctx).Create(exchange).Error
}

func (r *gormExchangeRepository) FindByID(ctx context.Context, id string) (*domain.Exchange, error) {
	var exchange domain.Exchange
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC, created_at ASC")
		}).
		Where("id = ?", id).First(&exchange).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exchange, nil
}

func (r *gormExchangeRepository) List(ctx context.Context, skip, take int) ([]*domain.Exchange, int64, error) {
	var (
		exchanges []*domain.Exchange
		total     int64
	)

	// Count and page query are independent; run them side by side.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&domain.Exchange{}).Count(&total).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).
			Order("created_at DESC").
			Offset(skip).Limit(take).
			Find(&exchanges).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return exchanges, total, nil
}

func (r *gormExchangeRepository) SearchCandidates(ctx context.Context) ([]domain.SearchCandidate, error) {
	var exchanges []*domain.Exchange
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&exchanges).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		ExchangeID string
		Speaker    string
	}
	err := r.db.WithContext(ctx).Model(&domain.Message{}).
		Select("DISTINCT exchange_id, speaker").
		Where("speaker <> ''").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	speakers := make(map[string][]string, len(exchanges))
	for _, row := range rows {
		speakers[row.ExchangeID] = append(speakers[row.ExchangeID], row.Speaker)
	}

	candidates := make([]domain.SearchCandidate, 0, len(exchanges))
	for _, e := range exchanges {
		candidates = append(candidates, domain.SearchCandidate{Exchange: e, Speakers: speakers[e.ID]})
	}
	return candidates, nil
}

func (r *gormExchangeRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Exchange{}).Count(&total).Error
	return total, err
}
