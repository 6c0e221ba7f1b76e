package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/domain"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// gormSummaryRepository implements SummaryRepository using GORM
type gormSummaryRepository struct {
	db *gorm.DB
}

// NewGormSummaryRepository creates a new GORM-based SummaryRepository
func NewGormSummaryRepository(db *gorm.DB) SummaryRepository {
	return &gormSummaryRepository{db: db}
}

func (r *gormSummaryRepository) Create(ctx context.Context, summary *domain.Summary) error {
	if summary.ID == "" {
		summary.ID = uuid.New().String()
	}
	now := time.Now()
	summary.CreatedAt = now
	summary.UpdatedAt = now

	err := r.db.WithContext(ctx).Create(summary).Error
	if isUniqueViolation(err) {
		return fmt.Errorf("summary for exchange %s already exists: %w", summary.ExchangeID, apperror.ErrConflict)
	}
	return err
}

func (r *gormSummaryRepository) FindByIDForUser(ctx context.Context, id, userID string) (*domain.Summary, error) {
	var summary domain.Summary
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

func (r *gormSummaryRepository) FindByUserAndExchange(ctx context.Context, userID, exchangeID string) (*domain.Summary, error) {
	var summary domain.Summary
	err := r.db.WithContext(ctx).Where("user_id = ? AND exchange_id = ?", userID, exchangeID).First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

func (r *gormSummaryRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Summary, error) {
	var summaries []*domain.Summary
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Find(&summaries).Error
	return summaries, err
}

func (r *gormSummaryRepository) UpdateContent(ctx context.Context, id string, content []byte) error {
	result := r.db.WithContext(ctx).Model(&domain.Summary{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"content":    datatypes.JSON(content),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("summary %s: %w", id, apperror.ErrNotFound)
	}
	return nil
}

// isUniqueViolation recognizes duplicate keys whether or not the dialector
// translated the driver error.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
