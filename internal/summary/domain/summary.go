package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Summary is one user's summary of one exchange. (user_id, exchange_id) is
// unique: a second summary for the same pair is a conflict.
type Summary struct {
	ID         string         `json:"id" gorm:"primaryKey"`
	UserID     string         `json:"userId" gorm:"uniqueIndex:idx_summary_user_exchange;not null"`
	ExchangeID string         `json:"exchangeId" gorm:"uniqueIndex:idx_summary_user_exchange;index;not null"`
	Content    datatypes.JSON `json:"content" gorm:"not null"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Summary) TableName() string {
	return "summaries"
}
