package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nikhilsahni7/medquery/internal/models"
	"gorm.io/gorm"
)

// HistoryRepository is the append-only log of question/answer exchanges.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, userID uuid.UUID, question, answer, language string) (*models.QueryRecord, error) {
	record := models.QueryRecord{
		UserID:    userID,
		Question:  question,
		Answer:    answer,
		Language:  language,
		Timestamp: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByUser returns the user's records newest first. Records sharing a
// timestamp are ordered by id so the listing is stable.
func (r *HistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.QueryRecord, error) {
	var records []models.QueryRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
