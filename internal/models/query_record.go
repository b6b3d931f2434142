package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QueryRecord is one question/answer exchange owned by a user. Records are
// append-only: there is no update or delete path anywhere in the app.
type QueryRecord struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"` // foreign key
	Question  string    `json:"question" gorm:"type:text;not null"`     // original-language text
	Answer    string    `json:"answer" gorm:"type:text;not null"`       // text in the selected language
	Language  string    `json:"language" gorm:"size:10;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"index;not null"`
}

func (q *QueryRecord) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
