package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageModel is the GORM-specific struct for the 'messages' table.
// It represents a direct message between two platform users.
type MessageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Subject     string    `gorm:"type:varchar(200)"`
	Body        string    `gorm:"type:text;not null"`
	IsRead      bool      `gorm:"not null;default:false"`
	SentAt      time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
