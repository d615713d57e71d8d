package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdvertModel is the GORM-specific struct for the 'adverts' table.
// It represents a paid advertisement awaiting or past moderation.
type AdvertModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title     string     `gorm:"type:varchar(200);not null"`
	Body      string     `gorm:"type:text"`
	Placement string     `gorm:"type:varchar(50);not null"`
	Price     float64    `gorm:"type:decimal(12,2);not null;default:0"`
	Currency  string     `gorm:"type:varchar(3);not null"`
	StartsAt  time.Time  `gorm:"not null"`
	EndsAt    time.Time  `gorm:"not null"`
	ImageID   *uuid.UUID `gorm:"type:uuid"`
	Status    string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AdvertModel) TableName() string {
	return "adverts"
}
