package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AffiliateModel is the GORM-specific struct for the 'affiliates' table.
// It represents a referral partner and their accrued commission balance.
type AffiliateModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Code           string    `gorm:"type:varchar(50);unique;not null"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(50)"`
	CommissionRate float64   `gorm:"type:decimal(5,4);not null;default:0.05"`
	Balance        float64   `gorm:"type:decimal(12,2);not null;default:0"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AffiliateModel) TableName() string {
	return "affiliates"
}
