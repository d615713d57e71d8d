package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DisciplinaryRecordModel is the GORM-specific struct for the
// 'disciplinary_records' table.
type DisciplinaryRecordModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LearnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Category       string    `gorm:"type:varchar(100);not null"`
	Severity       string    `gorm:"type:varchar(20);not null"`
	Description    string    `gorm:"type:text;not null"`
	OccurredAt     time.Time `gorm:"not null"`
	RecordedBy     uuid.UUID `gorm:"type:uuid;not null"`
	Resolved       bool      `gorm:"not null;default:false"`
	ResolutionNote string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DisciplinaryRecordModel) TableName() string {
	return "disciplinary_records"
}
