package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LearnerModel is the GORM-specific struct for the 'learners' table.
// AdmissionNo is unique per school, enforced by a composite index.
type LearnerModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SchoolID      uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_learners_school_admission"`
	ClassID       *uuid.UUID `gorm:"type:uuid;index"`
	AdmissionNo   string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_learners_school_admission"`
	FirstName     string     `gorm:"type:varchar(100);not null"`
	LastName      string     `gorm:"type:varchar(100);not null"`
	BirthDate     time.Time
	GuardianName  string `gorm:"type:varchar(200)"`
	GuardianPhone string `gorm:"type:varchar(50)"`
	GuardianEmail string `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (LearnerModel) TableName() string {
	return "learners"
}
