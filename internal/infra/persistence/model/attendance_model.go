package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecordModel is the GORM-specific struct for the
// 'attendance_records' table. At most one record exists per (learner, date),
// enforced by a composite unique index; re-capturing a register updates in
// place.
type AttendanceRecordModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LearnerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_learner_date"`
	ClassID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_learner_date"`
	Status     string    `gorm:"type:varchar(20);not null"`
	Note       string    `gorm:"type:text"`
	RecordedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}
