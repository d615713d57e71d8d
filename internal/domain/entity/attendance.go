package entity

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus is the per-learner outcome on a register.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Valid reports whether s is a known attendance status.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}

	return false
}

// AttendanceRecord is one learner's entry on a class register for a day.
// At most one record exists per (learner, date); re-capturing a register
// updates the existing records.
type AttendanceRecord struct {
	ID         uuid.UUID        `json:"id"`
	LearnerID  uuid.UUID        `json:"learner_id"`
	ClassID    uuid.UUID        `json:"class_id"`
	Date       time.Time        `json:"date"` // date-only, truncated to UTC midnight
	Status     AttendanceStatus `json:"status"`
	Note       string           `json:"note"`
	RecordedBy uuid.UUID        `json:"recorded_by"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// AttendanceSummary aggregates a learner's attendance over a date range.
type AttendanceSummary struct {
	LearnerID uuid.UUID `json:"learner_id"`
	Present   int       `json:"present"`
	Absent    int       `json:"absent"`
	Late      int       `json:"late"`
}
