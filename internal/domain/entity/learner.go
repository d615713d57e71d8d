package entity

import (
	"time"

	"github.com/google/uuid"
)

// Learner is a pupil enrolled at a school. AdmissionNo is unique within the
// school and appears on registers and exports.
type Learner struct {
	ID            uuid.UUID  `json:"id"`
	SchoolID      uuid.UUID  `json:"school_id"`
	ClassID       *uuid.UUID `json:"class_id,omitempty"`
	AdmissionNo   string     `json:"admission_no"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	BirthDate     time.Time  `json:"birth_date"`
	GuardianName  string     `json:"guardian_name"`
	GuardianPhone string     `json:"guardian_phone"`
	GuardianEmail string     `json:"guardian_email"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
