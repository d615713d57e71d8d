package entity

import (
	"time"

	"github.com/google/uuid"
)

// DisciplineSeverity grades a disciplinary incident.
type DisciplineSeverity string

const (
	SeverityMinor   DisciplineSeverity = "minor"
	SeveritySerious DisciplineSeverity = "serious"
	SeveritySevere  DisciplineSeverity = "severe"
)

// Valid reports whether s is a known severity.
func (s DisciplineSeverity) Valid() bool {
	switch s {
	case SeverityMinor, SeveritySerious, SeveritySevere:
		return true
	}

	return false
}

// DisciplinaryRecord documents an incident involving a learner and its
// eventual resolution.
type DisciplinaryRecord struct {
	ID             uuid.UUID          `json:"id"`
	LearnerID      uuid.UUID          `json:"learner_id"`
	Category       string             `json:"category"`
	Severity       DisciplineSeverity `json:"severity"`
	Description    string             `json:"description"`
	OccurredAt     time.Time          `json:"occurred_at"`
	RecordedBy     uuid.UUID          `json:"recorded_by"`
	Resolved       bool               `json:"resolved"`
	ResolutionNote string             `json:"resolution_note"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}
