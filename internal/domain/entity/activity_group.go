package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityGroup is an extracurricular group at a school (sport team, choir,
// chess club). Learners are enrolled as members; a staff member leads.
type ActivityGroup struct {
	ID          uuid.UUID  `json:"id"`
	SchoolID    uuid.UUID  `json:"school_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	LeadStaffID *uuid.UUID `json:"lead_staff_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ActivityMembership links a learner to an activity group.
type ActivityMembership struct {
	GroupID   uuid.UUID `json:"group_id"`
	LearnerID uuid.UUID `json:"learner_id"`
	JoinedAt  time.Time `json:"joined_at"`
}
