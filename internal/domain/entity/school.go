package entity

import (
	"time"

	"github.com/google/uuid"
)

// School is a tenant of the school-administration vertical.
type School struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SchoolClass is a class group within a school for a given academic year.
type SchoolClass struct {
	ID        uuid.UUID  `json:"id"`
	SchoolID  uuid.UUID  `json:"school_id"`
	Name      string     `json:"name"`
	Grade     int        `json:"grade"`
	Year      int        `json:"year"`
	Capacity  int        `json:"capacity"`
	StaffID   *uuid.UUID `json:"staff_id,omitempty"` // class teacher, if assigned
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// StaffMember is a teacher or other staff member employed by a school.
type StaffMember struct {
	ID        uuid.UUID `json:"id"`
	SchoolID  uuid.UUID `json:"school_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
