package entity

import (
	"time"

	"github.com/google/uuid"
)

// Advert is a paid advertisement placed on the platform. New adverts start
// in ReviewStatusPending and must be approved before they are served.
type Advert struct {
	ID        uuid.UUID    `json:"id"`
	OwnerID   uuid.UUID    `json:"owner_id"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	Placement string       `json:"placement"` // banner, sidebar, featured
	Price     float64      `json:"price"`
	Currency  string       `json:"currency"`
	StartsAt  time.Time    `json:"starts_at"`
	EndsAt    time.Time    `json:"ends_at"`
	ImageID   *uuid.UUID   `json:"image_id,omitempty"`
	Status    ReviewStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Live reports whether the advert should currently be served.
func (a *Advert) Live(now time.Time) bool {
	return a.Status == ReviewStatusApproved &&
		!now.Before(a.StartsAt) && now.Before(a.EndsAt)
}
