package entity

import (
	"time"

	"github.com/google/uuid"
)

// Affiliate is a referral partner. The Code appears in referral links and in
// QR codes handed out by the affiliate; commissions accrue to Balance.
type Affiliate struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Code           string    `json:"code"` // unique, embedded in referral links
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	CommissionRate float64   `json:"commission_rate"` // fraction, e.g. 0.05
	Balance        float64   `json:"balance"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
