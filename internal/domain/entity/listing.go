package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company owns business listings in the directory.
type Company struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Name           string    `json:"name"`
	RegistrationNo string    `json:"registration_no"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Website        string    `json:"website"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ListingTier is a paid directory tier (e.g. basic, premium) that caps what
// a listing may carry.
type ListingTier struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	MaxImages   int       `json:"max_images"`
	MaxVideos   int       `json:"max_videos"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category classifies listings; categories may nest one level via ParentID.
type Category struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// BusinessListing is a directory entry for a company. Listings go through
// the same moderation lifecycle as adverts.
type BusinessListing struct {
	ID          uuid.UUID    `json:"id"`
	CompanyID   uuid.UUID    `json:"company_id"`
	TierID      uuid.UUID    `json:"tier_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Website     string       `json:"website"`
	AddressLine string       `json:"address_line"`
	City        string       `json:"city"`
	Province    string       `json:"province"`
	Country     string       `json:"country"`
	Categories  []Category   `json:"categories,omitempty"`
	ImageID     *uuid.UUID   `json:"image_id,omitempty"`
	Status      ReviewStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
