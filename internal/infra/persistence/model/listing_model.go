package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyModel is the GORM-specific struct for the 'companies' table.
type CompanyModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(200);not null"`
	RegistrationNo string    `gorm:"type:varchar(100)"`
	Email          string    `gorm:"type:varchar(255)"`
	Phone          string    `gorm:"type:varchar(50)"`
	Website        string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}

// ListingTierModel is the GORM-specific struct for the 'listing_tiers' table.
type ListingTierModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(12,2);not null;default:0"`
	Currency    string    `gorm:"type:varchar(3);not null"`
	MaxImages   int       `gorm:"not null;default:0"`
	MaxVideos   int       `gorm:"not null;default:0"`
	Featured    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ListingTierModel) TableName() string {
	return "listing_tiers"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
// Categories may nest one level via ParentID.
type CategoryModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name     string     `gorm:"type:varchar(100);unique;not null"`
	ParentID *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BusinessListingModel is the GORM-specific struct for the
// 'business_listings' table. Categories are linked through the
// 'listing_categories' join table.
type BusinessListingModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	TierID      uuid.UUID  `gorm:"type:uuid;not null"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text"`
	Email       string     `gorm:"type:varchar(255)"`
	Phone       string     `gorm:"type:varchar(50)"`
	Website     string     `gorm:"type:varchar(255)"`
	AddressLine string     `gorm:"type:varchar(255)"`
	City        string     `gorm:"type:varchar(100)"`
	Province    string     `gorm:"type:varchar(100)"`
	Country     string     `gorm:"type:varchar(100)"`
	ImageID     *uuid.UUID `gorm:"type:uuid"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Categories []CategoryModel `gorm:"many2many:listing_categories;"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessListingModel) TableName() string {
	return "business_listings"
}
