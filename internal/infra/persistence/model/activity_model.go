package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityGroupModel is the GORM-specific struct for the 'activity_groups'
// table. It represents an extracurricular group at a school.
type ActivityGroupModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SchoolID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Description string     `gorm:"type:text"`
	LeadStaffID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityGroupModel) TableName() string {
	return "activity_groups"
}

// ActivityMembershipModel is the GORM-specific struct for the
// 'activity_memberships' join table.
type ActivityMembershipModel struct {
	GroupID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	LearnerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	JoinedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityMembershipModel) TableName() string {
	return "activity_memberships"
}
