package model

import (
	"time"

	"github.com/google/uuid"
)

// FileUploadModel is the GORM-specific struct for the 'file_uploads' table.
// The blob payload lives in the storage bucket under StorageKey; this row
// only carries metadata and the entity attachment.
type FileUploadModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	EntityType  string    `gorm:"type:varchar(50);not null;index:idx_file_uploads_entity"`
	EntityID    uuid.UUID `gorm:"type:uuid;not null;index:idx_file_uploads_entity"`
	Kind        string    `gorm:"type:varchar(20);not null"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100);not null"`
	Size        int64     `gorm:"not null"`
	StorageKey  string    `gorm:"type:varchar(255);unique;not null"`
	Usage       string    `gorm:"type:varchar(50)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FileUploadModel) TableName() string {
	return "file_uploads"
}
