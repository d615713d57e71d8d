package entity

import (
	"time"

	"github.com/google/uuid"
)

// FileKind classifies an upload.
type FileKind string

const (
	FileKindImage    FileKind = "image"
	FileKindVideo    FileKind = "video"
	FileKindDocument FileKind = "document"
)

// Valid reports whether k is a known file kind.
func (k FileKind) Valid() bool {
	switch k {
	case FileKindImage, FileKindVideo, FileKindDocument:
		return true
	}

	return false
}

// FileUpload is the metadata row for a stored blob. The payload itself lives
// in the blob bucket under StorageKey; EntityType/EntityID attach the upload
// to a domain record (advert image, learner photo, listing document).
type FileUpload struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	EntityType  string    `json:"entity_type"`
	EntityID    uuid.UUID `json:"entity_id"`
	Kind        FileKind  `json:"kind"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	StorageKey  string    `json:"storage_key"`
	Usage       string    `json:"usage"` // avatar, cover, attachment, logo
	CreatedAt   time.Time `json:"created_at"`
}
