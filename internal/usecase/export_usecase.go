package usecase

import (
	"context"

	"conectone/internal/domain/entity"

	"github.com/google/uuid"
)

// ExportUsecase defines the interface for delimited-text exports. Each
// operation returns the rendered document and a suggested file name.
type ExportUsecase interface {
	// ExportLearners renders a school's learner roll.
	ExportLearners(ctx context.Context, schoolID uuid.UUID) ([]byte, string, error)

	// ExportAdverts renders adverts filtered by review status (empty status
	// means all).
	ExportAdverts(ctx context.Context, status entity.ReviewStatus) ([]byte, string, error)

	// ExportListings renders business listings filtered by review status.
	ExportListings(ctx context.Context, status entity.ReviewStatus) ([]byte, string, error)

	// ExportAttendance renders a learner's attendance history.
	ExportAttendance(ctx context.Context, learnerID uuid.UUID) ([]byte, string, error)
}
