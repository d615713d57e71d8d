package impl

import (
	"context"
	"fmt"
	"time"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"
	"conectone/internal/errors"
	"conectone/internal/export"
	"conectone/internal/usecase"

	"github.com/google/uuid"
)

// exportPageSize is the repository page size used when walking full result
// sets for export.
const exportPageSize = 200

// exportService implements the ExportUsecase interface. Each export walks
// the repository page by page, maps entities onto flat rows and renders
// them with the delimited-text mapper.
type exportService struct {
	learnerRepo    repository.LearnerRepository
	advertRepo     repository.AdvertRepository
	listingRepo    repository.ListingRepository
	attendanceRepo repository.AttendanceRepository
}

// NewExportService creates a new export service instance.
func NewExportService(
	learnerRepo repository.LearnerRepository,
	advertRepo repository.AdvertRepository,
	listingRepo repository.ListingRepository,
	attendanceRepo repository.AttendanceRepository,
) usecase.ExportUsecase {
	return &exportService{
		learnerRepo:    learnerRepo,
		advertRepo:     advertRepo,
		listingRepo:    listingRepo,
		attendanceRepo: attendanceRepo,
	}
}

type learnerRow struct {
	AdmissionNo   string
	FirstName     string
	LastName      string
	BirthDate     time.Time
	GuardianName  string
	GuardianPhone string
	GuardianEmail string
}

type advertRow struct {
	ID        uuid.UUID
	Title     string
	Placement string
	Price     float64
	Currency  string
	StartsAt  time.Time
	EndsAt    time.Time
	Status    entity.ReviewStatus
}

type listingRow struct {
	ID       uuid.UUID
	Title    string
	Email    string
	Phone    string
	City     string
	Province string
	Country  string
	Status   entity.ReviewStatus
}

type attendanceRow struct {
	Date   time.Time
	Status entity.AttendanceStatus
	Note   string
}

// ExportLearners renders a school's learner roll.
func (s *exportService) ExportLearners(ctx context.Context, schoolID uuid.UUID) ([]byte, string, error) {
	var rows []learnerRow
	for page := 1; ; page++ {
		result, err := s.learnerRepo.ListLearnersBySchool(ctx, schoolID, repository.PageRequest{
			Page:     page,
			PageSize: exportPageSize,
		})
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to list learners for export")
		}

		for _, l := range result.Items {
			rows = append(rows, learnerRow{
				AdmissionNo:   l.AdmissionNo,
				FirstName:     l.FirstName,
				LastName:      l.LastName,
				BirthDate:     l.BirthDate,
				GuardianName:  l.GuardianName,
				GuardianPhone: l.GuardianPhone,
				GuardianEmail: l.GuardianEmail,
			})
		}

		if page >= result.TotalPages() {
			break
		}
	}

	doc, err := export.Document(rows)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to render learner export")
	}

	return doc, exportFileName("learners"), nil
}

// ExportAdverts renders adverts filtered by review status.
func (s *exportService) ExportAdverts(ctx context.Context, status entity.ReviewStatus) ([]byte, string, error) {
	var rows []advertRow
	for page := 1; ; page++ {
		result, err := s.advertRepo.ListAdverts(ctx, repository.PageRequest{
			Page:     page,
			PageSize: exportPageSize,
		}, status)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to list adverts for export")
		}

		for _, a := range result.Items {
			rows = append(rows, advertRow{
				ID:        a.ID,
				Title:     a.Title,
				Placement: a.Placement,
				Price:     a.Price,
				Currency:  a.Currency,
				StartsAt:  a.StartsAt,
				EndsAt:    a.EndsAt,
				Status:    a.Status,
			})
		}

		if page >= result.TotalPages() {
			break
		}
	}

	doc, err := export.Document(rows)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to render advert export")
	}

	return doc, exportFileName("adverts"), nil
}

// ExportListings renders business listings filtered by review status.
func (s *exportService) ExportListings(ctx context.Context, status entity.ReviewStatus) ([]byte, string, error) {
	var rows []listingRow
	for page := 1; ; page++ {
		result, err := s.listingRepo.ListListings(ctx, repository.PageRequest{
			Page:     page,
			PageSize: exportPageSize,
		}, status)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to list listings for export")
		}

		for _, l := range result.Items {
			rows = append(rows, listingRow{
				ID:       l.ID,
				Title:    l.Title,
				Email:    l.Email,
				Phone:    l.Phone,
				City:     l.City,
				Province: l.Province,
				Country:  l.Country,
				Status:   l.Status,
			})
		}

		if page >= result.TotalPages() {
			break
		}
	}

	doc, err := export.Document(rows)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to render listing export")
	}

	return doc, exportFileName("listings"), nil
}

// ExportAttendance renders a learner's full attendance history.
func (s *exportService) ExportAttendance(ctx context.Context, learnerID uuid.UUID) ([]byte, string, error) {
	from := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := truncateToDay(time.Now())

	records, err := s.attendanceRepo.FindLearnerHistory(ctx, learnerID, from, to)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to list attendance for export")
	}

	rows := make([]attendanceRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, attendanceRow{
			Date:   r.Date,
			Status: r.Status,
			Note:   r.Note,
		})
	}

	doc, err := export.Document(rows)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to render attendance export")
	}

	return doc, exportFileName("attendance"), nil
}

func exportFileName(prefix string) string {
	return fmt.Sprintf("%s-%s.csv", prefix, time.Now().UTC().Format(time.DateOnly))
}
