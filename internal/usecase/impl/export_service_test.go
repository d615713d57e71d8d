package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"
	mockRepo "conectone/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportService_ExportLearners_WalksPages(t *testing.T) {
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	mockAdvertRepo := mockRepo.NewMockAdvertRepository(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockAttendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	service := NewExportService(mockLearnerRepo, mockAdvertRepo, mockListingRepo, mockAttendanceRepo)

	ctx := context.Background()
	schoolID := uuid.New()

	firstPage := make([]*entity.Learner, exportPageSize)
	for i := range firstPage {
		firstPage[i] = &entity.Learner{
			ID:          uuid.New(),
			AdmissionNo: fmt.Sprintf("ADM-%04d", i),
			FirstName:   "Learner",
			LastName:    fmt.Sprintf("Number%d", i),
		}
	}
	secondPage := []*entity.Learner{
		{ID: uuid.New(), AdmissionNo: "ADM-9999", FirstName: "Zanele", LastName: "Dube"},
	}
	total := int64(exportPageSize + 1)

	mockLearnerRepo.On("ListLearnersBySchool", ctx, schoolID,
		repository.PageRequest{Page: 1, PageSize: exportPageSize}).
		Return(repository.Page[*entity.Learner]{
			Items: firstPage, TotalCount: total, CurrentPage: 1, PageSize: exportPageSize,
		}, nil)
	mockLearnerRepo.On("ListLearnersBySchool", ctx, schoolID,
		repository.PageRequest{Page: 2, PageSize: exportPageSize}).
		Return(repository.Page[*entity.Learner]{
			Items: secondPage, TotalCount: total, CurrentPage: 2, PageSize: exportPageSize,
		}, nil)

	doc, name, err := service.ExportLearners(ctx, schoolID)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(doc), "\n"), "\n")
	assert.Len(t, lines, exportPageSize+2, "header plus one line per learner")
	assert.Contains(t, lines[0], "AdmissionNo")
	assert.Contains(t, lines[len(lines)-1], "ADM-9999")
	assert.Equal(t, fmt.Sprintf("learners-%s.csv", time.Now().UTC().Format(time.DateOnly)), name)
}

func TestExportService_ExportAdverts_EmptySet(t *testing.T) {
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	mockAdvertRepo := mockRepo.NewMockAdvertRepository(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockAttendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	service := NewExportService(mockLearnerRepo, mockAdvertRepo, mockListingRepo, mockAttendanceRepo)

	ctx := context.Background()
	mockAdvertRepo.On("ListAdverts", ctx,
		repository.PageRequest{Page: 1, PageSize: exportPageSize}, entity.ReviewStatusApproved).
		Return(repository.Page[*entity.Advert]{CurrentPage: 1, PageSize: exportPageSize}, nil)

	doc, name, err := service.ExportAdverts(ctx, entity.ReviewStatusApproved)
	require.NoError(t, err)
	assert.Empty(t, doc)
	assert.True(t, strings.HasPrefix(name, "adverts-"))
}

func TestExportService_ExportAttendance(t *testing.T) {
	mockLearnerRepo := mockRepo.NewMockLearnerRepository(t)
	mockAdvertRepo := mockRepo.NewMockAdvertRepository(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockAttendanceRepo := mockRepo.NewMockAttendanceRepository(t)
	service := NewExportService(mockLearnerRepo, mockAdvertRepo, mockListingRepo, mockAttendanceRepo)

	ctx := context.Background()
	learnerID := uuid.New()
	day := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)
	records := []*entity.AttendanceRecord{
		{LearnerID: learnerID, Date: day, Status: entity.AttendancePresent},
		{LearnerID: learnerID, Date: day.AddDate(0, 0, 1), Status: entity.AttendanceLate, Note: "bus delay"},
	}

	mockAttendanceRepo.On("FindLearnerHistory", ctx, learnerID,
		time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		truncateToDay(time.Now())).
		Return(records, nil)

	doc, _, err := service.ExportAttendance(ctx, learnerID)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(doc), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Status,Note", lines[0])
	assert.Contains(t, lines[1], "present")
	assert.Contains(t, lines[2], "bus delay")
}
