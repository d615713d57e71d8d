package postgres

import (
	"context"
	"time"

	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// attendanceRepository implements the repository.AttendanceRepository interface.
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository is the constructor for attendanceRepository.
func NewAttendanceRepository(db *gorm.DB) repository.AttendanceRepository {
	return &attendanceRepository{
		db: db,
	}
}

// UpsertRecords stores a batch of register entries, replacing any existing
// record for the same (learner, date).
func (repo *attendanceRepository) UpsertRecords(ctx context.Context, records []*entity.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}

	recordModels := make([]*model.AttendanceRecordModel, 0, len(records))
	for _, record := range records {
		recordModels = append(recordModels, fromAttendanceDomain(record))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "learner_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"class_id", "status", "note", "recorded_by", "updated_at"}),
		}).
		Create(&recordModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert attendance records")
	}

	for i, recordM := range recordModels {
		records[i].ID = recordM.ID
	}

	return nil
}

// FindRegister retrieves the register for a class on a date.
func (repo *attendanceRepository) FindRegister(ctx context.Context, classID uuid.UUID, date time.Time) ([]*entity.AttendanceRecord, error) {
	var recordModels []*model.AttendanceRecordModel

	if err := repo.db.WithContext(ctx).
		Where("class_id = ? AND date = ?", classID, date).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find register")
	}

	records := make([]*entity.AttendanceRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toAttendanceDomain(recordM))
	}

	return records, nil
}

// FindLearnerHistory retrieves a learner's records within [from, to].
func (repo *attendanceRepository) FindLearnerHistory(ctx context.Context, learnerID uuid.UUID, from, to time.Time) ([]*entity.AttendanceRecord, error) {
	var recordModels []*model.AttendanceRecordModel

	if err := repo.db.WithContext(ctx).
		Where("learner_id = ? AND date >= ? AND date <= ?", learnerID, from, to).
		Order("date ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find learner attendance history")
	}

	records := make([]*entity.AttendanceRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toAttendanceDomain(recordM))
	}

	return records, nil
}

// SummarizeLearner aggregates a learner's attendance within [from, to].
func (repo *attendanceRepository) SummarizeLearner(ctx context.Context, learnerID uuid.UUID, from, to time.Time) (*entity.AttendanceSummary, error) {
	type row struct {
		Status string
		Count  int
	}

	var rows []row
	if err := repo.db.WithContext(ctx).
		Model(&model.AttendanceRecordModel{}).
		Select("status, COUNT(*) AS count").
		Where("learner_id = ? AND date >= ? AND date <= ?", learnerID, from, to).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize learner attendance")
	}

	summary := &entity.AttendanceSummary{LearnerID: learnerID}
	for _, r := range rows {
		switch entity.AttendanceStatus(r.Status) {
		case entity.AttendancePresent:
			summary.Present = r.Count
		case entity.AttendanceAbsent:
			summary.Absent = r.Count
		case entity.AttendanceLate:
			summary.Late = r.Count
		}
	}

	return summary, nil
}

// --- Mapper Functions ---

// toAttendanceDomain converts a GORM AttendanceRecordModel to a domain AttendanceRecord entity.
func toAttendanceDomain(data *model.AttendanceRecordModel) *entity.AttendanceRecord {
	if data == nil {
		return nil
	}

	return &entity.AttendanceRecord{
		ID:         data.ID,
		LearnerID:  data.LearnerID,
		ClassID:    data.ClassID,
		Date:       data.Date,
		Status:     entity.AttendanceStatus(data.Status),
		Note:       data.Note,
		RecordedBy: data.RecordedBy,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromAttendanceDomain converts a domain AttendanceRecord entity to a GORM AttendanceRecordModel.
func fromAttendanceDomain(record *entity.AttendanceRecord) *model.AttendanceRecordModel {
	if record == nil {
		return nil
	}

	return &model.AttendanceRecordModel{
		ID:         record.ID,
		LearnerID:  record.LearnerID,
		ClassID:    record.ClassID,
		Date:       record.Date,
		Status:     string(record.Status),
		Note:       record.Note,
		RecordedBy: record.RecordedBy,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}
