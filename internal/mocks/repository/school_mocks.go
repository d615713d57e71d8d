package repository

import (
	"context"
	"testing"
	"time"

	"conectone/internal/domain/entity"
	"conectone/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSchoolRepository mocks repository.SchoolRepository.
type MockSchoolRepository struct {
	mock.Mock
}

// NewMockSchoolRepository creates a mock bound to the test lifecycle.
func NewMockSchoolRepository(t *testing.T) *MockSchoolRepository {
	m := &MockSchoolRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSchoolRepository) CreateSchool(ctx context.Context, school *entity.School) error {
	return m.Called(ctx, school).Error(0)
}

func (m *MockSchoolRepository) FindSchoolByID(ctx context.Context, id uuid.UUID) (*entity.School, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*entity.School); ok {
		return s, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSchoolRepository) UpdateSchool(ctx context.Context, school *entity.School) error {
	return m.Called(ctx, school).Error(0)
}

func (m *MockSchoolRepository) ListSchools(ctx context.Context, page repository.PageRequest) (repository.Page[*entity.School], error) {
	args := m.Called(ctx, page)

	return args.Get(0).(repository.Page[*entity.School]), args.Error(1)
}

func (m *MockSchoolRepository) DeleteSchool(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockClassRepository mocks repository.ClassRepository.
type MockClassRepository struct {
	mock.Mock
}

// NewMockClassRepository creates a mock bound to the test lifecycle.
func NewMockClassRepository(t *testing.T) *MockClassRepository {
	m := &MockClassRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockClassRepository) CreateClass(ctx context.Context, class *entity.SchoolClass) error {
	return m.Called(ctx, class).Error(0)
}

func (m *MockClassRepository) FindClassByID(ctx context.Context, id uuid.UUID) (*entity.SchoolClass, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*entity.SchoolClass); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockClassRepository) UpdateClass(ctx context.Context, class *entity.SchoolClass) error {
	return m.Called(ctx, class).Error(0)
}

func (m *MockClassRepository) ListClassesBySchool(ctx context.Context, schoolID uuid.UUID) ([]*entity.SchoolClass, error) {
	args := m.Called(ctx, schoolID)
	if c, ok := args.Get(0).([]*entity.SchoolClass); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockClassRepository) CountLearnersInClass(ctx context.Context, classID uuid.UUID) (int64, error) {
	args := m.Called(ctx, classID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClassRepository) DeleteClass(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockStaffRepository mocks repository.StaffRepository.
type MockStaffRepository struct {
	mock.Mock
}

// NewMockStaffRepository creates a mock bound to the test lifecycle.
func NewMockStaffRepository(t *testing.T) *MockStaffRepository {
	m := &MockStaffRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStaffRepository) CreateStaff(ctx context.Context, staff *entity.StaffMember) error {
	return m.Called(ctx, staff).Error(0)
}

func (m *MockStaffRepository) FindStaffByID(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*entity.StaffMember); ok {
		return s, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStaffRepository) UpdateStaff(ctx context.Context, staff *entity.StaffMember) error {
	return m.Called(ctx, staff).Error(0)
}

func (m *MockStaffRepository) ListStaffBySchool(ctx context.Context, schoolID uuid.UUID, page repository.PageRequest) (repository.Page[*entity.StaffMember], error) {
	args := m.Called(ctx, schoolID, page)

	return args.Get(0).(repository.Page[*entity.StaffMember]), args.Error(1)
}

func (m *MockStaffRepository) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockLearnerRepository mocks repository.LearnerRepository.
type MockLearnerRepository struct {
	mock.Mock
}

// NewMockLearnerRepository creates a mock bound to the test lifecycle.
func NewMockLearnerRepository(t *testing.T) *MockLearnerRepository {
	m := &MockLearnerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLearnerRepository) CreateLearner(ctx context.Context, learner *entity.Learner) error {
	return m.Called(ctx, learner).Error(0)
}

func (m *MockLearnerRepository) FindLearnerByID(ctx context.Context, id uuid.UUID) (*entity.Learner, error) {
	args := m.Called(ctx, id)
	if l, ok := args.Get(0).(*entity.Learner); ok {
		return l, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLearnerRepository) UpdateLearner(ctx context.Context, learner *entity.Learner) error {
	return m.Called(ctx, learner).Error(0)
}

func (m *MockLearnerRepository) ListLearnersBySchool(ctx context.Context, schoolID uuid.UUID, page repository.PageRequest) (repository.Page[*entity.Learner], error) {
	args := m.Called(ctx, schoolID, page)

	return args.Get(0).(repository.Page[*entity.Learner]), args.Error(1)
}

func (m *MockLearnerRepository) ListLearnersByClass(ctx context.Context, classID uuid.UUID) ([]*entity.Learner, error) {
	args := m.Called(ctx, classID)
	if l, ok := args.Get(0).([]*entity.Learner); ok {
		return l, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLearnerRepository) DeleteLearner(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockAttendanceRepository mocks repository.AttendanceRepository.
type MockAttendanceRepository struct {
	mock.Mock
}

// NewMockAttendanceRepository creates a mock bound to the test lifecycle.
func NewMockAttendanceRepository(t *testing.T) *MockAttendanceRepository {
	m := &MockAttendanceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAttendanceRepository) UpsertRecords(ctx context.Context, records []*entity.AttendanceRecord) error {
	return m.Called(ctx, records).Error(0)
}

func (m *MockAttendanceRepository) FindRegister(ctx context.Context, classID uuid.UUID, date time.Time) ([]*entity.AttendanceRecord, error) {
	args := m.Called(ctx, classID, date)
	if r, ok := args.Get(0).([]*entity.AttendanceRecord); ok {
		return r, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAttendanceRepository) FindLearnerHistory(ctx context.Context, learnerID uuid.UUID, from, to time.Time) ([]*entity.AttendanceRecord, error) {
	args := m.Called(ctx, learnerID, from, to)
	if r, ok := args.Get(0).([]*entity.AttendanceRecord); ok {
		return r, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAttendanceRepository) SummarizeLearner(ctx context.Context, learnerID uuid.UUID, from, to time.Time) (*entity.AttendanceSummary, error) {
	args := m.Called(ctx, learnerID, from, to)
	if s, ok := args.Get(0).(*entity.AttendanceSummary); ok {
		return s, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockDisciplineRepository mocks repository.DisciplineRepository.
type MockDisciplineRepository struct {
	mock.Mock
}

// NewMockDisciplineRepository creates a mock bound to the test lifecycle.
func NewMockDisciplineRepository(t *testing.T) *MockDisciplineRepository {
	m := &MockDisciplineRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDisciplineRepository) CreateRecord(ctx context.Context, record *entity.DisciplinaryRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockDisciplineRepository) FindRecordByID(ctx context.Context, id uuid.UUID) (*entity.DisciplinaryRecord, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*entity.DisciplinaryRecord); ok {
		return r, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDisciplineRepository) UpdateRecord(ctx context.Context, record *entity.DisciplinaryRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockDisciplineRepository) ListRecordsByLearner(ctx context.Context, learnerID uuid.UUID) ([]*entity.DisciplinaryRecord, error) {
	args := m.Called(ctx, learnerID)
	if r, ok := args.Get(0).([]*entity.DisciplinaryRecord); ok {
		return r, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDisciplineRepository) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockActivityRepository mocks repository.ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

// NewMockActivityRepository creates a mock bound to the test lifecycle.
func NewMockActivityRepository(t *testing.T) *MockActivityRepository {
	m := &MockActivityRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockActivityRepository) CreateGroup(ctx context.Context, group *entity.ActivityGroup) error {
	return m.Called(ctx, group).Error(0)
}

func (m *MockActivityRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.ActivityGroup, error) {
	args := m.Called(ctx, id)
	if g, ok := args.Get(0).(*entity.ActivityGroup); ok {
		return g, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockActivityRepository) UpdateGroup(ctx context.Context, group *entity.ActivityGroup) error {
	return m.Called(ctx, group).Error(0)
}

func (m *MockActivityRepository) ListGroupsBySchool(ctx context.Context, schoolID uuid.UUID) ([]*entity.ActivityGroup, error) {
	args := m.Called(ctx, schoolID)
	if g, ok := args.Get(0).([]*entity.ActivityGroup); ok {
		return g, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockActivityRepository) AddMember(ctx context.Context, groupID, learnerID uuid.UUID) error {
	return m.Called(ctx, groupID, learnerID).Error(0)
}

func (m *MockActivityRepository) RemoveMember(ctx context.Context, groupID, learnerID uuid.UUID) error {
	return m.Called(ctx, groupID, learnerID).Error(0)
}

func (m *MockActivityRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*entity.Learner, error) {
	args := m.Called(ctx, groupID)
	if l, ok := args.Get(0).([]*entity.Learner); ok {
		return l, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockActivityRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
