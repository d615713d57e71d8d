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
)

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// CreateGroup persists a new activity group.
func (repo *activityRepository) CreateGroup(ctx context.Context, group *entity.ActivityGroup) error {
	groupM := fromActivityGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSchoolNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity group")
	}

	group.ID = groupM.ID
	group.CreatedAt = groupM.CreatedAt
	group.UpdatedAt = groupM.UpdatedAt

	return nil
}

// FindGroupByID retrieves a group by its unique ID.
func (repo *activityRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.ActivityGroup, error) {
	var groupM model.ActivityGroupModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity group by ID")
	}

	return toActivityGroupDomain(&groupM), nil
}

// UpdateGroup persists changes to an existing group.
func (repo *activityRepository) UpdateGroup(ctx context.Context, group *entity.ActivityGroup) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivityGroupModel{}).
		Where("id = ?", group.ID).
		Updates(map[string]any{
			"name":          group.Name,
			"description":   group.Description,
			"lead_staff_id": group.LeadStaffID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update activity group")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActivityGroupNotFound
	}

	return nil
}

// ListGroupsBySchool retrieves all activity groups for a school.
func (repo *activityRepository) ListGroupsBySchool(ctx context.Context, schoolID uuid.UUID) ([]*entity.ActivityGroup, error) {
	var groupModels []*model.ActivityGroupModel

	if err := repo.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("name ASC").
		Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activity groups by school")
	}

	groups := make([]*entity.ActivityGroup, 0, len(groupModels))
	for _, groupM := range groupModels {
		groups = append(groups, toActivityGroupDomain(groupM))
	}

	return groups, nil
}

// AddMember enrolls a learner into a group.
func (repo *activityRepository) AddMember(ctx context.Context, groupID, learnerID uuid.UUID) error {
	membership := &model.ActivityMembershipModel{
		GroupID:   groupID,
		LearnerID: learnerID,
		JoinedAt:  time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).Create(membership).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMembership
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrActivityGroupNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add activity member")
	}

	return nil
}

// RemoveMember removes a learner from a group.
func (repo *activityRepository) RemoveMember(ctx context.Context, groupID, learnerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("group_id = ? AND learner_id = ?", groupID, learnerID).
		Delete(&model.ActivityMembershipModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove activity member")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActivityGroupNotFound
	}

	return nil
}

// ListMembers retrieves the learners enrolled in a group.
func (repo *activityRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*entity.Learner, error) {
	var learnerModels []*model.LearnerModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN activity_memberships am ON am.learner_id = learners.id").
		Where("am.group_id = ?", groupID).
		Order("learners.last_name ASC, learners.first_name ASC").
		Find(&learnerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activity members")
	}

	learners := make([]*entity.Learner, 0, len(learnerModels))
	for _, learnerM := range learnerModels {
		learners = append(learners, toLearnerDomain(learnerM))
	}

	return learners, nil
}

// DeleteGroup removes a group and its memberships (soft delete for the group).
func (repo *activityRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ActivityGroupModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete activity group")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActivityGroupNotFound
	}

	if err := repo.db.WithContext(ctx).
		Where("group_id = ?", id).
		Delete(&model.ActivityMembershipModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete activity memberships")
	}

	return nil
}

// --- Mapper Functions ---

// toActivityGroupDomain converts a GORM ActivityGroupModel to a domain ActivityGroup entity.
func toActivityGroupDomain(data *model.ActivityGroupModel) *entity.ActivityGroup {
	if data == nil {
		return nil
	}

	return &entity.ActivityGroup{
		ID:          data.ID,
		SchoolID:    data.SchoolID,
		Name:        data.Name,
		Description: data.Description,
		LeadStaffID: data.LeadStaffID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromActivityGroupDomain converts a domain ActivityGroup entity to a GORM ActivityGroupModel.
func fromActivityGroupDomain(group *entity.ActivityGroup) *model.ActivityGroupModel {
	if group == nil {
		return nil
	}

	return &model.ActivityGroupModel{
		ID:          group.ID,
		SchoolID:    group.SchoolID,
		Name:        group.Name,
		Description: group.Description,
		LeadStaffID: group.LeadStaffID,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}
