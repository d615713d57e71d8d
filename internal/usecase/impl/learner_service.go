package impl

import (
	"context"
	"time"

	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	"conectone/internal/domain/repository"
	"conectone/internal/errors"
	"conectone/internal/usecase"

	"github.com/google/uuid"
)

// learnerService implements the LearnerUsecase interface. Class membership
// changes go through checkClassCapacity so a class never exceeds its
// configured size; capacity-checked writes run inside a transaction so
// concurrent enrollments cannot overfill a class.
type learnerService struct {
	learnerRepo repository.LearnerRepository
	txManager   repository.TransactionManager
}

// NewLearnerService creates a new learner service instance.
func NewLearnerService(
	learnerRepo repository.LearnerRepository,
	txManager repository.TransactionManager,
) usecase.LearnerUsecase {
	return &learnerService{
		learnerRepo: learnerRepo,
		txManager:   txManager,
	}
}

// EnrollLearner registers a learner at a school. If a class is given its
// capacity is enforced.
func (s *learnerService) EnrollLearner(ctx context.Context, input *usecase.LearnerInput) (*entity.Learner, error) {
	now := time.Now().UTC()
	learner := &entity.Learner{
		ID:            uuid.New(),
		SchoolID:      input.SchoolID,
		ClassID:       input.ClassID,
		AdmissionNo:   input.AdmissionNo,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		BirthDate:     input.BirthDate,
		GuardianName:  input.GuardianName,
		GuardianPhone: input.GuardianPhone,
		GuardianEmail: input.GuardianEmail,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if input.ClassID == nil {
		if err := createLearner(ctx, s.learnerRepo, learner); err != nil {
			return nil, err
		}

		return learner, nil
	}

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := checkClassCapacity(ctx, repos.NewClassRepository(), *input.ClassID); err != nil {
			return err
		}

		return createLearner(ctx, repos.NewLearnerRepository(), learner)
	})
	if err != nil {
		return nil, err
	}

	return learner, nil
}

// GetLearner retrieves a learner by ID.
func (s *learnerService) GetLearner(ctx context.Context, id uuid.UUID) (*entity.Learner, error) {
	learner, err := s.learnerRepo.FindLearnerByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLearnerNotFound) {
			return nil, domainerrors.ErrLearnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find learner by id")
	}

	return learner, nil
}

// UpdateLearner persists changes to a learner, enforcing class capacity when
// the learner moves class.
func (s *learnerService) UpdateLearner(ctx context.Context, id uuid.UUID, input *usecase.LearnerInput) (*entity.Learner, error) {
	learner, err := s.GetLearner(ctx, id)
	if err != nil {
		return nil, err
	}

	movingClass := input.ClassID != nil &&
		(learner.ClassID == nil || *learner.ClassID != *input.ClassID)

	learner.ClassID = input.ClassID
	learner.AdmissionNo = input.AdmissionNo
	learner.FirstName = input.FirstName
	learner.LastName = input.LastName
	learner.BirthDate = input.BirthDate
	learner.GuardianName = input.GuardianName
	learner.GuardianPhone = input.GuardianPhone
	learner.GuardianEmail = input.GuardianEmail
	learner.UpdatedAt = time.Now().UTC()

	if !movingClass {
		if err := updateLearner(ctx, s.learnerRepo, learner); err != nil {
			return nil, err
		}

		return learner, nil
	}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := checkClassCapacity(ctx, repos.NewClassRepository(), *input.ClassID); err != nil {
			return err
		}

		return updateLearner(ctx, repos.NewLearnerRepository(), learner)
	})
	if err != nil {
		return nil, err
	}

	return learner, nil
}

// AssignToClass moves a learner into a class, enforcing its capacity.
func (s *learnerService) AssignToClass(ctx context.Context, learnerID, classID uuid.UUID) error {
	learner, err := s.GetLearner(ctx, learnerID)
	if err != nil {
		return err
	}

	if learner.ClassID != nil && *learner.ClassID == classID {
		return nil
	}

	learner.ClassID = &classID
	learner.UpdatedAt = time.Now().UTC()

	return s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := checkClassCapacity(ctx, repos.NewClassRepository(), classID); err != nil {
			return err
		}

		if err := repos.NewLearnerRepository().UpdateLearner(ctx, learner); err != nil {
			return errors.Wrap(err, "failed to assign learner to class")
		}

		return nil
	})
}

// ListLearners retrieves a page of a school's learners.
func (s *learnerService) ListLearners(ctx context.Context, schoolID uuid.UUID, query usecase.PageQuery) (repository.Page[*entity.Learner], error) {
	page, err := s.learnerRepo.ListLearnersBySchool(ctx, schoolID, query.PageRequest())
	if err != nil {
		return repository.Page[*entity.Learner]{}, errors.Wrap(err, "failed to list learners")
	}

	return page, nil
}

// ListLearnersByClass retrieves all learners enrolled in a class.
func (s *learnerService) ListLearnersByClass(ctx context.Context, classID uuid.UUID) ([]*entity.Learner, error) {
	learners, err := s.learnerRepo.ListLearnersByClass(ctx, classID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list learners by class")
	}

	return learners, nil
}

// DeleteLearner removes a learner.
func (s *learnerService) DeleteLearner(ctx context.Context, id uuid.UUID) error {
	if err := s.learnerRepo.DeleteLearner(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLearnerNotFound) {
			return domainerrors.ErrLearnerNotFound
		}

		return errors.Wrap(err, "failed to delete learner")
	}

	return nil
}

// createLearner inserts a learner, mapping the duplicate admission number
// constraint to its domain error.
func createLearner(ctx context.Context, learnerRepo repository.LearnerRepository, learner *entity.Learner) error {
	if err := learnerRepo.CreateLearner(ctx, learner); err != nil {
		if errors.Is(err, repository.ErrDuplicateAdmissionNo) {
			return domainerrors.ErrAdmissionNoTaken
		}

		return errors.Wrap(err, "failed to create learner")
	}

	return nil
}

// updateLearner persists a learner, mapping the duplicate admission number
// constraint to its domain error.
func updateLearner(ctx context.Context, learnerRepo repository.LearnerRepository, learner *entity.Learner) error {
	if err := learnerRepo.UpdateLearner(ctx, learner); err != nil {
		if errors.Is(err, repository.ErrDuplicateAdmissionNo) {
			return domainerrors.ErrAdmissionNoTaken
		}

		return errors.Wrap(err, "failed to update learner")
	}

	return nil
}

// checkClassCapacity verifies the class exists and has room for one more
// learner. A zero capacity means unlimited.
func checkClassCapacity(ctx context.Context, classRepo repository.ClassRepository, classID uuid.UUID) error {
	class, err := classRepo.FindClassByID(ctx, classID)
	if err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return domainerrors.ErrClassNotFound
		}

		return errors.Wrap(err, "failed to find class by id")
	}

	if class.Capacity <= 0 {
		return nil
	}

	enrolled, err := classRepo.CountLearnersInClass(ctx, classID)
	if err != nil {
		return errors.Wrap(err, "failed to count learners in class")
	}

	if enrolled >= int64(class.Capacity) {
		return domainerrors.ErrClassFull
	}

	return nil
}
