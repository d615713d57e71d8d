package impl

import (
	"context"
	"testing"
	"time"

	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	mockRepo "conectone/internal/mocks/repository"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvertService_CreateAdvert_StartsPending(t *testing.T) {
	mockAdRepo := mockRepo.NewMockAdvertRepository(t)
	service := NewAdvertService(mockAdRepo)

	ctx := context.Background()
	mockAdRepo.On("CreateAdvert", ctx, mock.MatchedBy(func(a *entity.Advert) bool {
		return a.Status == entity.ReviewStatusPending
	})).Return(nil)

	advert, err := service.CreateAdvert(ctx, &usecase.AdvertInput{
		OwnerID:  uuid.New(),
		Title:    "Spring sale",
		StartsAt: time.Now(),
		EndsAt:   time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusPending, advert.Status)
}

func TestAdvertService_UpdateAdvert_ResetsToPending(t *testing.T) {
	mockAdRepo := mockRepo.NewMockAdvertRepository(t)
	service := NewAdvertService(mockAdRepo)

	ctx := context.Background()
	advert := &entity.Advert{ID: uuid.New(), Title: "Old", Status: entity.ReviewStatusApproved}

	mockAdRepo.On("FindAdvertByID", ctx, advert.ID).Return(advert, nil)
	mockAdRepo.On("UpdateAdvert", ctx, mock.MatchedBy(func(a *entity.Advert) bool {
		return a.Status == entity.ReviewStatusPending && a.Title == "New"
	})).Return(nil)

	updated, err := service.UpdateAdvert(ctx, advert.ID, &usecase.AdvertInput{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusPending, updated.Status)
}

func TestAdvertService_ReviewAdvert_Transitions(t *testing.T) {
	cases := []struct {
		name    string
		from    entity.ReviewStatus
		to      entity.ReviewStatus
		allowed bool
	}{
		{"pending to approved", entity.ReviewStatusPending, entity.ReviewStatusApproved, true},
		{"pending to rejected", entity.ReviewStatusPending, entity.ReviewStatusRejected, true},
		{"rejected resubmit", entity.ReviewStatusRejected, entity.ReviewStatusPending, true},
		{"approved is terminal", entity.ReviewStatusApproved, entity.ReviewStatusRejected, false},
		{"approved cannot re-pend", entity.ReviewStatusApproved, entity.ReviewStatusPending, false},
		{"rejected cannot approve", entity.ReviewStatusRejected, entity.ReviewStatusApproved, false},
		{"pending cannot self-loop", entity.ReviewStatusPending, entity.ReviewStatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockAdRepo := mockRepo.NewMockAdvertRepository(t)
			service := NewAdvertService(mockAdRepo)

			ctx := context.Background()
			advert := &entity.Advert{ID: uuid.New(), Status: tc.from}
			mockAdRepo.On("FindAdvertByID", ctx, advert.ID).Return(advert, nil)

			if tc.allowed {
				mockAdRepo.On("UpdateAdvertStatus", ctx, advert.ID, tc.to).Return(nil)
			}

			reviewed, err := service.ReviewAdvert(ctx, advert.ID, tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, reviewed.Status)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), domainerrors.ErrInvalidReviewTransition.Message())
		})
	}
}

func TestAdvertService_ReviewAdvert_UnknownStatus(t *testing.T) {
	mockAdRepo := mockRepo.NewMockAdvertRepository(t)
	service := NewAdvertService(mockAdRepo)

	_, err := service.ReviewAdvert(context.Background(), uuid.New(), entity.ReviewStatus("archived"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domainerrors.ErrValidationFailed.Message())
}

func TestAdvertService_AttachImage(t *testing.T) {
	mockAdRepo := mockRepo.NewMockAdvertRepository(t)
	service := NewAdvertService(mockAdRepo)

	ctx := context.Background()
	advert := &entity.Advert{ID: uuid.New(), Status: entity.ReviewStatusApproved}
	imageID := uuid.New()

	mockAdRepo.On("FindAdvertByID", ctx, advert.ID).Return(advert, nil)
	mockAdRepo.On("UpdateAdvert", ctx, mock.MatchedBy(func(a *entity.Advert) bool {
		return a.ImageID != nil && *a.ImageID == imageID
	})).Return(nil)

	require.NoError(t, service.AttachImage(ctx, advert.ID, imageID))
}
