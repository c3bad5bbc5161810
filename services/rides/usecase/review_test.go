package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

func TestSubmitReview_RecomputesRating(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()
	allowSideEffects(deps)

	rideID := uuid.New()
	reviewerID := uuid.New()
	reviewedID := uuid.New()

	deps.repo.EXPECT().CanReview(gomock.Any(), rideID, reviewerID).Return(true, nil)
	deps.repo.EXPECT().CanReview(gomock.Any(), rideID, reviewedID).Return(true, nil)
	deps.repo.EXPECT().HasReview(gomock.Any(), rideID, reviewerID, reviewedID).Return(false, nil)
	deps.repo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(nil)
	deps.repo.EXPECT().AverageRating(gomock.Any(), reviewedID).Return(4.5, 2, nil)
	deps.repo.EXPECT().UpdateUserRating(gomock.Any(), reviewedID, 4.5).Return(nil)

	review, err := uc.SubmitReview(context.Background(), reviewerID, &models.ReviewRequest{
		RideID:         rideID,
		ReviewedUserID: reviewedID,
		Rating:         5,
		Comment:        "Great driver",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, reviewerID, review.ReviewerID)
}

func TestSubmitReview_Duplicate(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	rideID := uuid.New()
	reviewerID := uuid.New()
	reviewedID := uuid.New()

	deps.repo.EXPECT().CanReview(gomock.Any(), rideID, reviewerID).Return(true, nil)
	deps.repo.EXPECT().CanReview(gomock.Any(), rideID, reviewedID).Return(true, nil)
	deps.repo.EXPECT().HasReview(gomock.Any(), rideID, reviewerID, reviewedID).Return(true, nil)

	_, err := uc.SubmitReview(context.Background(), reviewerID, &models.ReviewRequest{
		RideID:         rideID,
		ReviewedUserID: reviewedID,
		Rating:         4,
	})

	assert.ErrorIs(t, err, apperrors.ErrDuplicateReview)
}

func TestSubmitReview_NotParticipant(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	rideID := uuid.New()
	reviewerID := uuid.New()

	deps.repo.EXPECT().CanReview(gomock.Any(), rideID, reviewerID).Return(false, nil)

	_, err := uc.SubmitReview(context.Background(), reviewerID, &models.ReviewRequest{
		RideID:         rideID,
		ReviewedUserID: uuid.New(),
		Rating:         3,
	})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestSubmitReview_SelfReview(t *testing.T) {
	uc, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	reviewerID := uuid.New()

	_, err := uc.SubmitReview(context.Background(), reviewerID, &models.ReviewRequest{
		RideID:         uuid.New(),
		ReviewedUserID: reviewerID,
		Rating:         3,
	})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestSubmitReview_RatingOutOfRange(t *testing.T) {
	uc, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.SubmitReview(context.Background(), uuid.New(), &models.ReviewRequest{
		RideID:         uuid.New(),
		ReviewedUserID: uuid.New(),
		Rating:         6,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}
