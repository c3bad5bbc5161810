package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

// SubmitReview records a post-trip review and recomputes the reviewed user's
// rolling average rating. Both parties must have taken part in the ride's
// completed trip, and each pairing may review once.
func (uc *rideUC) SubmitReview(ctx context.Context, reviewerID uuid.UUID, req *models.ReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating %d out of range 1-5: %w", req.Rating, apperrors.ErrInvalidTransition)
	}
	if reviewerID == req.ReviewedUserID {
		return nil, fmt.Errorf("cannot review yourself: %w", apperrors.ErrForbidden)
	}

	for _, userID := range []uuid.UUID{reviewerID, req.ReviewedUserID} {
		ok, err := uc.repo.CanReview(ctx, req.RideID, userID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("user %s did not take part in ride %s: %w",
				userID, req.RideID, apperrors.ErrForbidden)
		}
	}

	exists, err := uc.repo.HasReview(ctx, req.RideID, reviewerID, req.ReviewedUserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("ride %s: %w", req.RideID, apperrors.ErrDuplicateReview)
	}

	review := &models.Review{
		RideID:         req.RideID,
		ReviewerID:     reviewerID,
		ReviewedUserID: req.ReviewedUserID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	}
	if err := uc.repo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	avg, count, err := uc.repo.AverageRating(ctx, req.ReviewedUserID)
	if err != nil {
		logger.Error("failed to recompute rating",
			logger.String("user_id", req.ReviewedUserID.String()),
			logger.Err(err))
	} else if err := uc.repo.UpdateUserRating(ctx, req.ReviewedUserID, avg); err != nil {
		logger.Error("failed to store rating",
			logger.String("user_id", req.ReviewedUserID.String()),
			logger.Int("review_count", count),
			logger.Err(err))
	}

	uc.notify(ctx, req.ReviewedUserID, models.NotificationTypeSystem,
		"New review received",
		fmt.Sprintf("You received a %d-star review", req.Rating),
		review.ID)

	return review, nil
}
