package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// CreateReview inserts a post-trip review
func (r *RideRepository) CreateReview(ctx context.Context, review *models.Review) error {
	review.ID = uuid.New()
	review.CreatedAt = time.Now()

	query := `
		INSERT INTO reviews (id, ride_id, reviewer_id, reviewed_user_id, rating, comment, created_at)
		VALUES (:id, :ride_id, :reviewer_id, :reviewed_user_id, :rating, :comment, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, review); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// HasReview reports whether a review already exists for this triple
func (r *RideRepository) HasReview(ctx context.Context, rideID, reviewerID, reviewedUserID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM reviews
		WHERE ride_id = $1 AND reviewer_id = $2 AND reviewed_user_id = $3
	)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, rideID, reviewerID, reviewedUserID); err != nil {
		return false, fmt.Errorf("failed to check review: %w", err)
	}
	return exists, nil
}

// CanReview reports whether the reviewer took part in the ride's completed
// trip, either as its driver or as a passenger whose booking completed.
func (r *RideRepository) CanReview(ctx context.Context, rideID, reviewerID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM rides r WHERE r.id = $1 AND r.driver_id = $2
		UNION
		SELECT 1 FROM bookings b WHERE b.ride_id = $1 AND b.passenger_id = $2 AND b.status = 'completed'
	)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, rideID, reviewerID); err != nil {
		return false, fmt.Errorf("failed to check review eligibility: %w", err)
	}
	return exists, nil
}

// AverageRating computes the arithmetic mean of all ratings a user received
func (r *RideRepository) AverageRating(ctx context.Context, userID uuid.UUID) (float64, int, error) {
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE reviewed_user_id = $1`

	var avg float64
	var count int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("failed to compute average rating: %w", err)
	}
	return avg, count, nil
}

// UpdateUserRating persists a user's recomputed rolling average rating
func (r *RideRepository) UpdateUserRating(ctx context.Context, userID uuid.UUID, rating float64) error {
	query := `UPDATE users SET rating = $1, updated_at = $2 WHERE id = $3`

	if _, err := r.db.ExecContext(ctx, query, rating, time.Now(), userID); err != nil {
		return fmt.Errorf("failed to update user rating: %w", err)
	}
	return nil
}
