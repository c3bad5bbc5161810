package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

const liveRideColumns = `id, ride_id, booking_id, driver_id, passenger_id, verification_code,
	ride_status, arrival_time, pickup_time, completed_at, created_at, updated_at`

// CreateLiveRide inserts the tracking record for a freshly confirmed booking
func (r *RideRepository) CreateLiveRide(ctx context.Context, liveRide *models.LiveRide) error {
	liveRide.ID = uuid.New()
	now := time.Now()
	liveRide.CreatedAt = now
	liveRide.UpdatedAt = now

	query := `
		INSERT INTO live_rides (id, ride_id, booking_id, driver_id, passenger_id, verification_code,
			ride_status, arrival_time, pickup_time, completed_at, created_at, updated_at
		) VALUES (:id, :ride_id, :booking_id, :driver_id, :passenger_id, :verification_code,
			:ride_status, :arrival_time, :pickup_time, :completed_at, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, liveRide); err != nil {
		return fmt.Errorf("failed to insert live ride: %w", err)
	}
	return nil
}

// GetLiveRide retrieves a live ride by id
func (r *RideRepository) GetLiveRide(ctx context.Context, id uuid.UUID) (*models.LiveRide, error) {
	query := `SELECT ` + liveRideColumns + ` FROM live_rides WHERE id = $1`

	var liveRide models.LiveRide
	if err := r.db.GetContext(ctx, &liveRide, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("live ride %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get live ride: %w", err)
	}
	return &liveRide, nil
}

// GetActiveLiveRideForUser returns the newest non-completed live ride the
// user participates in, as driver or passenger. Absence is ErrNotFound.
func (r *RideRepository) GetActiveLiveRideForUser(ctx context.Context, userID uuid.UUID) (*models.LiveRide, error) {
	query := `
		SELECT ` + liveRideColumns + ` FROM live_rides
		WHERE (driver_id = $1 OR passenger_id = $1) AND ride_status != 'completed'
		ORDER BY created_at DESC
		LIMIT 1
	`
	var liveRide models.LiveRide
	if err := r.db.GetContext(ctx, &liveRide, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no active live ride: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get active live ride: %w", err)
	}
	return &liveRide, nil
}

// AdvanceLiveRide sets the live ride's status and stamps the matching
// per-transition timestamp column.
func (r *RideRepository) AdvanceLiveRide(ctx context.Context, id uuid.UUID, status models.LiveRideStatus, at time.Time) (*models.LiveRide, error) {
	set := `ride_status = $1, updated_at = $2`
	switch status {
	case models.LiveRideStatusArrived:
		set += `, arrival_time = $2`
	case models.LiveRideStatusPickupComplete:
		set += `, pickup_time = $2`
	case models.LiveRideStatusCompleted:
		set += `, completed_at = $2`
	}

	query := `UPDATE live_rides SET ` + set + ` WHERE id = $3 RETURNING ` + liveRideColumns

	var liveRide models.LiveRide
	if err := r.db.GetContext(ctx, &liveRide, query, status, at, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("live ride %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to advance live ride: %w", err)
	}
	return &liveRide, nil
}

// DeleteLiveRideByBooking removes the tracking record of a cancelled booking
// and returns the deleted row for the change feed.
func (r *RideRepository) DeleteLiveRideByBooking(ctx context.Context, bookingID uuid.UUID) (*models.LiveRide, error) {
	query := `DELETE FROM live_rides WHERE booking_id = $1 RETURNING ` + liveRideColumns

	var liveRide models.LiveRide
	if err := r.db.GetContext(ctx, &liveRide, query, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("live ride for booking %s: %w", bookingID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete live ride: %w", err)
	}
	return &liveRide, nil
}
