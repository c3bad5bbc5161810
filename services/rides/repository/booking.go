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

const bookingColumns = `id, ride_id, passenger_id, seats_requested, total_amount,
	pickup_point, message, status, verification_code, created_at, updated_at`

// CreateBooking inserts a new pending booking
func (r *RideRepository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	booking.ID = uuid.New()
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	query := `
		INSERT INTO bookings (id, ride_id, passenger_id, seats_requested, total_amount,
			pickup_point, message, status, verification_code, created_at, updated_at
		) VALUES (:id, :ride_id, :passenger_id, :seats_requested, :total_amount,
			:pickup_point, :message, :status, :verification_code, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetBooking retrieves a booking by id
func (r *RideRepository) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.Booking
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

// ListBookingsByPassenger lists a passenger's bookings, newest first
func (r *RideRepository) ListBookingsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE passenger_id = $1 ORDER BY created_at DESC`

	var bookings []models.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, passengerID); err != nil {
		return nil, fmt.Errorf("failed to list passenger bookings: %w", err)
	}
	return bookings, nil
}

// ListPendingBookingsForDriver lists pending booking requests across all of a
// driver's rides, newest first.
func (r *RideRepository) ListPendingBookingsForDriver(ctx context.Context, driverID uuid.UUID) ([]models.Booking, error) {
	query := `
		SELECT b.id, b.ride_id, b.passenger_id, b.seats_requested, b.total_amount,
			b.pickup_point, b.message, b.status, b.verification_code, b.created_at, b.updated_at
		FROM bookings b
		JOIN rides r ON r.id = b.ride_id
		WHERE r.driver_id = $1 AND b.status = 'pending'
		ORDER BY b.created_at DESC
	`
	var bookings []models.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list booking requests: %w", err)
	}
	return bookings, nil
}

// ListActiveBookingsForRide lists pending and confirmed bookings on a ride
func (r *RideRepository) ListActiveBookingsForRide(ctx context.Context, rideID uuid.UUID) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE ride_id = $1 AND status IN ('pending', 'confirmed')
		ORDER BY created_at ASC`

	var bookings []models.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to list ride bookings: %w", err)
	}
	return bookings, nil
}

// HasActiveBooking reports whether the passenger already holds a pending or
// confirmed booking on the ride.
func (r *RideRepository) HasActiveBooking(ctx context.Context, rideID, passengerID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM bookings
		WHERE ride_id = $1 AND passenger_id = $2 AND status IN ('pending', 'confirmed')
	)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, rideID, passengerID); err != nil {
		return false, fmt.Errorf("failed to check active booking: %w", err)
	}
	return exists, nil
}

// UpdateBookingStatus transitions a booking's status and returns the updated row
func (r *RideRepository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	query := `
		UPDATE bookings SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + bookingColumns

	var booking models.Booking
	if err := r.db.GetContext(ctx, &booking, query, status, time.Now(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return &booking, nil
}

// RespondToBooking applies the driver's accept/decline decision in a single
// transaction. On accept the ride's seat count is decremented with a guard
// that keeps available_seats from ever going negative, so two concurrent
// confirmations cannot oversell the ride.
func (r *RideRepository) RespondToBooking(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus, verificationCode string) (*models.Booking, *models.Ride, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var booking models.Booking
	if err := tx.GetContext(ctx, &booking,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("booking %s: %w", bookingID, apperrors.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.Status != models.BookingStatusPending {
		return nil, nil, fmt.Errorf("booking is %s: %w", booking.Status, apperrors.ErrInvalidTransition)
	}

	if status == models.BookingStatusConfirmed {
		res, err := tx.ExecContext(ctx,
			`UPDATE rides SET available_seats = available_seats - $1, updated_at = $2
			 WHERE id = $3 AND available_seats >= $1`,
			booking.SeatsRequested, time.Now(), booking.RideID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decrement seats: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read seat update result: %w", err)
		}
		if rows == 0 {
			return nil, nil, fmt.Errorf("ride %s has fewer than %d seats left: %w",
				booking.RideID, booking.SeatsRequested, apperrors.ErrCapacityExceeded)
		}
	}

	if err := tx.GetContext(ctx, &booking,
		`UPDATE bookings SET status = $1, verification_code = $2, updated_at = $3
		 WHERE id = $4
		 RETURNING `+bookingColumns,
		status, verificationCode, time.Now(), bookingID); err != nil {
		return nil, nil, fmt.Errorf("failed to update booking: %w", err)
	}

	var ride models.Ride
	if err := tx.GetContext(ctx, &ride,
		`SELECT `+rideColumns+` FROM rides WHERE id = $1`, booking.RideID); err != nil {
		return nil, nil, fmt.Errorf("failed to reload ride: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &booking, &ride, nil
}

// CancelBooking cancels a pending or confirmed booking in one transaction.
// Seats granted to a confirmed booking are restored to the ride.
func (r *RideRepository) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, *models.Ride, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var booking models.Booking
	if err := tx.GetContext(ctx, &booking,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("booking %s: %w", bookingID, apperrors.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	if !booking.Status.IsActive() {
		return nil, nil, fmt.Errorf("booking is %s: %w", booking.Status, apperrors.ErrInvalidTransition)
	}

	if booking.Status == models.BookingStatusConfirmed {
		if _, err := tx.ExecContext(ctx,
			`UPDATE rides SET available_seats = available_seats + $1, updated_at = $2 WHERE id = $3`,
			booking.SeatsRequested, time.Now(), booking.RideID); err != nil {
			return nil, nil, fmt.Errorf("failed to restore seats: %w", err)
		}
	}

	if err := tx.GetContext(ctx, &booking,
		`UPDATE bookings SET status = $1, updated_at = $2
		 WHERE id = $3
		 RETURNING `+bookingColumns,
		models.BookingStatusCancelled, time.Now(), bookingID); err != nil {
		return nil, nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	var ride models.Ride
	if err := tx.GetContext(ctx, &ride,
		`SELECT `+rideColumns+` FROM rides WHERE id = $1`, booking.RideID); err != nil {
		return nil, nil, fmt.Errorf("failed to reload ride: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &booking, &ride, nil
}
