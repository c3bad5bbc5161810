package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

const rideColumns = `id, driver_id, origin_name, destination_name, origin_lat, origin_lng,
	destination_lat, destination_lng, origin_cell, departure_time, available_seats,
	price_per_seat, vehicle_model, vehicle_color, vehicle_plate, status, created_at, updated_at`

// CreateRide inserts a new ride record
func (r *RideRepository) CreateRide(ctx context.Context, ride *models.Ride) error {
	ride.ID = uuid.New()
	now := time.Now()
	ride.CreatedAt = now
	ride.UpdatedAt = now

	query := `
		INSERT INTO rides (id, driver_id, origin_name, destination_name, origin_lat, origin_lng,
			destination_lat, destination_lng, origin_cell, departure_time, available_seats,
			price_per_seat, vehicle_model, vehicle_color, vehicle_plate, status, created_at, updated_at
		) VALUES (:id, :driver_id, :origin_name, :destination_name, :origin_lat, :origin_lng,
			:destination_lat, :destination_lng, :origin_cell, :departure_time, :available_seats,
			:price_per_seat, :vehicle_model, :vehicle_color, :vehicle_plate, :status, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, ride); err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}
	return nil
}

// GetRide retrieves a ride by id
func (r *RideRepository) GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	var ride models.Ride
	if err := r.db.GetContext(ctx, &ride, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ride %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}

// GetRidesByIDs retrieves a batch of rides by id
func (r *RideRepository) GetRidesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Ride, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+rideColumns+` FROM rides WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build ride batch query: %w", err)
	}
	query = r.db.Rebind(query)

	var rides []models.Ride
	if err := r.db.SelectContext(ctx, &rides, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get rides: %w", err)
	}
	return rides, nil
}

// ListRides lists active rides matching the filter, newest departure first
func (r *RideRepository) ListRides(ctx context.Context, filter models.RideFilter) ([]models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE status = 'active'`
	args := []interface{}{}
	n := 1

	if filter.Origin != "" {
		query += ` AND origin_name ILIKE '%' || $` + strconv.Itoa(n) + ` || '%'`
		args = append(args, filter.Origin)
		n++
	}
	if filter.Destination != "" {
		query += ` AND destination_name ILIKE '%' || $` + strconv.Itoa(n) + ` || '%'`
		args = append(args, filter.Destination)
		n++
	}
	if filter.Date != nil {
		query += ` AND departure_time >= $` + strconv.Itoa(n)
		args = append(args, *filter.Date)
		n++
	}
	if filter.MinSeats > 0 {
		query += ` AND available_seats >= $` + strconv.Itoa(n)
		args = append(args, filter.MinSeats)
		n++
	}
	if filter.MaxPrice != nil {
		query += ` AND price_per_seat <= $` + strconv.Itoa(n)
		args = append(args, *filter.MaxPrice)
		n++
	}

	query += ` ORDER BY departure_time ASC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT $` + strconv.Itoa(n)
	args = append(args, limit)

	var rides []models.Ride
	if err := r.db.SelectContext(ctx, &rides, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}
	return rides, nil
}

// ListRidesByDriver lists all rides owned by a driver, newest first
func (r *RideRepository) ListRidesByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE driver_id = $1 ORDER BY created_at DESC`

	var rides []models.Ride
	if err := r.db.SelectContext(ctx, &rides, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list driver rides: %w", err)
	}
	return rides, nil
}

// UpdateRideStatus transitions a ride's status and returns the updated row
func (r *RideRepository) UpdateRideStatus(ctx context.Context, id uuid.UUID, status models.RideStatus) (*models.Ride, error) {
	query := `
		UPDATE rides SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + rideColumns

	var ride models.Ride
	if err := r.db.GetContext(ctx, &ride, query, status, time.Now(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ride %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update ride status: %w", err)
	}
	return &ride, nil
}
