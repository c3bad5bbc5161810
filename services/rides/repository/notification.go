package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// CreateNotification inserts a notification row
func (r *RideRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO notifications (id, user_id, title, message, type, data, is_read, created_at)
		VALUES (:id, :user_id, :title, :message, :type, :data, :is_read, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, notification); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// ListNotifications returns the recipient's notifications, newest first.
// Notifications are visible only to their recipient.
func (r *RideRepository) ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, user_id, title, message, type, data, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	var notifications []models.Notification
	if err := r.db.SelectContext(ctx, &notifications, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead flips the read flag. The user_id predicate keeps one
// user from toggling another's notification.
func (r *RideRepository) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// UserStats aggregates a user's activity counters for the dashboard
func (r *RideRepository) UserStats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM rides WHERE driver_id = $1) AS total_rides,
			(SELECT COUNT(*) FROM rides WHERE driver_id = $1 AND status = 'completed') AS rides_completed,
			(SELECT COUNT(*) FROM bookings WHERE passenger_id = $1) AS total_bookings,
			(SELECT COUNT(*) FROM bookings WHERE passenger_id = $1 AND status = 'completed') AS bookings_completed,
			(SELECT COUNT(*) FROM bookings b JOIN rides r ON r.id = b.ride_id
				WHERE r.driver_id = $1 AND b.status = 'pending') AS pending_requests,
			(SELECT COALESCE(rating, 0) FROM users WHERE id = $1) AS average_rating,
			(SELECT COALESCE(SUM(total_amount), 0) FROM bookings
				WHERE passenger_id = $1 AND status IN ('confirmed', 'completed')) AS total_spent
	`
	var stats models.UserStats
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.TotalRides,
		&stats.RidesCompleted,
		&stats.TotalBookings,
		&stats.BookingsCompleted,
		&stats.PendingRequests,
		&stats.AverageRating,
		&stats.TotalSpent,
	); err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}
	return &stats, nil
}
