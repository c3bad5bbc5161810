package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// Notifications lists the user's notifications, newest first
func (uc *rideUC) Notifications(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	return uc.repo.ListNotifications(ctx, userID, uc.cfg.Coordinator.NotificationKeep)
}

// MarkNotificationRead flips the read flag on the user's own notification
func (uc *rideUC) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return uc.repo.MarkNotificationRead(ctx, notificationID, userID)
}

// StoreNotification persists a notification taken off the dispatch queue and
// publishes its change event. This is the worker path, not a handler path.
func (uc *rideUC) StoreNotification(ctx context.Context, notification *models.Notification) error {
	if err := uc.repo.CreateNotification(ctx, notification); err != nil {
		return err
	}
	uc.publishNotificationChange(ctx, notification)
	return nil
}

// Stats aggregates activity counters for the user's dashboard
func (uc *rideUC) Stats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error) {
	return uc.repo.UserStats(ctx, userID)
}
