package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

// Change publication is best-effort: the database commit already happened and
// is the source of truth, so a feed failure is logged, never propagated.

func (uc *rideUC) publishRideChange(ctx context.Context, op models.ChangeOperation, before, after *models.Ride) {
	if err := uc.gw.PublishRideChange(ctx, op, before, after); err != nil {
		logger.Error("failed to publish ride change", logger.Err(err))
	}
}

func (uc *rideUC) publishBookingChange(ctx context.Context, op models.ChangeOperation, before, after *models.Booking) {
	if err := uc.gw.PublishBookingChange(ctx, op, before, after); err != nil {
		logger.Error("failed to publish booking change", logger.Err(err))
	}
}

func (uc *rideUC) publishLiveRideChange(ctx context.Context, op models.ChangeOperation, before, after *models.LiveRide) {
	if err := uc.gw.PublishLiveRideChange(ctx, op, before, after); err != nil {
		logger.Error("failed to publish live ride change", logger.Err(err))
	}
}

func (uc *rideUC) publishNotificationChange(ctx context.Context, notification *models.Notification) {
	if err := uc.gw.PublishNotificationChange(ctx, models.ChangeOpInsert, notification); err != nil {
		logger.Error("failed to publish notification change", logger.Err(err))
	}
}

// notify queues a notification for the async dispatch worker. refID points at
// the entity the notification is about and rides along in the data payload.
func (uc *rideUC) notify(ctx context.Context, userID uuid.UUID, kind models.NotificationType, title, message string, refID uuid.UUID) {
	data, _ := json.Marshal(map[string]string{"ref_id": refID.String()})

	notification := &models.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
		Data:    data,
	}
	if err := uc.gw.DispatchNotification(ctx, notification); err != nil {
		logger.Warn("failed to dispatch notification",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}
}
