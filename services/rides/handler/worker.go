package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/pkg/nsq"
	"github.com/campuspool/campuspool/services/rides"
)

// NotificationWorker consumes dispatched notifications off NSQ, persists them
// and publishes their change events.
type NotificationWorker struct {
	rideUC   rides.RideUC
	consumer *nsq.Consumer
}

// NewNotificationWorker starts the NSQ consumer on the dispatch topic
func NewNotificationWorker(lookupdAddr string, rideUC rides.RideUC) (*NotificationWorker, error) {
	w := &NotificationWorker{rideUC: rideUC}

	consumer, err := nsq.NewConsumer(
		constants.TopicNotificationDispatch,
		constants.ChannelNotificationWorker,
		lookupdAddr,
		w.handleMessage,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start notification worker: %w", err)
	}
	w.consumer = consumer
	return w, nil
}

// handleMessage stores one dispatched notification. A returned error requeues
// the message; malformed payloads are dropped after logging.
func (w *NotificationWorker) handleMessage(message []byte) error {
	var notification models.Notification
	if err := json.Unmarshal(message, &notification); err != nil {
		logger.Error("dropping malformed notification message", logger.Err(err))
		return nil
	}

	if err := w.rideUC.StoreNotification(context.Background(), &notification); err != nil {
		logger.Error("failed to store notification",
			logger.String("notification_id", notification.ID.String()),
			logger.Err(err))
		return err
	}
	return nil
}

// Stop drains and stops the consumer
func (w *NotificationWorker) Stop() {
	if w.consumer != nil {
		w.consumer.Stop()
	}
}
