package gateway

import (
	"context"
	"fmt"

	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

// DispatchNotification queues a notification on the NSQ dispatch topic. The
// worker consumer persists it and publishes its change event.
func (g *RideGateway) DispatchNotification(ctx context.Context, notification *models.Notification) error {
	if err := g.nsqProducer.Publish(constants.TopicNotificationDispatch, notification); err != nil {
		return fmt.Errorf("failed to dispatch notification: %w", err)
	}
	return nil
}
