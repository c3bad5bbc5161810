package rides

import (
	"context"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/campuspool/campuspool/services/rides RideGW

// RideGW publishes committed changes to the per-table NATS change feed and
// hands notifications to the NSQ dispatch queue. Change events for one table
// go out in commit order; nothing is guaranteed across tables.
type RideGW interface {
	PublishRideChange(ctx context.Context, op models.ChangeOperation, before, after *models.Ride) error
	PublishBookingChange(ctx context.Context, op models.ChangeOperation, before, after *models.Booking) error
	PublishLiveRideChange(ctx context.Context, op models.ChangeOperation, before, after *models.LiveRide) error
	PublishNotificationChange(ctx context.Context, op models.ChangeOperation, notification *models.Notification) error

	// DispatchNotification queues a notification for the async worker that
	// persists it and fans it out. Best-effort: failures are the caller's to
	// log, never to propagate.
	DispatchNotification(ctx context.Context, notification *models.Notification) error
}
