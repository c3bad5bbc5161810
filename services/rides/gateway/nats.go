package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

// PublishRideChange publishes a ride row change to the rides feed
func (g *RideGateway) PublishRideChange(ctx context.Context, op models.ChangeOperation, before, after *models.Ride) error {
	return g.publishChange(constants.SubjectRideChanges, models.TableRides, op, before, after)
}

// PublishBookingChange publishes a booking row change to the bookings feed
func (g *RideGateway) PublishBookingChange(ctx context.Context, op models.ChangeOperation, before, after *models.Booking) error {
	return g.publishChange(constants.SubjectBookingChanges, models.TableBookings, op, before, after)
}

// PublishLiveRideChange publishes a live ride row change to the live rides feed
func (g *RideGateway) PublishLiveRideChange(ctx context.Context, op models.ChangeOperation, before, after *models.LiveRide) error {
	return g.publishChange(constants.SubjectLiveRideChanges, models.TableLiveRides, op, before, after)
}

// PublishNotificationChange publishes a notification insert to the notifications feed
func (g *RideGateway) PublishNotificationChange(ctx context.Context, op models.ChangeOperation, notification *models.Notification) error {
	return g.publishChange(constants.SubjectNotificationChanges, models.TableNotifications, op, nil, notification)
}

// publishChange builds the ChangeEvent envelope and hands it to the NATS
// producer. before/after may be typed nil pointers; both collapse to absent
// fields on the wire.
func (g *RideGateway) publishChange(subject, table string, op models.ChangeOperation, before, after interface{}) error {
	event := models.ChangeEvent{
		Table:     table,
		Operation: op,
	}

	if !isNil(before) {
		raw, err := json.Marshal(before)
		if err != nil {
			return fmt.Errorf("failed to marshal before image: %w", err)
		}
		event.Before = raw
	}
	if !isNil(after) {
		raw, err := json.Marshal(after)
		if err != nil {
			return fmt.Errorf("failed to marshal after image: %w", err)
		}
		event.After = raw
	}

	if err := g.natsProducer.Publish(subject, event); err != nil {
		return fmt.Errorf("failed to publish change event on %s: %w", subject, err)
	}
	return nil
}

func isNil(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *models.Ride:
		return t == nil
	case *models.Booking:
		return t == nil
	case *models.LiveRide:
		return t == nil
	case *models.Notification:
		return t == nil
	}
	return false
}
