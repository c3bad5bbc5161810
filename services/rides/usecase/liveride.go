package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

// AdvanceLiveRide moves a live ride exactly one step forward in the fixed
// tracking sequence. Skipping ahead, moving backward and advancing a
// completed live ride are all rejected. Only the driver advances.
func (uc *rideUC) AdvanceLiveRide(ctx context.Context, driverID uuid.UUID, req *models.LiveRideAdvanceRequest) (*models.LiveRide, error) {
	liveRide, err := uc.repo.GetLiveRide(ctx, req.LiveRideID)
	if err != nil {
		return nil, err
	}
	if liveRide.DriverID != driverID {
		return nil, fmt.Errorf("live ride %s belongs to another driver: %w", liveRide.ID, apperrors.ErrForbidden)
	}
	if liveRide.Status.IsTerminal() {
		return nil, fmt.Errorf("live ride already completed: %w", apperrors.ErrInvalidTransition)
	}

	expected, ok := liveRide.Status.Next()
	if !ok || req.NextStatus != expected {
		return nil, fmt.Errorf("cannot move from %s to %s: %w",
			liveRide.Status, req.NextStatus, apperrors.ErrInvalidTransition)
	}

	before := *liveRide
	updated, err := uc.repo.AdvanceLiveRide(ctx, liveRide.ID, expected, time.Now())
	if err != nil {
		return nil, err
	}

	if updated.Status == models.LiveRideStatusCompleted {
		uc.settleCompletedLiveRide(ctx, updated)
	}

	uc.publishLiveRideChange(ctx, models.ChangeOpUpdate, &before, updated)
	uc.notify(ctx, updated.PassengerID, models.NotificationTypeTrip,
		liveRideStatusTitle(updated.Status), liveRideStatusMessage(updated.Status), updated.ID)

	return updated, nil
}

// settleCompletedLiveRide mirrors completion onto the booking and frees the
// verification code for reuse.
func (uc *rideUC) settleCompletedLiveRide(ctx context.Context, liveRide *models.LiveRide) {
	booking, err := uc.repo.GetBooking(ctx, liveRide.BookingID)
	if err != nil {
		logger.Error("failed to load booking for completed live ride",
			logger.String("live_ride_id", liveRide.ID.String()),
			logger.Err(err))
		return
	}

	before := *booking
	updated, err := uc.repo.UpdateBookingStatus(ctx, booking.ID, models.BookingStatusCompleted)
	if err != nil {
		logger.Error("failed to complete booking for live ride",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err))
		return
	}
	uc.publishBookingChange(ctx, models.ChangeOpUpdate, &before, updated)

	if liveRide.VerificationCode != "" {
		if err := uc.cache.ReleaseCode(ctx, liveRide.VerificationCode); err != nil {
			logger.Warn("failed to release verification code",
				logger.String("booking_id", booking.ID.String()),
				logger.Err(err))
		}
	}

	uc.notify(ctx, liveRide.DriverID, models.NotificationTypeTrip,
		"Trip completed", "Your trip is complete. Leave your passenger a review!", liveRide.ID)
}

// ActiveLiveRide returns the user's current live ride, as driver or passenger
func (uc *rideUC) ActiveLiveRide(ctx context.Context, userID uuid.UUID) (*models.LiveRide, error) {
	return uc.repo.GetActiveLiveRideForUser(ctx, userID)
}

func liveRideStatusTitle(status models.LiveRideStatus) string {
	switch status {
	case models.LiveRideStatusDriverArriving:
		return "Driver on the way"
	case models.LiveRideStatusArrived:
		return "Driver arrived"
	case models.LiveRideStatusPickupComplete:
		return "Pickup confirmed"
	case models.LiveRideStatusInTransit:
		return "Trip started"
	case models.LiveRideStatusCompleted:
		return "Trip completed"
	default:
		return "Trip update"
	}
}

func liveRideStatusMessage(status models.LiveRideStatus) string {
	switch status {
	case models.LiveRideStatusDriverArriving:
		return "Your driver is heading to the pickup point"
	case models.LiveRideStatusArrived:
		return "Your driver has arrived. Share your verification code at pickup"
	case models.LiveRideStatusPickupComplete:
		return "Pickup confirmed. Enjoy the ride"
	case models.LiveRideStatusInTransit:
		return "You are on your way"
	case models.LiveRideStatusCompleted:
		return "Your trip is complete. Leave your driver a review!"
	default:
		return "Your trip status changed"
	}
}
