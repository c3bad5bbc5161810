package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
)

// codeReserveAttempts bounds the reserve loop when a generated verification
// code collides with another open booking's code.
const codeReserveAttempts = 5

// RequestBooking creates a pending booking on an active ride. Drivers cannot
// book their own rides, and a passenger holds at most one active booking per
// ride. Seats are only provisionally checked here; the authoritative check
// happens when the driver accepts.
func (uc *rideUC) RequestBooking(ctx context.Context, passengerID uuid.UUID, req *models.BookingRequest) (*models.Booking, error) {
	ride, err := uc.repo.GetRide(ctx, req.RideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusActive {
		return nil, fmt.Errorf("ride is %s: %w", ride.Status, apperrors.ErrInvalidTransition)
	}
	if ride.DriverID == passengerID {
		return nil, fmt.Errorf("ride %s: %w", ride.ID, apperrors.ErrSelfBooking)
	}

	exists, err := uc.repo.HasActiveBooking(ctx, req.RideID, passengerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("ride %s: %w", ride.ID, apperrors.ErrDuplicateBooking)
	}

	if req.SeatsRequested > ride.AvailableSeats {
		return nil, fmt.Errorf("requested %d of %d seats: %w",
			req.SeatsRequested, ride.AvailableSeats, apperrors.ErrCapacityExceeded)
	}

	booking := &models.Booking{
		RideID:         req.RideID,
		PassengerID:    passengerID,
		SeatsRequested: req.SeatsRequested,
		TotalAmount:    float64(req.SeatsRequested) * ride.PricePerSeat,
		PickupPoint:    req.PickupPoint,
		Message:        req.Message,
		Status:         models.BookingStatusPending,
	}
	if err := uc.repo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	uc.publishBookingChange(ctx, models.ChangeOpInsert, nil, booking)
	uc.notify(ctx, ride.DriverID, models.NotificationTypeBooking,
		"New booking request",
		fmt.Sprintf("A passenger requested %d seat(s) on your ride from %s to %s",
			booking.SeatsRequested, ride.OriginName, ride.DestinationName),
		booking.ID)

	return booking, nil
}

// RespondToBooking applies the driver's decision on a pending booking. Accept
// confirms the booking, decrements seats, assigns a unique verification code
// and spawns the live ride. Decline just closes the request. Only the ride's
// driver may respond.
func (uc *rideUC) RespondToBooking(ctx context.Context, driverID uuid.UUID, resp *models.BookingResponse) (*models.Booking, error) {
	booking, err := uc.repo.GetBooking(ctx, resp.BookingID)
	if err != nil {
		return nil, err
	}
	ride, err := uc.repo.GetRide(ctx, booking.RideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, fmt.Errorf("booking %s is on another driver's ride: %w", booking.ID, apperrors.ErrForbidden)
	}
	if booking.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("booking is %s: %w", booking.Status, apperrors.ErrInvalidTransition)
	}

	if resp.Decision == models.BookingDecisionDecline {
		return uc.declineBooking(ctx, booking, ride)
	}
	if resp.Decision != models.BookingDecisionAccept {
		return nil, fmt.Errorf("unknown decision %q: %w", resp.Decision, apperrors.ErrInvalidTransition)
	}
	return uc.acceptBooking(ctx, booking, ride, resp.VerificationCode)
}

func (uc *rideUC) declineBooking(ctx context.Context, booking *models.Booking, ride *models.Ride) (*models.Booking, error) {
	before := *booking
	updated, _, err := uc.repo.RespondToBooking(ctx, booking.ID, models.BookingStatusDeclined, "")
	if err != nil {
		return nil, err
	}

	uc.publishBookingChange(ctx, models.ChangeOpUpdate, &before, updated)
	uc.notify(ctx, booking.PassengerID, models.NotificationTypeBooking,
		"Booking declined",
		fmt.Sprintf("Your booking on the ride from %s to %s was declined", ride.OriginName, ride.DestinationName),
		updated.ID)

	return updated, nil
}

func (uc *rideUC) acceptBooking(ctx context.Context, booking *models.Booking, ride *models.Ride, suppliedCode string) (*models.Booking, error) {
	code, err := uc.reserveVerificationCode(ctx, suppliedCode)
	if err != nil {
		return nil, err
	}

	beforeBooking := *booking
	beforeRide := *ride
	updated, updatedRide, err := uc.repo.RespondToBooking(ctx, booking.ID, models.BookingStatusConfirmed, code)
	if err != nil {
		if relErr := uc.cache.ReleaseCode(ctx, code); relErr != nil {
			logger.Warn("failed to release verification code after rollback", logger.Err(relErr))
		}
		return nil, err
	}

	liveRide := &models.LiveRide{
		RideID:           ride.ID,
		BookingID:        updated.ID,
		DriverID:         ride.DriverID,
		PassengerID:      updated.PassengerID,
		VerificationCode: code,
		Status:           models.LiveRideStatusConfirmed,
	}
	if err := uc.repo.CreateLiveRide(ctx, liveRide); err != nil {
		logger.Error("failed to create live ride for confirmed booking",
			logger.String("booking_id", updated.ID.String()),
			logger.Err(err))
	} else {
		uc.publishLiveRideChange(ctx, models.ChangeOpInsert, nil, liveRide)
	}

	uc.publishBookingChange(ctx, models.ChangeOpUpdate, &beforeBooking, updated)
	uc.publishRideChange(ctx, models.ChangeOpUpdate, &beforeRide, updatedRide)
	uc.notify(ctx, updated.PassengerID, models.NotificationTypeBooking,
		"Booking confirmed",
		fmt.Sprintf("Your booking on the ride from %s to %s was confirmed. Verification code: %s",
			ride.OriginName, ride.DestinationName, code),
		updated.ID)

	return updated, nil
}

// reserveVerificationCode claims a code unique among open bookings. A driver
// may supply their own code; otherwise codes are drawn from crypto/rand until
// one reserves cleanly.
func (uc *rideUC) reserveVerificationCode(ctx context.Context, supplied string) (string, error) {
	if supplied != "" {
		if !utils.ValidVerificationCode(supplied) {
			return "", fmt.Errorf("verification code must be 4-6 alphanumeric characters: %w", apperrors.ErrInvalidTransition)
		}
		ok, err := uc.cache.ReserveCode(ctx, supplied)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("verification code already in use: %w", apperrors.ErrDuplicateBooking)
		}
		return supplied, nil
	}

	for attempt := 0; attempt < codeReserveAttempts; attempt++ {
		code, err := utils.GenerateVerificationCode()
		if err != nil {
			return "", err
		}
		ok, err := uc.cache.ReserveCode(ctx, code)
		if err != nil {
			return "", err
		}
		if ok {
			return code, nil
		}
	}
	return "", errors.New("could not reserve a unique verification code")
}

// CancelBooking lets a passenger withdraw a pending or confirmed booking.
// Seats granted to a confirmed booking return to the ride and its live ride
// is torn down. Only the booking's passenger may cancel.
func (uc *rideUC) CancelBooking(ctx context.Context, passengerID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PassengerID != passengerID {
		return nil, fmt.Errorf("booking %s belongs to another passenger: %w", bookingID, apperrors.ErrForbidden)
	}
	if !booking.Status.IsActive() {
		return nil, fmt.Errorf("booking is %s: %w", booking.Status, apperrors.ErrInvalidTransition)
	}

	wasConfirmed := booking.Status == models.BookingStatusConfirmed
	before := *booking
	beforeRide, err := uc.repo.GetRide(ctx, booking.RideID)
	if err != nil {
		return nil, err
	}

	updated, updatedRide, err := uc.repo.CancelBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if wasConfirmed {
		if booking.VerificationCode != "" {
			if err := uc.cache.ReleaseCode(ctx, booking.VerificationCode); err != nil {
				logger.Warn("failed to release verification code",
					logger.String("booking_id", bookingID.String()),
					logger.Err(err))
			}
		}
		if liveRide, err := uc.repo.DeleteLiveRideByBooking(ctx, bookingID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				logger.Error("failed to remove live ride for cancelled booking",
					logger.String("booking_id", bookingID.String()),
					logger.Err(err))
			}
		} else {
			uc.publishLiveRideChange(ctx, models.ChangeOpDelete, liveRide, nil)
		}
	}

	uc.publishBookingChange(ctx, models.ChangeOpUpdate, &before, updated)
	if wasConfirmed {
		uc.publishRideChange(ctx, models.ChangeOpUpdate, beforeRide, updatedRide)
	}
	uc.notify(ctx, updatedRide.DriverID, models.NotificationTypeBooking,
		"Booking cancelled",
		fmt.Sprintf("A passenger cancelled their booking on your ride from %s to %s",
			updatedRide.OriginName, updatedRide.DestinationName),
		updated.ID)

	return updated, nil
}

// MyBookings lists the passenger's bookings, newest first
func (uc *rideUC) MyBookings(ctx context.Context, passengerID uuid.UUID) ([]models.Booking, error) {
	return uc.repo.ListBookingsByPassenger(ctx, passengerID)
}

// BookingRequests lists pending requests across all of the driver's rides
func (uc *rideUC) BookingRequests(ctx context.Context, driverID uuid.UUID) ([]models.Booking, error) {
	return uc.repo.ListPendingBookingsForDriver(ctx, driverID)
}
