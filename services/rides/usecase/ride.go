package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
)

// CreateRide publishes a new ride offer. When origin coordinates are present
// the ride is also added to the geo index for nearby search.
func (uc *rideUC) CreateRide(ctx context.Context, driverID uuid.UUID, req *models.CreateRideRequest) (*models.Ride, error) {
	ride := &models.Ride{
		DriverID:        driverID,
		OriginName:      req.OriginName,
		DestinationName: req.DestinationName,
		OriginLat:       req.OriginLat,
		OriginLng:       req.OriginLng,
		DestinationLat:  req.DestinationLat,
		DestinationLng:  req.DestinationLng,
		DepartureTime:   req.DepartureTime,
		AvailableSeats:  req.AvailableSeats,
		PricePerSeat:    req.PricePerSeat,
		VehicleModel:    req.VehicleModel,
		VehicleColor:    req.VehicleColor,
		VehiclePlate:    req.VehiclePlate,
		Status:          models.RideStatusActive,
	}
	if req.OriginLat != nil && req.OriginLng != nil {
		ride.OriginCell = utils.EncodeCell(*req.OriginLat, *req.OriginLng)
	}

	if err := uc.repo.CreateRide(ctx, ride); err != nil {
		return nil, err
	}

	if req.OriginLat != nil && req.OriginLng != nil {
		if err := uc.cache.IndexRideLocation(ctx, ride.ID, *req.OriginLat, *req.OriginLng); err != nil {
			logger.Warn("failed to index ride location",
				logger.String("ride_id", ride.ID.String()),
				logger.Err(err))
		}
	}

	uc.publishRideChange(ctx, models.ChangeOpInsert, nil, ride)
	return ride, nil
}

// GetRide retrieves a single ride
func (uc *rideUC) GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	return uc.repo.GetRide(ctx, id)
}

// ListRides lists active rides matching the filter
func (uc *rideUC) ListRides(ctx context.Context, filter models.RideFilter) ([]models.Ride, error) {
	return uc.repo.ListRides(ctx, filter)
}

// NearbyRides searches the geo index and returns active rides within
// radiusKm, nearest first. Rides whose status changed since indexing are
// filtered out.
func (uc *rideUC) NearbyRides(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyRide, error) {
	hits, err := uc.cache.NearbyRideIDs(ctx, lat, lng, radiusKm)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return []models.NearbyRide{}, nil
	}

	ids := make([]uuid.UUID, 0, len(hits))
	for id := range hits {
		ids = append(ids, id)
	}
	rideRows, err := uc.repo.GetRidesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	nearby := make([]models.NearbyRide, 0, len(rideRows))
	for _, ride := range rideRows {
		if ride.Status != models.RideStatusActive {
			continue
		}
		nearby = append(nearby, models.NearbyRide{Ride: ride, DistanceKm: hits[ride.ID]})
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].DistanceKm < nearby[j].DistanceKm })
	return nearby, nil
}

// MyRides lists all rides published by the driver
func (uc *rideUC) MyRides(ctx context.Context, driverID uuid.UUID) ([]models.Ride, error) {
	return uc.repo.ListRidesByDriver(ctx, driverID)
}

// CompleteRide closes out an active ride. Confirmed bookings complete with
// it; still-pending requests are declined. Only the driver may complete.
func (uc *rideUC) CompleteRide(ctx context.Context, driverID, rideID uuid.UUID) (*models.Ride, error) {
	return uc.closeRide(ctx, driverID, rideID, models.RideStatusCompleted)
}

// CancelRide withdraws an active ride. All active bookings are cancelled and
// their passengers notified. Only the driver may cancel.
func (uc *rideUC) CancelRide(ctx context.Context, driverID, rideID uuid.UUID) (*models.Ride, error) {
	return uc.closeRide(ctx, driverID, rideID, models.RideStatusCancelled)
}

func (uc *rideUC) closeRide(ctx context.Context, driverID, rideID uuid.UUID, target models.RideStatus) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, fmt.Errorf("ride %s belongs to another driver: %w", rideID, apperrors.ErrForbidden)
	}
	if ride.Status != models.RideStatusActive {
		return nil, fmt.Errorf("ride is %s: %w", ride.Status, apperrors.ErrInvalidTransition)
	}

	bookings, err := uc.repo.ListActiveBookingsForRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	before := *ride
	updated, err := uc.repo.UpdateRideStatus(ctx, rideID, target)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.RemoveRideLocation(ctx, rideID); err != nil {
		logger.Warn("failed to remove ride from geo index",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
	}

	for i := range bookings {
		uc.closeBookingWithRide(ctx, &bookings[i], updated, target)
	}

	uc.publishRideChange(ctx, models.ChangeOpUpdate, &before, updated)
	return updated, nil
}

// closeBookingWithRide settles one active booking when its ride closes.
// Confirmed bookings complete on ride completion and cancel on ride
// cancellation; pending requests are declined either way.
func (uc *rideUC) closeBookingWithRide(ctx context.Context, booking *models.Booking, ride *models.Ride, rideTarget models.RideStatus) {
	var target models.BookingStatus
	switch {
	case booking.Status == models.BookingStatusPending:
		target = models.BookingStatusDeclined
	case rideTarget == models.RideStatusCompleted:
		target = models.BookingStatusCompleted
	default:
		target = models.BookingStatusCancelled
	}

	before := *booking
	updated, err := uc.repo.UpdateBookingStatus(ctx, booking.ID, target)
	if err != nil {
		logger.Error("failed to settle booking on ride close",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err))
		return
	}

	if booking.Status == models.BookingStatusConfirmed && booking.VerificationCode != "" {
		if err := uc.cache.ReleaseCode(ctx, booking.VerificationCode); err != nil {
			logger.Warn("failed to release verification code",
				logger.String("booking_id", booking.ID.String()),
				logger.Err(err))
		}
	}

	uc.publishBookingChange(ctx, models.ChangeOpUpdate, &before, updated)
	uc.notify(ctx, booking.PassengerID, models.NotificationTypeRide,
		rideCloseTitle(rideTarget),
		fmt.Sprintf("Your ride from %s to %s was %s by the driver", ride.OriginName, ride.DestinationName, rideTarget),
		updated.ID)
}

func rideCloseTitle(target models.RideStatus) string {
	if target == models.RideStatusCompleted {
		return "Ride completed"
	}
	return "Ride cancelled"
}
