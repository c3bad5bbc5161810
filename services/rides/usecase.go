package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/campuspool/campuspool/services/rides RideUC

// RideUC is the sole authority on ride and booking status transitions.
// All precondition violations surface as apperrors kinds, never silent no-ops.
type RideUC interface {
	// rides
	CreateRide(ctx context.Context, driverID uuid.UUID, req *models.CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error)
	ListRides(ctx context.Context, filter models.RideFilter) ([]models.Ride, error)
	NearbyRides(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyRide, error)
	MyRides(ctx context.Context, driverID uuid.UUID) ([]models.Ride, error)
	CompleteRide(ctx context.Context, driverID, rideID uuid.UUID) (*models.Ride, error)
	CancelRide(ctx context.Context, driverID, rideID uuid.UUID) (*models.Ride, error)

	// bookings
	RequestBooking(ctx context.Context, passengerID uuid.UUID, req *models.BookingRequest) (*models.Booking, error)
	RespondToBooking(ctx context.Context, driverID uuid.UUID, resp *models.BookingResponse) (*models.Booking, error)
	CancelBooking(ctx context.Context, passengerID, bookingID uuid.UUID) (*models.Booking, error)
	MyBookings(ctx context.Context, passengerID uuid.UUID) ([]models.Booking, error)
	BookingRequests(ctx context.Context, driverID uuid.UUID) ([]models.Booking, error)

	// live rides
	AdvanceLiveRide(ctx context.Context, driverID uuid.UUID, req *models.LiveRideAdvanceRequest) (*models.LiveRide, error)
	ActiveLiveRide(ctx context.Context, userID uuid.UUID) (*models.LiveRide, error)

	// reviews
	SubmitReview(ctx context.Context, reviewerID uuid.UUID, req *models.ReviewRequest) (*models.Review, error)

	// notifications
	Notifications(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error
	// StoreNotification persists a dispatched notification and publishes its
	// change event; called by the NSQ worker, not by handlers.
	StoreNotification(ctx context.Context, notification *models.Notification) error

	// stats
	Stats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error)
}
