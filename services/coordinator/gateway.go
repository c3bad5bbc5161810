package coordinator

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/campuspool/campuspool/services/coordinator RidesAPI

// RidesAPI is the coordinator's view of the rides store. Every call forwards
// the session user's bearer token, carried on ctx via http.WithAuthToken.
// When the store is not configured the gateway runs in disabled mode: reads
// return empty results and writes fail fast with ErrRemoteUnavailable.
type RidesAPI interface {
	Enabled() bool

	CreateRide(ctx context.Context, req *models.CreateRideRequest) (*models.Ride, error)
	ListRides(ctx context.Context, filter models.RideFilter) ([]models.Ride, error)
	MyRides(ctx context.Context) ([]models.Ride, error)
	CompleteRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)

	RequestBooking(ctx context.Context, req *models.BookingRequest) (*models.Booking, error)
	RespondToBooking(ctx context.Context, resp *models.BookingResponse) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	MyBookings(ctx context.Context) ([]models.Booking, error)
	BookingRequests(ctx context.Context) ([]models.Booking, error)

	AdvanceLiveRide(ctx context.Context, req *models.LiveRideAdvanceRequest) (*models.LiveRide, error)
	ActiveLiveRide(ctx context.Context) (*models.LiveRide, error)

	SubmitReview(ctx context.Context, req *models.ReviewRequest) (*models.Review, error)

	Notifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID uuid.UUID) error
}
