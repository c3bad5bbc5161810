package rides

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/campuspool/campuspool/services/rides RideRepo

// RideRepo is the persistence boundary of the rides service. Every entity is
// exclusively owned by the store; callers only ever see copies.
type RideRepo interface {
	// rides
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error)
	GetRidesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Ride, error)
	ListRides(ctx context.Context, filter models.RideFilter) ([]models.Ride, error)
	ListRidesByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Ride, error)
	UpdateRideStatus(ctx context.Context, id uuid.UUID, status models.RideStatus) (*models.Ride, error)

	// bookings
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListBookingsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]models.Booking, error)
	ListPendingBookingsForDriver(ctx context.Context, driverID uuid.UUID) ([]models.Booking, error)
	ListActiveBookingsForRide(ctx context.Context, rideID uuid.UUID) ([]models.Booking, error)
	HasActiveBooking(ctx context.Context, rideID, passengerID uuid.UUID) (bool, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error)
	// RespondToBooking applies the accept/decline transition and, on accept,
	// the seat decrement in one transaction so a concurrent confirmation can
	// never oversell the ride.
	RespondToBooking(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus, verificationCode string) (*models.Booking, *models.Ride, error)
	// CancelBooking cancels a pending or confirmed booking and, when seats had
	// been granted, restores them to the ride in the same transaction.
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, *models.Ride, error)

	// live rides
	CreateLiveRide(ctx context.Context, liveRide *models.LiveRide) error
	GetLiveRide(ctx context.Context, id uuid.UUID) (*models.LiveRide, error)
	GetActiveLiveRideForUser(ctx context.Context, userID uuid.UUID) (*models.LiveRide, error)
	AdvanceLiveRide(ctx context.Context, id uuid.UUID, status models.LiveRideStatus, at time.Time) (*models.LiveRide, error)
	DeleteLiveRideByBooking(ctx context.Context, bookingID uuid.UUID) (*models.LiveRide, error)

	// reviews and ratings
	CreateReview(ctx context.Context, review *models.Review) error
	HasReview(ctx context.Context, rideID, reviewerID, reviewedUserID uuid.UUID) (bool, error)
	CanReview(ctx context.Context, rideID, reviewerID uuid.UUID) (bool, error)
	AverageRating(ctx context.Context, userID uuid.UUID) (float64, int, error)
	UpdateUserRating(ctx context.Context, userID uuid.UUID, rating float64) error

	// notifications
	CreateNotification(ctx context.Context, notification *models.Notification) error
	ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error

	// stats
	UserStats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error)
}

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks github.com/campuspool/campuspool/services/rides RideCache

// RideCache is the Redis-backed side index: open verification codes and the
// geo index for nearby-ride search.
type RideCache interface {
	// ReserveCode atomically claims a verification code among open bookings.
	// It returns false when the code is already held by another open booking.
	ReserveCode(ctx context.Context, code string) (bool, error)
	ReleaseCode(ctx context.Context, code string) error

	IndexRideLocation(ctx context.Context, rideID uuid.UUID, lat, lng float64) error
	RemoveRideLocation(ctx context.Context, rideID uuid.UUID) error
	// NearbyRideIDs returns ride ids within radiusKm of a point, nearest
	// first, with their distances in kilometers.
	NearbyRideIDs(ctx context.Context, lat, lng, radiusKm float64) (map[uuid.UUID]float64, error)
}
