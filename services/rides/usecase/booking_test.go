package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
	"github.com/campuspool/campuspool/services/rides/mocks"
)

type testDeps struct {
	repo  *mocks.MockRideRepo
	cache *mocks.MockRideCache
	gw    *mocks.MockRideGW
}

func newTestUC(t *testing.T) (*rideUC, *testDeps, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		repo:  mocks.NewMockRideRepo(ctrl),
		cache: mocks.NewMockRideCache(ctrl),
		gw:    mocks.NewMockRideGW(ctrl),
	}
	cfg := &models.Config{
		Coordinator: models.CoordinatorConfig{NotificationKeep: 50},
	}
	uc := NewRideUC(cfg, deps.repo, deps.cache, deps.gw).(*rideUC)
	return uc, deps, ctrl
}

// allowSideEffects lets best-effort feed publishes and notification dispatches
// happen without pinning their exact shape.
func allowSideEffects(deps *testDeps) {
	deps.gw.EXPECT().PublishRideChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.gw.EXPECT().PublishBookingChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.gw.EXPECT().PublishLiveRideChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.gw.EXPECT().DispatchNotification(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func activeRide(driverID uuid.UUID) *models.Ride {
	return &models.Ride{
		ID:              uuid.New(),
		DriverID:        driverID,
		OriginName:      "North Campus",
		DestinationName: "Downtown",
		AvailableSeats:  3,
		PricePerSeat:    5,
		Status:          models.RideStatusActive,
	}
}

func TestRequestBooking_Success(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()
	allowSideEffects(deps)

	driverID := uuid.New()
	passengerID := uuid.New()
	ride := activeRide(driverID)

	deps.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	deps.repo.EXPECT().HasActiveBooking(gomock.Any(), ride.ID, passengerID).Return(false, nil)
	deps.repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil)

	booking, err := uc.RequestBooking(context.Background(), passengerID, &models.BookingRequest{
		RideID:         ride.ID,
		SeatsRequested: 2,
		PickupPoint:    "Main gate",
	})

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, 2, booking.SeatsRequested)
	assert.Equal(t, 10.0, booking.TotalAmount)
	assert.Empty(t, booking.VerificationCode)
}

func TestRequestBooking_SelfBooking(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	ride := activeRide(driverID)
	deps.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := uc.RequestBooking(context.Background(), driverID, &models.BookingRequest{
		RideID:         ride.ID,
		SeatsRequested: 1,
	})

	assert.ErrorIs(t, err, apperrors.ErrSelfBooking)
}

func TestRequestBooking_DuplicateActiveBooking(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	ride := activeRide(uuid.New())
	deps.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	deps.repo.EXPECT().HasActiveBooking(gomock.Any(), ride.ID, passengerID).Return(true, nil)

	_, err := uc.RequestBooking(context.Background(), passengerID, &models.BookingRequest{
		RideID:         ride.ID,
		SeatsRequested: 1,
	})

	assert.ErrorIs(t, err, apperrors.ErrDuplicateBooking)
}

func TestRequestBooking_CapacityExceeded(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	ride := activeRide(uuid.New())
	deps.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	deps.repo.EXPECT().HasActiveBooking(gomock.Any(), ride.ID, passengerID).Return(false, nil)

	_, err := uc.RequestBooking(context.Background(), passengerID, &models.BookingRequest{
		RideID:         ride.ID,
		SeatsRequested: ride.AvailableSeats + 1,
	})

	assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
}

func TestRequestBooking_RideNotActive(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	ride := activeRide(uuid.New())
	ride.Status = models.RideStatusCompleted
	deps.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := uc.RequestBooking(context.Background(), uuid.New(), &models.BookingRequest{
		RideID:         ride.ID,
		SeatsRequested: 1,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func pendingBooking(rideID, passengerID uuid.UUID) *models.Booking {
	return &models.Booking{
		ID:             uuid.New(),
		RideID:         rideID,
		PassengerID:    passengerID,
		SeatsRequested: 2,
		TotalAmount:    10,
		Status:         models.BookingStatusPending,
	}
}

func TestRespondToBooking_AcceptConfirmsAndSpawnsLiveRide(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()
	allowSideEffects(deps)

	driverID := uuid.New()
	passengerID := uuid.New()
	ride := activeRide(driverID)
	booking := pendingBooking(ride.ID, passengerID)

	deps.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	deps.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	deps.cache.EXPECT().ReserveCode(gomock.Any(), gomock.Any()).Return(true, nil)

	var assignedCode string
	deps.repo.EXPECT().
		RespondToBooking(gomock.Any(), booking.ID, models.BookingStatusConfirmed, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.BookingStatus, code string) (*models.Booking, *models.Ride, error) {
			assignedCode = code
			confirmed := *booking
			confirmed.Status = models.BookingStatusConfirmed
			confirmed.VerificationCode = code
			decremented := *ride
			decremented.AvailableSeats -= booking.SeatsRequested
			return &confirmed, &decremented, nil
		})

	var liveRide *models.LiveRide
	deps.repo.EXPECT().CreateLiveRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lr *models.LiveRide) error {
			liveRide = lr
			return nil
		})

	updated, err := uc.RespondToBooking(context.Background(), driverID, &models.BookingResponse{
		BookingID: booking.ID,
		Decision:  models.BookingDecisionAccept,
	})

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
	assert.True(t, utils.ValidVerificationCode(assignedCode))
	require.NotNil(t, liveRide)
	assert.Equal(t, models.LiveRideStatusConfirmed, liveRide.Status)
	assert.Equal(t, driverID, liveRide.DriverID)
	assert.Equal(t, passengerID, liveRide.PassengerID)
	assert.Equal(t, assignedCode, liveRide.VerificationCode)
}

func TestRespondToBooking_Decline(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()
	allowSideEffects(deps)

	driverID := uuid.New()
	ride := activeRide(driverID)
	booking := pendingBooking(ride.ID, uuid.New())

	deps.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	deps.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	declined := *booking
	declined.Status = models.BookingStatusDeclined
	deps.repo.EXPECT().
		RespondToBooking(gomock.Any(), booking.ID, models.BookingStatusDeclined, "").
		Return(&declined, ride, nil)

	updated, err := uc.RespondToBooking(context.Background(), driverID, &models.BookingResponse{
		BookingID: booking.ID,
		Decision:  models.BookingDecisionDecline,
	})

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusDeclined, updated.Status)
	assert.Empty(t, updated.VerificationCode)
}

func TestRespondToBooking_NotRideDriver(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	ride := activeRide(uuid.New())
	booking := pendingBooking(ride.ID, uuid.New())
	deps.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	deps.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := uc.RespondToBooking(context.Background(), uuid.New(), &models.BookingResponse{
		BookingID: booking.ID,
		Decision:  models.BookingDecisionAccept,
	})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestRespondToBooking_AlreadyResolved(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	ride := activeRide(driverID)
	booking := pendingBooking(ride.ID, uuid.New())
	booking.Status = models.BookingStatusConfirmed

	deps.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	deps.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := uc.RespondToBooking(context.Background(), driverID, &models.BookingResponse{
		BookingID: booking.ID,
		Decision:  models.BookingDecisionAccept,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestRespondToBooking_AcceptRollsBackCodeOnCapacityFailure(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	ride := activeRide(driverID)
	booking := pendingBooking(ride.ID, uuid.New())

	deps.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	deps.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	var reserved string
	deps.cache.EXPECT().ReserveCode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, code string) (bool, error) {
			reserved = code
			return true, nil
		})
	deps.repo.EXPECT().
		RespondToBooking(gomock.Any(), booking.ID, models.BookingStatusConfirmed, gomock.Any()).
		Return(nil, nil, apperrors.ErrCapacityExceeded)
	deps.cache.EXPECT().ReleaseCode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, code string) error {
			assert.Equal(t, reserved, code)
			return nil
		})

	_, err := uc.RespondToBooking(context.Background(), driverID, &models.BookingResponse{
		BookingID: booking.ID,
		Decision:  models.BookingDecisionAccept,
	})

	assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
}

func TestCancelBooking_ConfirmedReleasesSeatsAndLiveRide(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()
	allowSideEffects(deps)

	driverID := uuid.New()
	passengerID := uuid.New()
	ride := activeRide(driverID)
	booking := pendingBooking(ride.ID, passengerID)
	booking.Status = models.BookingStatusConfirmed
	booking.VerificationCode = "AB12CD"

	deps.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	deps.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	cancelled := *booking
	cancelled.Status = models.BookingStatusCancelled
	restored := *ride
	restored.AvailableSeats += booking.SeatsRequested
	deps.repo.EXPECT().CancelBooking(gomock.Any(), booking.ID).Return(&cancelled, &restored, nil)

	deps.cache.EXPECT().ReleaseCode(gomock.Any(), "AB12CD").Return(nil)
	deps.repo.EXPECT().DeleteLiveRideByBooking(gomock.Any(), booking.ID).
		Return(&models.LiveRide{ID: uuid.New(), BookingID: booking.ID}, nil)

	updated, err := uc.CancelBooking(context.Background(), passengerID, booking.ID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)
}

func TestCancelBooking_NotOwnBooking(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	booking := pendingBooking(uuid.New(), uuid.New())
	deps.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)

	_, err := uc.CancelBooking(context.Background(), uuid.New(), booking.ID)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCancelBooking_AlreadyClosed(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	booking := pendingBooking(uuid.New(), passengerID)
	booking.Status = models.BookingStatusDeclined
	deps.repo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)

	_, err := uc.CancelBooking(context.Background(), passengerID, booking.ID)

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}
