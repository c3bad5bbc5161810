package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/coordinator/mocks"
)

func newTestManager(t *testing.T) (*SessionManager, *mocks.MockRidesAPI, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockRidesAPI(ctrl)
	cfg := &models.Config{
		Coordinator: models.CoordinatorConfig{
			RequestTimeout:   5,
			NotificationKeep: 50,
		},
	}
	return NewSessionManager(cfg, api), api, ctrl
}

// startSession registers a session without hitting the store. A nil websocket
// client means pushes are silently dropped, which is fine for these tests.
func startSession(m *SessionManager, api *mocks.MockRidesAPI, userID uuid.UUID) *Session {
	api.EXPECT().Enabled().Return(false)
	return m.StartSession(context.Background(), userID, "test-token", nil)
}

func sampleRideRequest() *models.CreateRideRequest {
	return &models.CreateRideRequest{
		OriginName:      "North Campus",
		DestinationName: "Downtown",
		AvailableSeats:  3,
		PricePerSeat:    5,
	}
}

func TestCreateRide_ConfirmsOptimisticEntry(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sess := startSession(manager, api, userID)

	confirmed := &models.Ride{
		ID:             uuid.New(),
		DriverID:       userID,
		OriginName:     "North Campus",
		AvailableSeats: 3,
		Status:         models.RideStatusActive,
	}
	api.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.CreateRideRequest) (*models.Ride, error) {
			// the prediction must be visible while the call is in flight
			assert.Equal(t, 1, sess.Rides.PendingCount())
			return confirmed, nil
		})

	ride, err := manager.CreateRide(context.Background(), sess, sampleRideRequest())
	require.NoError(t, err)
	assert.Equal(t, confirmed.ID, ride.ID)

	assert.Equal(t, 0, sess.Rides.PendingCount())
	got, ok := sess.Rides.Get(confirmed.ID.String())
	require.True(t, ok)
	assert.Equal(t, confirmed.DriverID, got.DriverID)
	assert.False(t, sess.InFlight(ActionRide))
}

func TestCreateRide_RollsBackOnFailure(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	sess := startSession(manager, api, uuid.New())

	api.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrRemoteUnavailable)

	_, err := manager.CreateRide(context.Background(), sess, sampleRideRequest())
	require.Error(t, err)

	assert.Equal(t, 0, sess.Rides.PendingCount())
	assert.Equal(t, 0, sess.Rides.Len())
	assert.False(t, sess.InFlight(ActionRide))
}

func TestCreateRide_RejectsSecondInFlightAction(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	sess := startSession(manager, api, uuid.New())

	require.NoError(t, sess.begin(ActionRide))
	defer sess.end(ActionRide)

	_, err := manager.CreateRide(context.Background(), sess, sampleRideRequest())
	assert.ErrorIs(t, err, apperrors.ErrOperationInProgress)
}

func TestRequestBooking_PredictsTotalFromCachedRide(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sess := startSession(manager, api, userID)

	ride := models.Ride{ID: uuid.New(), DriverID: uuid.New(), PricePerSeat: 4, Status: models.RideStatusActive}
	sess.Rides.ApplyConfirmed(models.ChangeOpInsert, ride)

	req := &models.BookingRequest{RideID: ride.ID, SeatsRequested: 2}
	confirmed := &models.Booking{
		ID:          uuid.New(),
		RideID:      ride.ID,
		PassengerID: userID,
		TotalAmount: 8,
		Status:      models.BookingStatusPending,
	}

	api.EXPECT().RequestBooking(gomock.Any(), req).
		DoAndReturn(func(ctx context.Context, _ *models.BookingRequest) (*models.Booking, error) {
			snapshot := sess.Bookings.Snapshot()
			require.Len(t, snapshot, 1)
			for _, predicted := range snapshot {
				assert.Equal(t, 8.0, predicted.TotalAmount)
				assert.Equal(t, models.BookingStatusPending, predicted.Status)
			}
			return confirmed, nil
		})

	booking, err := manager.RequestBooking(context.Background(), sess, req)
	require.NoError(t, err)
	assert.Equal(t, confirmed.ID, booking.ID)

	got, ok := sess.Bookings.Get(confirmed.ID.String())
	require.True(t, ok)
	assert.Equal(t, 8.0, got.TotalAmount)
	assert.Equal(t, 0, sess.Bookings.PendingCount())
}

func TestRequestBooking_SelfBookingFailsWithoutRemoteCall(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sess := startSession(manager, api, userID)

	ownRide := models.Ride{ID: uuid.New(), DriverID: userID, Status: models.RideStatusActive}
	sess.Rides.ApplyConfirmed(models.ChangeOpInsert, ownRide)

	// no RequestBooking expectation: the store must not be called
	_, err := manager.RequestBooking(context.Background(), sess, &models.BookingRequest{
		RideID:         ownRide.ID,
		SeatsRequested: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrSelfBooking)
	assert.Equal(t, 0, sess.Bookings.PendingCount())
	assert.Equal(t, 0, sess.Bookings.Len())
	assert.False(t, sess.InFlight(ActionBooking))
}

func TestRequestBooking_RollsBackOnFailure(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	sess := startSession(manager, api, uuid.New())

	api.EXPECT().RequestBooking(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrCapacityExceeded)

	_, err := manager.RequestBooking(context.Background(), sess, &models.BookingRequest{
		RideID:         uuid.New(),
		SeatsRequested: 2,
	})
	assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
	assert.Equal(t, 0, sess.Bookings.PendingCount())
	assert.Equal(t, 0, sess.Bookings.Len())
}

func TestRespondToBooking_PredictsStatusFlipOnCachedBooking(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	sess := startSession(manager, api, driverID)

	booking := models.Booking{
		ID:          uuid.New(),
		RideID:      uuid.New(),
		PassengerID: uuid.New(),
		Status:      models.BookingStatusPending,
	}
	sess.Bookings.ApplyConfirmed(models.ChangeOpInsert, booking)

	resp := &models.BookingResponse{BookingID: booking.ID, Decision: models.BookingDecisionAccept}
	confirmed := booking
	confirmed.Status = models.BookingStatusConfirmed
	confirmed.VerificationCode = "A1B2C3"

	api.EXPECT().RespondToBooking(gomock.Any(), resp).
		DoAndReturn(func(ctx context.Context, _ *models.BookingResponse) (*models.Booking, error) {
			predicted, ok := sess.Bookings.Get(booking.ID.String())
			require.True(t, ok)
			assert.Equal(t, models.BookingStatusConfirmed, predicted.Status)
			return &confirmed, nil
		})

	got, err := manager.RespondToBooking(context.Background(), sess, resp)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, got.Status)

	cached, ok := sess.Bookings.Get(booking.ID.String())
	require.True(t, ok)
	assert.Equal(t, "A1B2C3", cached.VerificationCode)
	assert.Equal(t, 0, sess.Bookings.PendingCount())
}

func TestRespondToBooking_RestoresCachedStatusOnFailure(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	sess := startSession(manager, api, uuid.New())

	booking := models.Booking{ID: uuid.New(), Status: models.BookingStatusPending}
	sess.Bookings.ApplyConfirmed(models.ChangeOpInsert, booking)

	api.EXPECT().RespondToBooking(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("store rejected response"))

	_, err := manager.RespondToBooking(context.Background(), sess, &models.BookingResponse{
		BookingID: booking.ID,
		Decision:  models.BookingDecisionAccept,
	})
	require.Error(t, err)

	got, ok := sess.Bookings.Get(booking.ID.String())
	require.True(t, ok)
	assert.Equal(t, models.BookingStatusPending, got.Status)
	assert.Equal(t, 0, sess.Bookings.PendingCount())
}

func TestCancelBooking_UncachedFallsBackToConfirmedApply(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	sess := startSession(manager, api, uuid.New())

	bookingID := uuid.New()
	cancelled := &models.Booking{ID: bookingID, Status: models.BookingStatusCancelled}
	api.EXPECT().CancelBooking(gomock.Any(), bookingID).Return(cancelled, nil)

	got, err := manager.CancelBooking(context.Background(), sess, bookingID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, got.Status)

	cached, ok := sess.Bookings.Get(bookingID.String())
	require.True(t, ok)
	assert.Equal(t, models.BookingStatusCancelled, cached.Status)
}

func TestAdvanceLiveRide_ConfirmsPredictedStatus(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	sess := startSession(manager, api, driverID)

	liveRide := models.LiveRide{
		ID:       uuid.New(),
		DriverID: driverID,
		Status:   models.LiveRideStatusConfirmed,
	}
	sess.LiveRides.ApplyConfirmed(models.ChangeOpInsert, liveRide)

	req := &models.LiveRideAdvanceRequest{
		LiveRideID: liveRide.ID,
		NextStatus: models.LiveRideStatusDriverArriving,
	}
	advanced := liveRide
	advanced.Status = models.LiveRideStatusDriverArriving

	api.EXPECT().AdvanceLiveRide(gomock.Any(), req).Return(&advanced, nil)

	got, err := manager.AdvanceLiveRide(context.Background(), sess, req)
	require.NoError(t, err)
	assert.Equal(t, models.LiveRideStatusDriverArriving, got.Status)

	cached, ok := sess.LiveRides.Get(liveRide.ID.String())
	require.True(t, ok)
	assert.Equal(t, models.LiveRideStatusDriverArriving, cached.Status)
	assert.Equal(t, 0, sess.LiveRides.PendingCount())
}

func TestAdvanceLiveRide_GuardIsIndependentOfBookingActions(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	sess := startSession(manager, api, uuid.New())

	// a booking action in flight must not block live ride actions
	require.NoError(t, sess.begin(ActionBooking))
	defer sess.end(ActionBooking)

	advanced := &models.LiveRide{ID: uuid.New(), Status: models.LiveRideStatusDriverArriving}
	api.EXPECT().AdvanceLiveRide(gomock.Any(), gomock.Any()).Return(advanced, nil)

	_, err := manager.AdvanceLiveRide(context.Background(), sess, &models.LiveRideAdvanceRequest{
		LiveRideID: advanced.ID,
		NextStatus: models.LiveRideStatusDriverArriving,
	})
	assert.NoError(t, err)
}

func TestMarkNotificationRead_UpdatesFeedAfterRemoteSuccess(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sess := startSession(manager, api, userID)

	notification := models.Notification{ID: uuid.New(), UserID: userID}
	sess.Notifications.Add(notification)
	require.Equal(t, 1, sess.Notifications.UnreadCount())

	api.EXPECT().MarkNotificationRead(gomock.Any(), notification.ID).Return(nil)

	require.NoError(t, manager.MarkNotificationRead(context.Background(), sess, notification.ID))
	assert.Equal(t, 0, sess.Notifications.UnreadCount())
}

func TestMarkNotificationRead_KeepsFeedOnRemoteFailure(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sess := startSession(manager, api, userID)

	notification := models.Notification{ID: uuid.New(), UserID: userID}
	sess.Notifications.Add(notification)

	api.EXPECT().MarkNotificationRead(gomock.Any(), notification.ID).
		Return(apperrors.ErrRemoteUnavailable)

	err := manager.MarkNotificationRead(context.Background(), sess, notification.ID)
	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)
	assert.Equal(t, 1, sess.Notifications.UnreadCount())
}

func TestStartSession_HydratesFromStore(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	userID := uuid.New()
	ride := models.Ride{ID: uuid.New(), Status: models.RideStatusActive}
	booking := models.Booking{ID: uuid.New(), PassengerID: userID, Status: models.BookingStatusPending}
	notification := models.Notification{ID: uuid.New(), UserID: userID}

	api.EXPECT().Enabled().Return(true)
	api.EXPECT().ListRides(gomock.Any(), gomock.Any()).Return([]models.Ride{ride}, nil)
	api.EXPECT().MyBookings(gomock.Any()).Return([]models.Booking{booking}, nil)
	api.EXPECT().ActiveLiveRide(gomock.Any()).Return(nil, nil)
	api.EXPECT().Notifications(gomock.Any()).Return([]models.Notification{notification}, nil)

	sess := manager.StartSession(context.Background(), userID, "token", nil)
	assert.Equal(t, 1, sess.Rides.Len())
	assert.Equal(t, 1, sess.Bookings.Len())
	assert.Equal(t, 0, sess.LiveRides.Len())
	assert.Len(t, sess.Notifications.Snapshot(), 1)
}

func TestStartSession_HydrationFailureDegradesToEmpty(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	api.EXPECT().Enabled().Return(true)
	api.EXPECT().ListRides(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrRemoteUnavailable)
	api.EXPECT().MyBookings(gomock.Any()).Return(nil, apperrors.ErrRemoteUnavailable)
	api.EXPECT().ActiveLiveRide(gomock.Any()).Return(nil, apperrors.ErrRemoteUnavailable)
	api.EXPECT().Notifications(gomock.Any()).Return(nil, apperrors.ErrRemoteUnavailable)

	sess := manager.StartSession(context.Background(), uuid.New(), "token", nil)
	assert.Equal(t, 0, sess.Rides.Len())
	assert.Equal(t, 0, sess.Bookings.Len())
	assert.Len(t, sess.Notifications.Snapshot(), 0)
}
