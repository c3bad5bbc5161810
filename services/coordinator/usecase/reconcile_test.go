package usecase

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

func changeEvent(t *testing.T, table string, op models.ChangeOperation, row interface{}) *models.ChangeEvent {
	t.Helper()
	payload, err := json.Marshal(row)
	require.NoError(t, err)

	event := &models.ChangeEvent{Table: table, Operation: op}
	if op == models.ChangeOpDelete {
		event.Before = payload
	} else {
		event.After = payload
	}
	return event
}

func TestApplyChangeEvent_RideBroadcastsToAllSessions(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	first := startSession(manager, api, uuid.New())
	second := startSession(manager, api, uuid.New())

	ride := models.Ride{ID: uuid.New(), DriverID: uuid.New(), Status: models.RideStatusActive}
	manager.ApplyChangeEvent(changeEvent(t, models.TableRides, models.ChangeOpInsert, ride))

	_, ok := first.Rides.Get(ride.ID.String())
	assert.True(t, ok)
	_, ok = second.Rides.Get(ride.ID.String())
	assert.True(t, ok)
}

func TestApplyChangeEvent_RideDeleteRemovesFromCache(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	sess := startSession(manager, api, uuid.New())

	ride := models.Ride{ID: uuid.New(), Status: models.RideStatusActive}
	manager.ApplyChangeEvent(changeEvent(t, models.TableRides, models.ChangeOpInsert, ride))
	manager.ApplyChangeEvent(changeEvent(t, models.TableRides, models.ChangeOpDelete, ride))

	_, ok := sess.Rides.Get(ride.ID.String())
	assert.False(t, ok)
}

func TestApplyChangeEvent_ReplayedEventIsIdempotent(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	sess := startSession(manager, api, uuid.New())

	ride := models.Ride{ID: uuid.New(), Status: models.RideStatusActive}
	event := changeEvent(t, models.TableRides, models.ChangeOpInsert, ride)
	manager.ApplyChangeEvent(event)
	manager.ApplyChangeEvent(event)

	assert.Equal(t, 1, sess.Rides.Len())
}

func TestApplyChangeEvent_AuthoredRideInsertSkippedWhileInFlight(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	author := startSession(manager, api, authorID)
	other := startSession(manager, api, uuid.New())

	// the author's create is mid-flight: optimistic entry applied, no
	// server id yet
	require.NoError(t, author.begin(ActionRide))
	author.Rides.ApplyOptimistic("temp_pending", models.Ride{DriverID: authorID, Status: models.RideStatusActive})

	ride := models.Ride{ID: uuid.New(), DriverID: authorID, Status: models.RideStatusActive}
	manager.ApplyChangeEvent(changeEvent(t, models.TableRides, models.ChangeOpInsert, ride))

	// the optimistic pipeline owns the author's slot; only the temp entry
	// is visible until Confirm runs
	assert.Equal(t, 0, author.Rides.Len())
	assert.Len(t, author.Rides.Snapshot(), 1)

	_, ok := other.Rides.Get(ride.ID.String())
	assert.True(t, ok, "other sessions still receive the insert")

	// a redelivery after the mutation settles applies normally
	author.end(ActionRide)
	author.Rides.Confirm("temp_pending", ride)
	manager.ApplyChangeEvent(changeEvent(t, models.TableRides, models.ChangeOpInsert, ride))
	assert.Equal(t, 1, author.Rides.Len())
	assert.Len(t, author.Rides.Snapshot(), 1)
}

func TestApplyChangeEvent_AuthoredBookingInsertSkippedWhileInFlight(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	passengerID := uuid.New()

	driverSess := startSession(manager, api, driverID)
	passengerSess := startSession(manager, api, passengerID)

	ride := models.Ride{ID: uuid.New(), DriverID: driverID, Status: models.RideStatusActive}
	driverSess.Rides.ApplyConfirmed(models.ChangeOpInsert, ride)

	require.NoError(t, passengerSess.begin(ActionBooking))

	booking := models.Booking{
		ID:          uuid.New(),
		RideID:      ride.ID,
		PassengerID: passengerID,
		Status:      models.BookingStatusPending,
	}
	manager.ApplyChangeEvent(changeEvent(t, models.TableBookings, models.ChangeOpInsert, booking))

	_, ok := passengerSess.Bookings.Get(booking.ID.String())
	assert.False(t, ok, "author's insert is skipped while the booking mutation is in flight")
	_, ok = driverSess.Bookings.Get(booking.ID.String())
	assert.True(t, ok, "the driver's incoming request is unaffected")

	// settled: a redelivery applies to the passenger too
	passengerSess.end(ActionBooking)
	manager.ApplyChangeEvent(changeEvent(t, models.TableBookings, models.ChangeOpInsert, booking))
	_, ok = passengerSess.Bookings.Get(booking.ID.String())
	assert.True(t, ok)
}

func TestApplyChangeEvent_AuthoredUpdateStillApplies(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	author := startSession(manager, api, authorID)

	require.NoError(t, author.begin(ActionRide))
	defer author.end(ActionRide)

	// only inserts are deferred to the pipeline; updates are server-won
	ride := models.Ride{ID: uuid.New(), DriverID: authorID, Status: models.RideStatusCompleted}
	manager.ApplyChangeEvent(changeEvent(t, models.TableRides, models.ChangeOpUpdate, ride))

	got, ok := author.Rides.Get(ride.ID.String())
	require.True(t, ok)
	assert.Equal(t, models.RideStatusCompleted, got.Status)
}

func TestApplyChangeEvent_BookingRoutedToPassengerAndDriverOnly(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	passengerID := uuid.New()

	driverSess := startSession(manager, api, driverID)
	passengerSess := startSession(manager, api, passengerID)
	bystanderSess := startSession(manager, api, uuid.New())

	ride := models.Ride{ID: uuid.New(), DriverID: driverID, Status: models.RideStatusActive}
	manager.ApplyChangeEvent(changeEvent(t, models.TableRides, models.ChangeOpInsert, ride))

	booking := models.Booking{
		ID:          uuid.New(),
		RideID:      ride.ID,
		PassengerID: passengerID,
		Status:      models.BookingStatusPending,
	}
	manager.ApplyChangeEvent(changeEvent(t, models.TableBookings, models.ChangeOpInsert, booking))

	_, ok := passengerSess.Bookings.Get(booking.ID.String())
	assert.True(t, ok, "passenger should receive own booking")
	_, ok = driverSess.Bookings.Get(booking.ID.String())
	assert.True(t, ok, "driver of the booked ride should receive the booking")
	_, ok = bystanderSess.Bookings.Get(booking.ID.String())
	assert.False(t, ok, "unrelated sessions should not receive the booking")
}

func TestApplyChangeEvent_BookingUpdateReachesDriver(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	driverSess := startSession(manager, api, driverID)

	ride := models.Ride{ID: uuid.New(), DriverID: driverID, Status: models.RideStatusActive}
	driverSess.Rides.ApplyConfirmed(models.ChangeOpInsert, ride)

	booking := models.Booking{
		ID:          uuid.New(),
		RideID:      ride.ID,
		PassengerID: uuid.New(),
		Status:      models.BookingStatusCancelled,
	}
	manager.ApplyChangeEvent(changeEvent(t, models.TableBookings, models.ChangeOpUpdate, booking))

	got, ok := driverSess.Bookings.Get(booking.ID.String())
	require.True(t, ok)
	assert.Equal(t, models.BookingStatusCancelled, got.Status)
}

func TestApplyChangeEvent_LiveRideReachesBothParticipants(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	passengerID := uuid.New()

	driverSess := startSession(manager, api, driverID)
	passengerSess := startSession(manager, api, passengerID)
	bystanderSess := startSession(manager, api, uuid.New())

	liveRide := models.LiveRide{
		ID:          uuid.New(),
		DriverID:    driverID,
		PassengerID: passengerID,
		Status:      models.LiveRideStatusInTransit,
	}
	manager.ApplyChangeEvent(changeEvent(t, models.TableLiveRides, models.ChangeOpUpdate, liveRide))

	got, ok := driverSess.LiveRides.Get(liveRide.ID.String())
	require.True(t, ok)
	assert.Equal(t, models.LiveRideStatusInTransit, got.Status)

	_, ok = passengerSess.LiveRides.Get(liveRide.ID.String())
	assert.True(t, ok)
	_, ok = bystanderSess.LiveRides.Get(liveRide.ID.String())
	assert.False(t, ok)
}

func TestApplyChangeEvent_LiveRideDeleteClearsParticipantCaches(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	sess := startSession(manager, api, driverID)

	liveRide := models.LiveRide{ID: uuid.New(), DriverID: driverID, PassengerID: uuid.New()}
	sess.LiveRides.ApplyConfirmed(models.ChangeOpInsert, liveRide)

	manager.ApplyChangeEvent(changeEvent(t, models.TableLiveRides, models.ChangeOpDelete, liveRide))

	_, ok := sess.LiveRides.Get(liveRide.ID.String())
	assert.False(t, ok)
}

func TestApplyChangeEvent_NotificationReachesRecipientOnly(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	recipientID := uuid.New()
	recipientSess := startSession(manager, api, recipientID)
	otherSess := startSession(manager, api, uuid.New())

	notification := models.Notification{ID: uuid.New(), UserID: recipientID, Title: "Booking confirmed"}
	manager.ApplyChangeEvent(changeEvent(t, models.TableNotifications, models.ChangeOpInsert, notification))

	assert.Len(t, recipientSess.Notifications.Snapshot(), 1)
	assert.Len(t, otherSess.Notifications.Snapshot(), 0)
}

func TestApplyChangeEvent_EndedSessionStopsReceiving(t *testing.T) {
	manager, api, ctrl := newTestManager(t)
	defer ctrl.Finish()

	userID := uuid.New()
	sess := startSession(manager, api, userID)
	manager.EndSession(userID)

	ride := models.Ride{ID: uuid.New(), Status: models.RideStatusActive}
	manager.ApplyChangeEvent(changeEvent(t, models.TableRides, models.ChangeOpInsert, ride))

	_, ok := sess.Rides.Get(ride.ID.String())
	assert.False(t, ok)
}
