package usecase

import (
	"encoding/json"

	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

// ApplyChangeEvent folds one store change into every affected session and
// pushes the matching websocket event. Events are applied idempotently, so a
// redelivered feed message leaves sessions unchanged.
func (m *SessionManager) ApplyChangeEvent(event *models.ChangeEvent) {
	switch event.Table {
	case models.TableRides:
		m.reconcileRide(event)
	case models.TableBookings:
		m.reconcileBooking(event)
	case models.TableLiveRides:
		m.reconcileLiveRide(event)
	case models.TableNotifications:
		m.reconcileNotification(event)
	default:
		logger.Warn("change event for unknown table", logger.String("table", event.Table))
	}
}

// image returns the row carried by the event: the after image, or the before
// image for deletes.
func image(event *models.ChangeEvent) json.RawMessage {
	if len(event.After) > 0 {
		return event.After
	}
	return event.Before
}

// reconcileRide fans a ride change out to every session: the ride list is a
// shared view. An insert the session user authored is skipped while their
// ride mutation is still in flight; the optimistic pipeline owns that slot
// and Confirm will land the authoritative row.
func (m *SessionManager) reconcileRide(event *models.ChangeEvent) {
	var ride models.Ride
	if err := json.Unmarshal(image(event), &ride); err != nil {
		logger.Error("failed to decode ride change", logger.Err(err))
		return
	}

	m.forEach(func(sess *Session) {
		if event.Operation == models.ChangeOpInsert &&
			ride.DriverID == sess.UserID && sess.InFlight(ActionRide) {
			return
		}
		sess.Rides.ApplyConfirmed(event.Operation, ride)
		m.push(sess, constants.EventRidesChanged, ride)
	})
}

// reconcileBooking routes a booking change to its passenger by exact user id
// and to the driver session holding the booked ride. A fresh booking reaches
// the driver as an incoming request event. The passenger authored the insert,
// so it is skipped while their booking mutation is still in flight.
func (m *SessionManager) reconcileBooking(event *models.ChangeEvent) {
	var booking models.Booking
	if err := json.Unmarshal(image(event), &booking); err != nil {
		logger.Error("failed to decode booking change", logger.Err(err))
		return
	}

	if sess, ok := m.Session(booking.PassengerID); ok {
		if event.Operation != models.ChangeOpInsert || !sess.InFlight(ActionBooking) {
			sess.Bookings.ApplyConfirmed(event.Operation, booking)
			m.push(sess, constants.EventBookingsChanged, booking)
		}
	}

	m.forEach(func(sess *Session) {
		if sess.UserID == booking.PassengerID {
			return
		}
		ride, ok := sess.Rides.Get(booking.RideID.String())
		if !ok || ride.DriverID != sess.UserID {
			return
		}
		sess.Bookings.ApplyConfirmed(event.Operation, booking)
		if event.Operation == models.ChangeOpInsert {
			m.push(sess, constants.EventBookingRequest, booking)
		} else {
			m.push(sess, constants.EventBookingsChanged, booking)
		}
	})
}

// reconcileLiveRide routes to exactly the two participants
func (m *SessionManager) reconcileLiveRide(event *models.ChangeEvent) {
	var liveRide models.LiveRide
	if err := json.Unmarshal(image(event), &liveRide); err != nil {
		logger.Error("failed to decode live ride change", logger.Err(err))
		return
	}

	deliver := func(sess *Session) {
		sess.LiveRides.ApplyConfirmed(event.Operation, liveRide)
		m.push(sess, constants.EventLiveRideUpdate, liveRide)
	}
	if sess, ok := m.Session(liveRide.DriverID); ok {
		deliver(sess)
	}
	if sess, ok := m.Session(liveRide.PassengerID); ok {
		deliver(sess)
	}
}

// reconcileNotification routes to the single recipient
func (m *SessionManager) reconcileNotification(event *models.ChangeEvent) {
	var notification models.Notification
	if err := json.Unmarshal(image(event), &notification); err != nil {
		logger.Error("failed to decode notification change", logger.Err(err))
		return
	}

	sess, ok := m.Session(notification.UserID)
	if !ok {
		return
	}
	sess.Notifications.Add(notification)
	m.push(sess, constants.EventNotification, notification)
}
