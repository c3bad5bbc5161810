package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

// ActionResult is pushed back to the browser after every mutation, carrying
// the temp id so the client can reconcile its own optimistic entry.
type ActionResult struct {
	Action  string      `json:"action"`
	TempID  string      `json:"temp_id,omitempty"`
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func (m *SessionManager) pushResult(sess *Session, action, temp string, data interface{}, err error) {
	result := ActionResult{Action: action, TempID: temp, Success: err == nil, Data: data}
	if err != nil {
		result.Error = err.Error()
		result.Data = nil
	}
	m.push(sess, constants.EventActionResult, result)
}

// CreateRide runs the optimistic create pipeline: predict the ride locally,
// submit, then swap the prediction for the store's version or roll it back.
func (m *SessionManager) CreateRide(ctx context.Context, sess *Session, req *models.CreateRideRequest) (*models.Ride, error) {
	if err := sess.begin(ActionRide); err != nil {
		m.pushResult(sess, constants.EventCreateRide, "", nil, err)
		return nil, err
	}
	defer sess.end(ActionRide)

	temp := tempID()
	predicted := models.Ride{
		DriverID:        sess.UserID,
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
	sess.Rides.ApplyOptimistic(temp, predicted)

	callCtx, cancel := context.WithTimeout(m.authCtx(ctx, sess), m.callTimeout())
	defer cancel()

	ride, err := m.api.CreateRide(callCtx, req)
	if err != nil {
		sess.Rides.Rollback(temp)
		m.pushResult(sess, constants.EventCreateRide, temp, nil, err)
		return nil, err
	}

	sess.Rides.Confirm(temp, *ride)
	m.pushResult(sess, constants.EventCreateRide, temp, ride, nil)
	return ride, nil
}

// RequestBooking runs the optimistic booking pipeline
func (m *SessionManager) RequestBooking(ctx context.Context, sess *Session, req *models.BookingRequest) (*models.Booking, error) {
	if err := sess.begin(ActionBooking); err != nil {
		m.pushResult(sess, constants.EventRequestBooking, "", nil, err)
		return nil, err
	}
	defer sess.end(ActionBooking)

	ride, rideCached := sess.Rides.Get(req.RideID.String())
	if rideCached && ride.DriverID == sess.UserID {
		// self-booking never reaches the store, no optimistic entry either
		err := apperrors.ErrSelfBooking
		m.pushResult(sess, constants.EventRequestBooking, "", nil, err)
		return nil, err
	}

	temp := tempID()
	predicted := models.Booking{
		RideID:         req.RideID,
		PassengerID:    sess.UserID,
		SeatsRequested: req.SeatsRequested,
		PickupPoint:    req.PickupPoint,
		Message:        req.Message,
		Status:         models.BookingStatusPending,
	}
	if rideCached {
		predicted.TotalAmount = float64(req.SeatsRequested) * ride.PricePerSeat
	}
	sess.Bookings.ApplyOptimistic(temp, predicted)

	callCtx, cancel := context.WithTimeout(m.authCtx(ctx, sess), m.callTimeout())
	defer cancel()

	booking, err := m.api.RequestBooking(callCtx, req)
	if err != nil {
		sess.Bookings.Rollback(temp)
		m.pushResult(sess, constants.EventRequestBooking, temp, nil, err)
		return nil, err
	}

	sess.Bookings.Confirm(temp, *booking)
	m.pushResult(sess, constants.EventRequestBooking, temp, booking, nil)
	return booking, nil
}

// RespondToBooking applies a driver decision, predicting the status flip when
// the booking is already cached.
func (m *SessionManager) RespondToBooking(ctx context.Context, sess *Session, resp *models.BookingResponse) (*models.Booking, error) {
	if err := sess.begin(ActionBooking); err != nil {
		m.pushResult(sess, constants.EventRespondBooking, "", nil, err)
		return nil, err
	}
	defer sess.end(ActionBooking)

	temp := tempID()
	predicted, cached := sess.Bookings.Get(resp.BookingID.String())
	if cached {
		if resp.Decision == models.BookingDecisionAccept {
			predicted.Status = models.BookingStatusConfirmed
		} else {
			predicted.Status = models.BookingStatusDeclined
		}
		sess.Bookings.ApplyOptimistic(temp, predicted)
	}

	callCtx, cancel := context.WithTimeout(m.authCtx(ctx, sess), m.callTimeout())
	defer cancel()

	booking, err := m.api.RespondToBooking(callCtx, resp)
	if err != nil {
		if cached {
			sess.Bookings.Rollback(temp)
		}
		m.pushResult(sess, constants.EventRespondBooking, temp, nil, err)
		return nil, err
	}

	if cached {
		sess.Bookings.Confirm(temp, *booking)
	} else {
		sess.Bookings.ApplyConfirmed(models.ChangeOpUpdate, *booking)
	}
	m.pushResult(sess, constants.EventRespondBooking, temp, booking, nil)
	return booking, nil
}

// CancelBooking withdraws the user's own booking
func (m *SessionManager) CancelBooking(ctx context.Context, sess *Session, bookingID uuid.UUID) (*models.Booking, error) {
	if err := sess.begin(ActionBooking); err != nil {
		m.pushResult(sess, constants.EventCancelBooking, "", nil, err)
		return nil, err
	}
	defer sess.end(ActionBooking)

	temp := tempID()
	predicted, cached := sess.Bookings.Get(bookingID.String())
	if cached {
		predicted.Status = models.BookingStatusCancelled
		sess.Bookings.ApplyOptimistic(temp, predicted)
	}

	callCtx, cancel := context.WithTimeout(m.authCtx(ctx, sess), m.callTimeout())
	defer cancel()

	booking, err := m.api.CancelBooking(callCtx, bookingID)
	if err != nil {
		if cached {
			sess.Bookings.Rollback(temp)
		}
		m.pushResult(sess, constants.EventCancelBooking, temp, nil, err)
		return nil, err
	}

	if cached {
		sess.Bookings.Confirm(temp, *booking)
	} else {
		sess.Bookings.ApplyConfirmed(models.ChangeOpUpdate, *booking)
	}
	m.pushResult(sess, constants.EventCancelBooking, temp, booking, nil)
	return booking, nil
}

// AdvanceLiveRide predicts the next tracking status locally, then submits
func (m *SessionManager) AdvanceLiveRide(ctx context.Context, sess *Session, req *models.LiveRideAdvanceRequest) (*models.LiveRide, error) {
	if err := sess.begin(ActionLiveRide); err != nil {
		m.pushResult(sess, constants.EventAdvanceRide, "", nil, err)
		return nil, err
	}
	defer sess.end(ActionLiveRide)

	temp := tempID()
	predicted, cached := sess.LiveRides.Get(req.LiveRideID.String())
	if cached {
		predicted.Status = req.NextStatus
		sess.LiveRides.ApplyOptimistic(temp, predicted)
	}

	callCtx, cancel := context.WithTimeout(m.authCtx(ctx, sess), m.callTimeout())
	defer cancel()

	liveRide, err := m.api.AdvanceLiveRide(callCtx, req)
	if err != nil {
		if cached {
			sess.LiveRides.Rollback(temp)
		}
		m.pushResult(sess, constants.EventAdvanceRide, temp, nil, err)
		return nil, err
	}

	if cached {
		sess.LiveRides.Confirm(temp, *liveRide)
	} else {
		sess.LiveRides.ApplyConfirmed(models.ChangeOpUpdate, *liveRide)
	}
	m.pushResult(sess, constants.EventAdvanceRide, temp, liveRide, nil)
	return liveRide, nil
}

// SubmitReview has no cached entity to predict; it is guarded and submitted
func (m *SessionManager) SubmitReview(ctx context.Context, sess *Session, req *models.ReviewRequest) (*models.Review, error) {
	if err := sess.begin(ActionReview); err != nil {
		m.pushResult(sess, constants.EventSubmitReview, "", nil, err)
		return nil, err
	}
	defer sess.end(ActionReview)

	callCtx, cancel := context.WithTimeout(m.authCtx(ctx, sess), m.callTimeout())
	defer cancel()

	review, err := m.api.SubmitReview(callCtx, req)
	if err != nil {
		m.pushResult(sess, constants.EventSubmitReview, "", nil, err)
		return nil, err
	}

	m.pushResult(sess, constants.EventSubmitReview, "", review, nil)
	return review, nil
}

// MarkNotificationRead submits first, then updates the local feed. The flag
// only ever flips one way, so there is nothing to roll back.
func (m *SessionManager) MarkNotificationRead(ctx context.Context, sess *Session, notificationID uuid.UUID) error {
	if err := sess.begin(ActionNotification); err != nil {
		m.pushResult(sess, constants.EventMarkRead, "", nil, err)
		return err
	}
	defer sess.end(ActionNotification)

	callCtx, cancel := context.WithTimeout(m.authCtx(ctx, sess), m.callTimeout())
	defer cancel()

	if err := m.api.MarkNotificationRead(callCtx, notificationID); err != nil {
		m.pushResult(sess, constants.EventMarkRead, "", nil, err)
		return err
	}

	sess.Notifications.MarkRead(notificationID)
	m.pushResult(sess, constants.EventMarkRead, "", notificationID, nil)
	return nil
}
