package models

import (
	"time"

	"github.com/google/uuid"
)

// LiveRideStatus represents the tracking status of a confirmed booking,
// from driver-en-route through trip completion.
type LiveRideStatus string

const (
	LiveRideStatusConfirmed      LiveRideStatus = "confirmed"
	LiveRideStatusDriverArriving LiveRideStatus = "driver_arriving"
	LiveRideStatusArrived        LiveRideStatus = "arrived"
	LiveRideStatusPickupComplete LiveRideStatus = "pickup_complete"
	LiveRideStatusInTransit      LiveRideStatus = "in_transit"
	LiveRideStatusCompleted      LiveRideStatus = "completed"
)

// liveRideSequence is the fixed forward-only status order. Backward or
// skipping transitions are rejected.
var liveRideSequence = []LiveRideStatus{
	LiveRideStatusConfirmed,
	LiveRideStatusDriverArriving,
	LiveRideStatusArrived,
	LiveRideStatusPickupComplete,
	LiveRideStatusInTransit,
	LiveRideStatusCompleted,
}

// Next returns the immediate successor status in the fixed sequence.
// ok is false when the status is terminal or unknown.
func (s LiveRideStatus) Next() (LiveRideStatus, bool) {
	for i, st := range liveRideSequence {
		if st == s {
			if i+1 < len(liveRideSequence) {
				return liveRideSequence[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// IsTerminal reports whether no further transitions are allowed
func (s LiveRideStatus) IsTerminal() bool {
	return s == LiveRideStatusCompleted
}

// LiveRide is the real-time tracking record created when a booking is
// confirmed. One live ride exists per confirmed booking.
type LiveRide struct {
	ID               uuid.UUID      `json:"id" db:"id"`
	RideID           uuid.UUID      `json:"ride_id" db:"ride_id"`
	BookingID        uuid.UUID      `json:"booking_id" db:"booking_id"`
	DriverID         uuid.UUID      `json:"driver_id" db:"driver_id"`
	PassengerID      uuid.UUID      `json:"passenger_id" db:"passenger_id"`
	VerificationCode string         `json:"verification_code" db:"verification_code"`
	Status           LiveRideStatus `json:"ride_status" db:"ride_status"`
	ArrivalTime      *time.Time     `json:"arrival_time,omitempty" db:"arrival_time"`
	PickupTime       *time.Time     `json:"pickup_time,omitempty" db:"pickup_time"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// LiveRideAdvanceRequest is the payload a driver submits to move a live ride
// one step forward in the tracking sequence.
type LiveRideAdvanceRequest struct {
	LiveRideID uuid.UUID      `json:"live_ride_id" validate:"required"`
	NextStatus LiveRideStatus `json:"next_status" validate:"required"`
}
