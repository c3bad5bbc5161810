package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a passenger's booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusDeclined  BookingStatus = "declined"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// IsActive reports whether the booking still occupies (or may occupy) seats.
// At most one active booking per (ride, passenger) pair is allowed.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// Booking represents a passenger's request to occupy seats on a ride
type Booking struct {
	ID               uuid.UUID     `json:"id" db:"id"`
	RideID           uuid.UUID     `json:"ride_id" db:"ride_id"`
	PassengerID      uuid.UUID     `json:"passenger_id" db:"passenger_id"`
	SeatsRequested   int           `json:"seats_requested" db:"seats_requested"`
	TotalAmount      float64       `json:"total_amount" db:"total_amount"`
	PickupPoint      string        `json:"pickup_point" db:"pickup_point"`
	Message          string        `json:"message" db:"message"`
	Status           BookingStatus `json:"status" db:"status"`
	VerificationCode string        `json:"verification_code,omitempty" db:"verification_code"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingRequest is the payload a passenger submits to request seats
type BookingRequest struct {
	RideID         uuid.UUID `json:"ride_id" validate:"required"`
	SeatsRequested int       `json:"seats_requested" validate:"required,min=1"`
	PickupPoint    string    `json:"pickup_point"`
	Message        string    `json:"message"`
}

// BookingDecision carries a driver's accept/decline response to a pending booking
type BookingDecision string

const (
	BookingDecisionAccept  BookingDecision = "accept"
	BookingDecisionDecline BookingDecision = "decline"
)

// BookingResponse is the payload a driver submits to resolve a pending booking
type BookingResponse struct {
	BookingID        uuid.UUID       `json:"booking_id" validate:"required"`
	Decision         BookingDecision `json:"decision" validate:"required"`
	VerificationCode string          `json:"verification_code,omitempty"`
}
