package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a published ride
type RideStatus string

const (
	RideStatusActive    RideStatus = "active"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// Ride represents a driver-offered trip with fixed seat capacity and price.
// Rides are never hard-deleted, only status-transitioned.
type Ride struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	DriverID        uuid.UUID  `json:"driver_id" db:"driver_id"`
	OriginName      string     `json:"origin_name" db:"origin_name"`
	DestinationName string     `json:"destination_name" db:"destination_name"`
	OriginLat       *float64   `json:"origin_lat,omitempty" db:"origin_lat"`
	OriginLng       *float64   `json:"origin_lng,omitempty" db:"origin_lng"`
	DestinationLat  *float64   `json:"destination_lat,omitempty" db:"destination_lat"`
	DestinationLng  *float64   `json:"destination_lng,omitempty" db:"destination_lng"`
	OriginCell      string     `json:"origin_cell,omitempty" db:"origin_cell"`
	DepartureTime   time.Time  `json:"departure_time" db:"departure_time"`
	AvailableSeats  int        `json:"available_seats" db:"available_seats"`
	PricePerSeat    float64    `json:"price_per_seat" db:"price_per_seat"`
	VehicleModel    string     `json:"vehicle_model" db:"vehicle_model"`
	VehicleColor    string     `json:"vehicle_color" db:"vehicle_color"`
	VehiclePlate    string     `json:"vehicle_plate" db:"vehicle_plate"`
	Status          RideStatus `json:"status" db:"status"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateRideRequest is the payload a driver submits to publish a ride
type CreateRideRequest struct {
	OriginName      string    `json:"origin_name" validate:"required"`
	DestinationName string    `json:"destination_name" validate:"required"`
	OriginLat       *float64  `json:"origin_lat,omitempty"`
	OriginLng       *float64  `json:"origin_lng,omitempty"`
	DestinationLat  *float64  `json:"destination_lat,omitempty"`
	DestinationLng  *float64  `json:"destination_lng,omitempty"`
	DepartureTime   time.Time `json:"departure_time" validate:"required"`
	AvailableSeats  int       `json:"available_seats" validate:"required,min=1"`
	PricePerSeat    float64   `json:"price_per_seat" validate:"min=0"`
	VehicleModel    string    `json:"vehicle_model"`
	VehicleColor    string    `json:"vehicle_color"`
	VehiclePlate    string    `json:"vehicle_plate"`
}

// RideFilter narrows ride listings
type RideFilter struct {
	Origin      string     `json:"origin,omitempty" query:"origin"`
	Destination string     `json:"destination,omitempty" query:"destination"`
	Date        *time.Time `json:"date,omitempty" query:"date"`
	MinSeats    int        `json:"min_seats,omitempty" query:"min_seats"`
	MaxPrice    *float64   `json:"max_price,omitempty" query:"max_price"`
	Limit       int        `json:"limit,omitempty" query:"limit"`
}

// NearbyRide is a ride annotated with its distance from a search point
type NearbyRide struct {
	Ride       Ride    `json:"ride"`
	DistanceKm float64 `json:"distance_km"`
}
