package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a campus rider profile. Authentication itself is delegated to the
// hosted auth provider; only the id and email claims are consumed here.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FullName  string    `json:"full_name" db:"full_name"`
	Phone     string    `json:"phone" db:"phone"`
	Rating    float64   `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UserStats summarizes a user's activity for the dashboard
type UserStats struct {
	TotalRides        int     `json:"total_rides"`
	TotalBookings     int     `json:"total_bookings"`
	RidesCompleted    int     `json:"rides_completed"`
	BookingsCompleted int     `json:"bookings_completed"`
	PendingRequests   int     `json:"pending_requests"`
	AverageRating     float64 `json:"average_rating"`
	TotalSpent        float64 `json:"total_spent"`
}
