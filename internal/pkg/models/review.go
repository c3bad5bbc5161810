package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a post-trip rating from one ride participant about the other.
// Submitting a review recomputes the reviewed user's rolling average rating.
type Review struct {
	ID             uuid.UUID `json:"id" db:"id"`
	RideID         uuid.UUID `json:"ride_id" db:"ride_id"`
	ReviewerID     uuid.UUID `json:"reviewer_id" db:"reviewer_id"`
	ReviewedUserID uuid.UUID `json:"reviewed_user_id" db:"reviewed_user_id"`
	Rating         int       `json:"rating" db:"rating"`
	Comment        string    `json:"comment" db:"comment"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// ReviewRequest is the payload submitted after a live ride completes
type ReviewRequest struct {
	RideID         uuid.UUID `json:"ride_id" validate:"required"`
	ReviewedUserID uuid.UUID `json:"reviewed_user_id" validate:"required"`
	Rating         int       `json:"rating" validate:"required,min=1,max=5"`
	Comment        string    `json:"comment"`
}
