package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationType categorizes notifications for client display
type NotificationType string

const (
	NotificationTypeBooking NotificationType = "booking"
	NotificationTypeRide    NotificationType = "ride"
	NotificationTypeTrip    NotificationType = "trip"
	NotificationTypeSystem  NotificationType = "system"
)

// Notification is a message addressed to exactly one recipient. Notifications
// are created as side effects of booking and ride transitions and are only
// ever mutated by the read-flag toggle.
type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type"`
	Data      json.RawMessage  `json:"data,omitempty" db:"data"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
