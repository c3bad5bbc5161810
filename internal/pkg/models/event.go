package models

import "encoding/json"

// ChangeOperation identifies the kind of row change carried by a feed event
type ChangeOperation string

const (
	ChangeOpInsert ChangeOperation = "insert"
	ChangeOpUpdate ChangeOperation = "update"
	ChangeOpDelete ChangeOperation = "delete"
)

// Table names carried on change events
const (
	TableRides         = "rides"
	TableBookings      = "bookings"
	TableLiveRides     = "live_rides"
	TableNotifications = "notifications"
)

// ChangeEvent is one entry of a per-table change feed. Events on a single
// subject are published in commit order; no ordering holds across tables.
type ChangeEvent struct {
	Table     string          `json:"table"`
	Operation ChangeOperation `json:"operation"`
	Before    json.RawMessage `json:"before,omitempty"`
	After     json.RawMessage `json:"after,omitempty"`
}
