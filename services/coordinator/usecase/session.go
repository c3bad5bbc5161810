// Package usecase runs the coordinator's per-user sessions: hydrated entity
// caches with an optimistic overlay, a mutation pipeline that allows one
// in-flight operation per kind, and reconciliation of the store's change
// feeds into every affected session.
package usecase

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/coordinator/cache"
)

// ActionKind buckets mutations for the in-flight guard. At most one mutation
// per kind runs at a time in a session; a second submission of the same kind
// is rejected, not queued.
type ActionKind string

const (
	ActionRide         ActionKind = "ride"
	ActionBooking      ActionKind = "booking"
	ActionLiveRide     ActionKind = "live_ride"
	ActionReview       ActionKind = "review"
	ActionNotification ActionKind = "notification"
)

// Session is one user's live view of the system
type Session struct {
	UserID uuid.UUID
	Token  string

	Rides         *cache.Store[models.Ride]
	Bookings      *cache.Store[models.Booking]
	LiveRides     *cache.Store[models.LiveRide]
	Notifications *cache.Feed

	client *models.WebSocketClient

	inflightMu sync.Mutex
	inflight   map[ActionKind]struct{}
}

// NewSession creates an empty session for a connected user
func NewSession(userID uuid.UUID, token string, notificationKeep int, client *models.WebSocketClient) *Session {
	return &Session{
		UserID:        userID,
		Token:         token,
		Rides:         cache.NewStore(func(r models.Ride) string { return r.ID.String() }),
		Bookings:      cache.NewStore(func(b models.Booking) string { return b.ID.String() }),
		LiveRides:     cache.NewStore(func(l models.LiveRide) string { return l.ID.String() }),
		Notifications: cache.NewFeed(notificationKeep),
		client:        client,
		inflight:      make(map[ActionKind]struct{}),
	}
}

// begin claims the in-flight slot for an action kind
func (s *Session) begin(kind ActionKind) error {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()

	if _, busy := s.inflight[kind]; busy {
		return fmt.Errorf("%s action still in flight: %w", kind, apperrors.ErrOperationInProgress)
	}
	s.inflight[kind] = struct{}{}
	return nil
}

// end releases the in-flight slot
func (s *Session) end(kind ActionKind) {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	delete(s.inflight, kind)
}

// InFlight reports whether a mutation of the given kind is pending
func (s *Session) InFlight(kind ActionKind) bool {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	_, busy := s.inflight[kind]
	return busy
}

// tempID mints the overlay key for one optimistic mutation
func tempID() string {
	return "temp_" + uuid.NewString()
}
