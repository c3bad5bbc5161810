package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	httpclient "github.com/campuspool/campuspool/internal/pkg/http"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/coordinator"
)

// SessionManager owns every live session and is the single entry point for
// user actions and feed reconciliation.
type SessionManager struct {
	cfg *models.Config
	api coordinator.RidesAPI

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewSessionManager creates a new session manager
func NewSessionManager(cfg *models.Config, api coordinator.RidesAPI) *SessionManager {
	return &SessionManager{
		cfg:      cfg,
		api:      api,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// StartSession registers a session for a connected user and hydrates its
// caches from the store. Hydration failures degrade to empty caches; the
// change feeds fill the gaps as events arrive.
func (m *SessionManager) StartSession(ctx context.Context, userID uuid.UUID, token string, client *models.WebSocketClient) *Session {
	sess := NewSession(userID, token, m.cfg.Coordinator.NotificationKeep, client)
	m.hydrate(ctx, sess)

	m.mu.Lock()
	m.sessions[userID] = sess
	m.mu.Unlock()

	logger.Info("session started",
		logger.String("user_id", userID.String()),
		logger.Int("rides", sess.Rides.Len()),
		logger.Int("bookings", sess.Bookings.Len()))
	return sess
}

// EndSession drops a user's session. Any change events arriving afterwards
// are simply not routed to it.
func (m *SessionManager) EndSession(userID uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()

	logger.Info("session ended", logger.String("user_id", userID.String()))
}

// Session returns a user's live session, if connected
func (m *SessionManager) Session(userID uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[userID]
	return sess, ok
}

// forEach visits every live session
func (m *SessionManager) forEach(fn func(*Session)) {
	m.mu.RLock()
	snapshot := make([]*Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		snapshot = append(snapshot, sess)
	}
	m.mu.RUnlock()

	for _, sess := range snapshot {
		fn(sess)
	}
}

// hydrate pulls the session's initial state from the store. Each fetch is
// independent; one failing does not block the others.
func (m *SessionManager) hydrate(ctx context.Context, sess *Session) {
	if !m.api.Enabled() {
		return
	}
	ctx = m.authCtx(ctx, sess)

	if rides, err := m.api.ListRides(ctx, models.RideFilter{}); err != nil {
		logger.Warn("failed to hydrate rides", logger.Err(err))
	} else {
		sess.Rides.Replace(rides)
	}

	if bookings, err := m.api.MyBookings(ctx); err != nil {
		logger.Warn("failed to hydrate bookings", logger.Err(err))
	} else {
		sess.Bookings.Replace(bookings)
	}

	if liveRide, err := m.api.ActiveLiveRide(ctx); err != nil {
		logger.Warn("failed to hydrate live ride", logger.Err(err))
	} else if liveRide != nil {
		sess.LiveRides.Replace([]models.LiveRide{*liveRide})
	}

	if notifications, err := m.api.Notifications(ctx); err != nil {
		logger.Warn("failed to hydrate notifications", logger.Err(err))
	} else {
		sess.Notifications.Replace(notifications)
	}
}

// authCtx attaches the session's bearer token and the per-call deadline
func (m *SessionManager) authCtx(ctx context.Context, sess *Session) context.Context {
	return httpclient.WithAuthToken(ctx, sess.Token)
}

// callTimeout bounds a remote mutation; a dead store must not pin the
// in-flight guard forever.
func (m *SessionManager) callTimeout() time.Duration {
	if m.cfg.Coordinator.RequestTimeout > 0 {
		return time.Duration(m.cfg.Coordinator.RequestTimeout) * time.Second
	}
	return 10 * time.Second
}

// push sends an event frame to the session's websocket, if attached
func (m *SessionManager) push(sess *Session, event string, data interface{}) {
	if sess.client == nil || sess.client.Conn == nil {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		logger.Warn("failed to marshal push payload", logger.Err(err))
		return
	}
	if err := sess.client.WriteJSON(models.WSMessage{Event: event, Data: payload}); err != nil {
		logger.Warn("failed to push to session",
			logger.String("user_id", sess.UserID.String()),
			logger.Err(err))
	}
}
