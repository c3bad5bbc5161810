package handler

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	ws "github.com/campuspool/campuspool/internal/pkg/websocket"
	"github.com/campuspool/campuspool/services/coordinator/usecase"
)

// WebSocketHandler owns the browser-facing websocket endpoint: one session
// per connection, actions in, state pushes out.
type WebSocketHandler struct {
	cfg      *models.Config
	manager  *ws.Manager
	sessions *usecase.SessionManager
}

// NewWebSocketHandler creates the websocket handler
func NewWebSocketHandler(cfg *models.Config, manager *ws.Manager, sessions *usecase.SessionManager) *WebSocketHandler {
	return &WebSocketHandler{
		cfg:      cfg,
		manager:  manager,
		sessions: sessions,
	}
}

// RegisterRoutes mounts the websocket endpoint
func (h *WebSocketHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.HandleWebSocket)
}

// HandleWebSocket upgrades the connection, starts the user's session and
// pumps inbound action frames until the connection closes.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := bearerToken(c)

	return h.manager.HandleConnection(c, func(client *models.WebSocketClient, conn *websocket.Conn) error {
		client.Conn = conn
		h.manager.AddClient(client)

		userID, err := uuid.Parse(client.UserID)
		if err != nil {
			h.manager.RemoveClient(client.UserID)
			return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid user id in token")
		}

		sess := h.sessions.StartSession(c.Request().Context(), userID, token, client)
		defer func() {
			h.sessions.EndSession(userID)
			h.manager.RemoveClient(client.UserID)
		}()

		h.pushInitialState(sess, client)

		for {
			var msg models.WSMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Warn("websocket read failed",
						logger.String("user_id", client.UserID),
						logger.Err(err))
				}
				return nil
			}
			h.dispatch(c.Request().Context(), sess, conn, &msg)
		}
	})
}

// pushInitialState sends the hydrated snapshot so the browser renders without
// a second round trip.
func (h *WebSocketHandler) pushInitialState(sess *usecase.Session, client *models.WebSocketClient) {
	snapshot := map[string]interface{}{
		"rides":         sess.Rides.Snapshot(),
		"bookings":      sess.Bookings.Snapshot(),
		"live_rides":    sess.LiveRides.Snapshot(),
		"notifications": sess.Notifications.Snapshot(),
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("failed to marshal initial state", logger.Err(err))
		return
	}
	if err := client.WriteJSON(models.WSMessage{Event: constants.EventSessionReady, Data: payload}); err != nil {
		logger.Warn("failed to push initial state", logger.Err(err))
	}
}

// dispatch routes one inbound action frame. Action outcomes travel back as
// action.result frames; only malformed frames produce error frames here.
func (h *WebSocketHandler) dispatch(ctx context.Context, sess *usecase.Session, conn *websocket.Conn, msg *models.WSMessage) {
	switch msg.Event {
	case constants.EventCreateRide:
		var req models.CreateRideRequest
		if !h.decode(conn, msg.Data, &req) {
			return
		}
		_, _ = h.sessions.CreateRide(ctx, sess, &req)

	case constants.EventRequestBooking:
		var req models.BookingRequest
		if !h.decode(conn, msg.Data, &req) {
			return
		}
		_, _ = h.sessions.RequestBooking(ctx, sess, &req)

	case constants.EventRespondBooking:
		var resp models.BookingResponse
		if !h.decode(conn, msg.Data, &resp) {
			return
		}
		_, _ = h.sessions.RespondToBooking(ctx, sess, &resp)

	case constants.EventCancelBooking:
		var payload struct {
			BookingID uuid.UUID `json:"booking_id"`
		}
		if !h.decode(conn, msg.Data, &payload) {
			return
		}
		_, _ = h.sessions.CancelBooking(ctx, sess, payload.BookingID)

	case constants.EventAdvanceRide:
		var req models.LiveRideAdvanceRequest
		if !h.decode(conn, msg.Data, &req) {
			return
		}
		_, _ = h.sessions.AdvanceLiveRide(ctx, sess, &req)

	case constants.EventSubmitReview:
		var req models.ReviewRequest
		if !h.decode(conn, msg.Data, &req) {
			return
		}
		_, _ = h.sessions.SubmitReview(ctx, sess, &req)

	case constants.EventMarkRead:
		var payload struct {
			NotificationID uuid.UUID `json:"notification_id"`
		}
		if !h.decode(conn, msg.Data, &payload) {
			return
		}
		_ = h.sessions.MarkNotificationRead(ctx, sess, payload.NotificationID)

	default:
		_ = h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "unknown event: "+msg.Event)
	}
}

func (h *WebSocketHandler) decode(conn *websocket.Conn, data json.RawMessage, out interface{}) bool {
	if err := json.Unmarshal(data, out); err != nil {
		_ = h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "malformed action payload")
		return false
	}
	return true
}

// bearerToken pulls the raw token from the Authorization header or the token
// query parameter, mirroring the websocket auth fallback.
func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return c.QueryParam("token")
}
