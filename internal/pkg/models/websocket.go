package models

import (
	"encoding/json"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient tracks one authenticated browser connection
type WebSocketClient struct {
	UserID string
	Email  string
	Conn   *websocket.Conn

	writeMu sync.Mutex
}

// WriteJSON serializes writes so concurrent pushers never interleave frames
func (c *WebSocketClient) WriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(v)
}

// WebSocketClaims are the JWT claims consumed at the websocket boundary
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
