package models

import "encoding/json"

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

// JoinRequest is the handshake payload binding a connection to an actor.
// The identity is client-asserted after HTTP authentication; the relay
// trusts it as supplied.
type JoinRequest struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}
