package websocket

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/swiftcab/backend/internal/pkg/models"
)

// Conn is the transport-level handle capable of pushing a message to one
// remote endpoint. *gorilla/websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Client is a live binding between an actor and a connection. The SocketID
// is an opaque per-connection marker; it is what gets persisted as the
// actor's reachability projection, never the connection itself.
type Client struct {
	ActorID  string
	Role     models.Role
	SocketID string

	conn    Conn
	writeMu sync.Mutex
}

// Send pushes a named event with a payload to the remote endpoint.
// Writes are serialized per connection.
func (c *Client) Send(event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	msg := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(msg)
}

// SendError pushes an error event to the remote endpoint
func (c *Client) SendError(code, message string) error {
	return c.Send("error", models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}
