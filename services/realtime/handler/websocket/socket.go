package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/swiftcab/backend/internal/pkg/constants"
	"github.com/swiftcab/backend/internal/pkg/logger"
	"github.com/swiftcab/backend/internal/pkg/middleware"
	"github.com/swiftcab/backend/internal/pkg/models"
	ws "github.com/swiftcab/backend/internal/pkg/websocket"
	"github.com/swiftcab/backend/services/realtime"
)

// SocketHandler owns the WebSocket endpoint: it upgrades connections, binds
// them to actors on join, feeds driver location reports into the presence
// use case and reaps bindings when the transport closes.
//
// Malformed client input never errors the connection; it is dropped at this
// boundary. Rapid reconnects are expected, so binds are idempotent and a
// late close for a superseded connection is ignored by the registry guard.
type SocketHandler struct {
	registry *ws.Registry
	uc       realtime.PresenceUC
	upgrader websocket.Upgrader
}

// NewSocketHandler creates the WebSocket handler. The origin allow-list is
// the same one gating HTTP CORS.
func NewSocketHandler(registry *ws.Registry, uc realtime.PresenceUC, allow *middleware.OriginAllowlist) *SocketHandler {
	return &SocketHandler{
		registry: registry,
		uc:       uc,
		upgrader: websocket.Upgrader{
			CheckOrigin: allow.CheckOrigin,
		},
	}
}

// HandleSocket upgrades the connection and runs its read loop
func (h *SocketHandler) HandleSocket(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	h.readLoop(conn)
	return nil
}

func (h *SocketHandler) readLoop(conn *websocket.Conn) {
	var client *ws.Client
	defer func() {
		h.reap(client)
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error", logger.Err(err))
			}
			return
		}

		client = h.handleMessage(client, conn, raw)
	}
}

// handleMessage processes one inbound frame and returns the connection's
// current binding, which changes when a join is processed
func (h *SocketHandler) handleMessage(current *ws.Client, conn ws.Conn, raw []byte) *ws.Client {
	var msg models.WSMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		logger.Debug("Dropping malformed frame", logger.Err(err))
		return current
	}

	switch msg.Event {
	case constants.EventJoin:
		return h.handleJoin(current, conn, msg.Data)
	case constants.EventLocationUpdate:
		h.handleLocationUpdate(current, msg.Data)
		return current
	default:
		logger.Debug("Dropping unknown event", logger.String("event", msg.Event))
		return current
	}
}

// handleJoin binds the connection to the actor declared in the payload.
// The identity is trusted as asserted by the authenticated frontend.
func (h *SocketHandler) handleJoin(current *ws.Client, conn ws.Conn, data json.RawMessage) *ws.Client {
	var req models.JoinRequest
	if err := json.Unmarshal(data, &req); err != nil {
		logger.Debug("Dropping malformed join payload", logger.Err(err))
		return current
	}
	if req.UserID == "" || !req.Role.Valid() {
		logger.Debug("Dropping join with missing identity or unknown role",
			logger.String("user_id", req.UserID),
			logger.String("role", string(req.Role)))
		return current
	}

	// A connection re-joining under a different identity releases the old
	// binding first; the registry guard keeps this from clearing an entry
	// the connection no longer owns.
	if current != nil && current.ActorID != req.UserID {
		h.reap(current)
	}

	client := h.registry.Bind(req.UserID, req.Role, conn)

	logger.Info("Actor joined",
		logger.String("actor_id", client.ActorID),
		logger.String("role", string(client.Role)))

	// Durable reachability update is fire-and-forget; the binding above is
	// already live for routing either way
	go func() {
		_ = h.uc.RegisterPresence(context.Background(), client.ActorID, client.Role, client.SocketID)
	}()

	return client
}

// handleLocationUpdate feeds a driver location report into ingestion.
// Reports from unbound connections or non-driver roles are dropped here;
// coordinate validation happens in the use case. All drops are silent.
func (h *SocketHandler) handleLocationUpdate(current *ws.Client, data json.RawMessage) {
	if current == nil || current.Role != models.RoleDriver {
		logger.Debug("Dropping location report from unbound or non-driver connection")
		return
	}

	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		logger.Debug("Dropping malformed location payload",
			logger.String("driver_id", current.ActorID),
			logger.Err(err))
		return
	}

	driverID := current.ActorID
	go func() {
		_ = h.uc.IngestLocation(context.Background(), driverID, &update)
	}()
}

// reap removes the binding for a closed connection. The registry only
// confirms removal while it still points at this exact handle, so a stale
// close after a rebind neither evicts the new binding nor marks the actor
// offline.
func (h *SocketHandler) reap(client *ws.Client) {
	if client == nil {
		return
	}
	if !h.registry.Unbind(client) {
		return
	}

	logger.Info("Actor disconnected",
		logger.String("actor_id", client.ActorID),
		logger.String("role", string(client.Role)))

	go func() {
		_ = h.uc.ClearPresence(context.Background(), client.ActorID, client.Role, client.SocketID)
	}()
}
