package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftcab/backend/internal/pkg/models"
)

// fakeConn records messages written to it
type fakeConn struct {
	written []models.WSMessage
	closed  bool
	writeErr error
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	msg, ok := v.(models.WSMessage)
	if !ok {
		return nil
	}
	f.written = append(f.written, msg)
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func TestRegistryBindAndLookup(t *testing.T) {
	registry := NewRegistry()

	client := registry.Bind("D1", models.RoleDriver, &fakeConn{})
	require.NotNil(t, client)
	assert.Equal(t, "D1", client.ActorID)
	assert.Equal(t, models.RoleDriver, client.Role)
	assert.NotEmpty(t, client.SocketID)

	got, exists := registry.Lookup("D1")
	require.True(t, exists)
	assert.Same(t, client, got)

	_, exists = registry.Lookup("R1")
	assert.False(t, exists)
}

func TestRegistryLastBindWins(t *testing.T) {
	registry := NewRegistry()

	connA := &fakeConn{}
	connB := &fakeConn{}
	connC := &fakeConn{}

	registry.Bind("D1", models.RoleDriver, connA)
	registry.Bind("D1", models.RoleDriver, connB)
	last := registry.Bind("D1", models.RoleDriver, connC)

	got, exists := registry.Lookup("D1")
	require.True(t, exists)
	assert.Same(t, last, got)
	assert.Equal(t, 1, registry.Len())

	// Superseding never closes the prior handle
	assert.False(t, connA.closed)
	assert.False(t, connB.closed)
}

func TestRegistryRebindIssuesFreshSocketID(t *testing.T) {
	registry := NewRegistry()

	first := registry.Bind("D1", models.RoleDriver, &fakeConn{})
	second := registry.Bind("D1", models.RoleDriver, &fakeConn{})

	assert.NotEqual(t, first.SocketID, second.SocketID)
}

func TestRegistryUnbind(t *testing.T) {
	registry := NewRegistry()

	client := registry.Bind("R1", models.RoleRider, &fakeConn{})

	removed := registry.Unbind(client)
	assert.True(t, removed)

	_, exists := registry.Lookup("R1")
	assert.False(t, exists)

	// Double unbind is a safe no-op: once by logout, once by transport close
	removed = registry.Unbind(client)
	assert.False(t, removed)

	// A later bind is unaffected
	rebound := registry.Bind("R1", models.RoleRider, &fakeConn{})
	got, exists := registry.Lookup("R1")
	require.True(t, exists)
	assert.Same(t, rebound, got)
}

func TestRegistryStaleCloseGuard(t *testing.T) {
	registry := NewRegistry()

	// bind(X, A) then bind(X, B): A is superseded
	oldClient := registry.Bind("X", models.RoleDriver, &fakeConn{})
	newClient := registry.Bind("X", models.RoleDriver, &fakeConn{})

	// close(A) arrives late; it must not evict B
	removed := registry.Unbind(oldClient)
	assert.False(t, removed)

	got, exists := registry.Lookup("X")
	require.True(t, exists)
	assert.Same(t, newClient, got)
}

func TestRegistryUnbindNil(t *testing.T) {
	registry := NewRegistry()
	assert.False(t, registry.Unbind(nil))
}

func TestClientSend(t *testing.T) {
	registry := NewRegistry()
	conn := &fakeConn{}
	client := registry.Bind("D1", models.RoleDriver, conn)

	err := client.Send("ride:offer", map[string]string{"ride_id": "R1"})
	require.NoError(t, err)

	require.Len(t, conn.written, 1)
	assert.Equal(t, "ride:offer", conn.written[0].Event)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(conn.written[0].Data, &payload))
	assert.Equal(t, "R1", payload["ride_id"])
}

func TestClientSendError(t *testing.T) {
	conn := &fakeConn{}
	client := NewRegistry().Bind("D1", models.RoleDriver, conn)

	require.NoError(t, client.SendError("invalid_format", "Invalid message format"))

	require.Len(t, conn.written, 1)
	assert.Equal(t, "error", conn.written[0].Event)

	var errMsg models.WSErrorMessage
	require.NoError(t, json.Unmarshal(conn.written[0].Data, &errMsg))
	assert.Equal(t, "invalid_format", errMsg.Code)
}
