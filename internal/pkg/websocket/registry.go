package websocket

import (
	"sync"

	"github.com/google/uuid"
	"github.com/swiftcab/backend/internal/pkg/models"
)

// Registry is the single source of truth for which actor currently owns
// which live connection. It holds at most one client per actor: a new bind
// for the same actor supersedes the previous one (last-bind-wins). The
// registry is process-local and rebuilt empty on restart; clients re-join
// after reconnecting.
//
// All operations are total; none of them return errors.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]*Client),
	}
}

// Bind registers a connection for an actor, superseding any prior binding
// for the same actor. The superseded connection is not closed here; it is
// simply no longer addressable and gets reaped when its transport closes.
// Returns the new client entry carrying a fresh socket id.
func (r *Registry) Bind(actorID string, role models.Role, conn Conn) *Client {
	client := &Client{
		ActorID:  actorID,
		Role:     role,
		SocketID: uuid.New().String(),
		conn:     conn,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[actorID] = client
	return client
}

// Lookup returns the current client for an actor, if any
func (r *Registry) Lookup(actorID string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, exists := r.clients[actorID]
	return client, exists
}

// Unbind removes the given client, but only while the registry still points
// at this exact entry. A close event for an already-superseded connection is
// a no-op, so a late close never evicts a newer binding for the same actor.
// Reports whether an entry was actually removed; callers clear the durable
// reachability projection only on true.
func (r *Registry) Unbind(client *Client) bool {
	if client == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	current, exists := r.clients[client.ActorID]
	if !exists || current != client {
		return false
	}
	delete(r.clients, client.ActorID)
	return true
}

// Len returns the number of live bindings
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}
