package websocket

import (
	"github.com/swiftcab/backend/internal/pkg/logger"
)

// Outcome is the result of a targeted dispatch. Unreachable is a normal
// outcome, not an error: the actor may simply be offline and callers apply
// their own fallback.
type Outcome int

const (
	// OutcomeUnreachable means the actor has no live connection; no
	// transport I/O was performed.
	OutcomeUnreachable Outcome = iota
	// OutcomeReachable means the actor had a live connection and the event
	// was pushed to it. Delivery is fire-and-forget with no receipt.
	OutcomeReachable
)

func (o Outcome) String() string {
	if o == OutcomeReachable {
		return "reachable"
	}
	return "unreachable"
}

// Dispatcher pushes targeted events to live connections. Business logic
// (ride matching, notifications) reaches actors through it without knowing
// anything about transports.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over the given registry
func NewDispatcher(registry *Registry) *Dispatcher {
	if registry == nil {
		panic("websocket: NewDispatcher called with nil registry")
	}
	return &Dispatcher{registry: registry}
}

// Send pushes a named event to the actor's live connection. Returns
// OutcomeUnreachable without any transport I/O when the actor has no
// binding. A write failure is logged, not surfaced: the connection's read
// loop notices the broken transport and reaps the binding.
//
// Using a dispatcher that was never wired to a registry is a
// startup-ordering bug in the host process and panics immediately.
func (d *Dispatcher) Send(actorID string, event string, data interface{}) Outcome {
	if d.registry == nil {
		panic("websocket: dispatcher used before initialization")
	}

	client, exists := d.registry.Lookup(actorID)
	if !exists {
		logger.Debug("Dispatch target not reachable",
			logger.String("actor_id", actorID),
			logger.String("event", event))
		return OutcomeUnreachable
	}

	if err := client.Send(event, data); err != nil {
		logger.Warn("Error pushing event to client",
			logger.String("actor_id", actorID),
			logger.String("event", event),
			logger.Err(err))
	}
	return OutcomeReachable
}
