package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/swiftcab/backend/internal/pkg/constants"
	"github.com/swiftcab/backend/internal/pkg/logger"
	"github.com/swiftcab/backend/internal/pkg/models"
	natspkg "github.com/swiftcab/backend/internal/pkg/nats"
	ws "github.com/swiftcab/backend/internal/pkg/websocket"
)

// NatsHandler bridges ride events published on NATS to live connections.
// An unreachable target is an expected outcome: the actor sees the update
// through a refetch when they reconnect.
type NatsHandler struct {
	dispatcher *ws.Dispatcher
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(dispatcher *ws.Dispatcher, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		dispatcher: dispatcher,
		natsClient: natsClient,
	}
}

// InitConsumers subscribes to the ride subjects
func (h *NatsHandler) InitConsumers() error {
	acceptedSub, err := h.natsClient.Subscribe(constants.SubjectRideAccepted, func(msg *nats.Msg) {
		h.forwardToRider(msg.Data, constants.EventRideConfirmed)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to ride accepted events: %w", err)
	}
	h.subs = append(h.subs, acceptedSub)

	completedSub, err := h.natsClient.Subscribe(constants.SubjectRideCompleted, func(msg *nats.Msg) {
		h.forwardToRider(msg.Data, constants.EventRideEnded)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to ride completed events: %w", err)
	}
	h.subs = append(h.subs, completedSub)

	return nil
}

// forwardToRider pushes a ride event to the rider's live connection
func (h *NatsHandler) forwardToRider(data []byte, event string) {
	var rideEvent models.RideEvent
	if err := json.Unmarshal(data, &rideEvent); err != nil {
		logger.Error("Error parsing ride event", logger.Err(err))
		return
	}

	outcome := h.dispatcher.Send(rideEvent.RiderID, event, rideEvent)
	logger.Info("Forwarded ride event",
		logger.String("ride_id", rideEvent.RideID),
		logger.String("rider_id", rideEvent.RiderID),
		logger.String("event", event),
		logger.String("outcome", outcome.String()))
}

// Close drains all subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
}
