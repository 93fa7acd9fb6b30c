package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/swiftcab/backend/internal/pkg/constants"
	"github.com/swiftcab/backend/internal/pkg/models"
	natspkg "github.com/swiftcab/backend/internal/pkg/nats"
)

// RideGW publishes ride lifecycle events on NATS
type RideGW struct {
	natsClient *natspkg.Client
}

// NewRideGW creates a new ride gateway
func NewRideGW(natsClient *natspkg.Client) *RideGW {
	return &RideGW{natsClient: natsClient}
}

// PublishRideRequested announces a new ride request
func (g *RideGW) PublishRideRequested(_ context.Context, event *models.RideEvent) error {
	return g.publish(constants.SubjectRideRequested, event)
}

// PublishRideAccepted announces a driver taking a ride
func (g *RideGW) PublishRideAccepted(_ context.Context, event *models.RideEvent) error {
	return g.publish(constants.SubjectRideAccepted, event)
}

// PublishRideCompleted announces a finished ride
func (g *RideGW) PublishRideCompleted(_ context.Context, event *models.RideEvent) error {
	return g.publish(constants.SubjectRideCompleted, event)
}

func (g *RideGW) publish(subject string, event *models.RideEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ride event: %w", err)
	}
	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}
