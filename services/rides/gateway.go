package rides

import (
	"context"

	"github.com/swiftcab/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/swiftcab/backend/services/rides RideGW

// RideGW publishes ride lifecycle events for out-of-process consumers
type RideGW interface {
	PublishRideRequested(ctx context.Context, event *models.RideEvent) error
	PublishRideAccepted(ctx context.Context, event *models.RideEvent) error
	PublishRideCompleted(ctx context.Context, event *models.RideEvent) error
}
