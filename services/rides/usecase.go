package rides

import (
	"context"
	"errors"

	"github.com/swiftcab/backend/internal/pkg/models"
	ws "github.com/swiftcab/backend/internal/pkg/websocket"
)

// Sentinel errors mapped to HTTP statuses at the handler boundary
var (
	ErrRideNotFound    = errors.New("ride not found")
	ErrRideUnavailable = errors.New("ride is not available for this transition")
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/swiftcab/backend/services/rides RideUC

// RideUC defines the ride lifecycle use case contract
type RideUC interface {
	CreateRide(ctx context.Context, riderID string, req *models.CreateRideRequest) (*models.Ride, error)
	AcceptRide(ctx context.Context, driverID, rideID string) (*models.Ride, error)
	FinishRide(ctx context.Context, driverID, rideID string) (*models.Ride, error)
}

// Notifier pushes a targeted event to a live connection and reports whether
// the actor was reachable. *websocket.Dispatcher satisfies it. Rides use it
// for driver offers only; rider lifecycle notifications travel over the bus
// and the realtime bridge forwards them.
type Notifier interface {
	Send(actorID string, event string, data interface{}) ws.Outcome
}
