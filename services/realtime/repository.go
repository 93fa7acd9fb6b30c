package realtime

import (
	"context"

	"github.com/swiftcab/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swiftcab/backend/services/realtime PresenceRepo

// PresenceRepo persists reachability markers and the driver location
// projection
type PresenceRepo interface {
	// SetSocketID stores the opaque reachability marker on the actor record.
	SetSocketID(ctx context.Context, role models.Role, actorID, socketID string) error

	// ClearSocketID removes the marker, guarded on the record still holding
	// this exact socket id so a stale clear never hides a newer binding.
	ClearSocketID(ctx context.Context, role models.Role, actorID, socketID string) error

	// UpdateDriverLocation overwrites the driver's current-location
	// projection.
	UpdateDriverLocation(ctx context.Context, driverID string, location models.Location) error
}
