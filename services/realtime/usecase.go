package realtime

import (
	"context"

	"github.com/swiftcab/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/swiftcab/backend/services/realtime PresenceUC

// PresenceUC maintains the durable projections of connection state: the
// per-actor reachability marker and the driver's current location. All
// writes are best-effort; the in-memory registry stays authoritative for
// routing even when a durable write fails.
type PresenceUC interface {
	// RegisterPresence marks the actor online under the given socket id.
	RegisterPresence(ctx context.Context, actorID string, role models.Role, socketID string) error

	// ClearPresence marks the actor offline, but only while the durable
	// marker still carries this socket id.
	ClearPresence(ctx context.Context, actorID string, role models.Role, socketID string) error

	// IngestLocation applies a driver location report, last write wins.
	// Reports with out-of-range or missing coordinates are dropped without
	// error; ingestion is best-effort by design.
	IngestLocation(ctx context.Context, driverID string, update *models.LocationUpdate) error
}
