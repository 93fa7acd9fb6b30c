package usecase

import (
	"context"
	"time"

	"github.com/swiftcab/backend/internal/pkg/logger"
	"github.com/swiftcab/backend/internal/pkg/models"
	"github.com/swiftcab/backend/services/realtime"
)

// PresenceUC implements the presence use case over the durable store
type PresenceUC struct {
	repo realtime.PresenceRepo
}

// NewPresenceUC creates the presence use case
func NewPresenceUC(repo realtime.PresenceRepo) *PresenceUC {
	return &PresenceUC{repo: repo}
}

// RegisterPresence marks the actor online in the durable store. A store
// failure is logged and swallowed: the in-memory binding already happened
// and must not be rolled back for a stale projection.
func (uc *PresenceUC) RegisterPresence(ctx context.Context, actorID string, role models.Role, socketID string) error {
	if err := uc.repo.SetSocketID(ctx, role, actorID, socketID); err != nil {
		logger.Error("Failed to persist reachability marker",
			logger.String("actor_id", actorID),
			logger.String("role", string(role)),
			logger.Err(err))
		return err
	}
	return nil
}

// ClearPresence marks the actor offline. The repository applies the write
// only while the record still carries this socket id, so a late clear for a
// superseded connection leaves the newer marker intact.
func (uc *PresenceUC) ClearPresence(ctx context.Context, actorID string, role models.Role, socketID string) error {
	if err := uc.repo.ClearSocketID(ctx, role, actorID, socketID); err != nil {
		logger.Error("Failed to clear reachability marker",
			logger.String("actor_id", actorID),
			logger.String("role", string(role)),
			logger.Err(err))
		return err
	}
	return nil
}

// IngestLocation applies a driver location report. Out-of-range or missing
// coordinates are dropped without touching the store; the current stored
// location stays as it was. Accepted reports overwrite the projection,
// last write wins in store-completion order.
func (uc *PresenceUC) IngestLocation(ctx context.Context, driverID string, update *models.LocationUpdate) error {
	if update == nil || !update.Location.Valid() {
		logger.Debug("Dropping location report with invalid coordinates",
			logger.String("driver_id", driverID))
		return nil
	}

	loc := update.Location
	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now()
	}

	if err := uc.repo.UpdateDriverLocation(ctx, driverID, loc); err != nil {
		logger.Error("Failed to update driver location",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return err
	}
	return nil
}
