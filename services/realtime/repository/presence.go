package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/swiftcab/backend/internal/pkg/constants"
	"github.com/swiftcab/backend/internal/pkg/database"
	"github.com/swiftcab/backend/internal/pkg/logger"
	"github.com/swiftcab/backend/internal/pkg/models"
)

// PresenceRepo persists reachability markers and driver locations in
// Postgres, mirroring presence and positions into Redis for fast matching
type PresenceRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewPresenceRepo creates a new presence repository
func NewPresenceRepo(db *sqlx.DB, redisClient *database.RedisClient) *PresenceRepo {
	return &PresenceRepo{
		db:          db,
		redisClient: redisClient,
	}
}

func tableForRole(role models.Role) string {
	if role == models.RoleDriver {
		return "drivers"
	}
	return "riders"
}

func presenceKeyForRole(role models.Role, actorID string) string {
	if role == models.RoleDriver {
		return fmt.Sprintf(constants.KeyDriverPresence, actorID)
	}
	return fmt.Sprintf(constants.KeyRiderPresence, actorID)
}

// SetSocketID stores the opaque reachability marker on the actor record
func (r *PresenceRepo) SetSocketID(ctx context.Context, role models.Role, actorID, socketID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET socket_id = $1, updated_at = NOW()
		WHERE id = $2
	`, tableForRole(role))

	if _, err := r.db.ExecContext(ctx, query, socketID, actorID); err != nil {
		return fmt.Errorf("failed to set socket id: %w", err)
	}

	// Presence key is a cache of the durable marker; failures only degrade
	// matching freshness
	if err := r.redisClient.Set(ctx, presenceKeyForRole(role, actorID), socketID, 0); err != nil {
		logger.Warn("Failed to cache presence key",
			logger.String("actor_id", actorID),
			logger.Err(err))
	}

	return nil
}

// ClearSocketID removes the marker only while the record still carries this
// exact socket id. A clear for an already-superseded connection matches no
// row and falls through without touching the newer marker.
func (r *PresenceRepo) ClearSocketID(ctx context.Context, role models.Role, actorID, socketID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET socket_id = NULL, updated_at = NOW()
		WHERE id = $1 AND socket_id = $2
	`, tableForRole(role))

	res, err := r.db.ExecContext(ctx, query, actorID, socketID)
	if err != nil {
		return fmt.Errorf("failed to clear socket id: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil || rows == 0 {
		// Marker already superseded by a newer binding; leave the caches be
		return nil
	}

	if err := r.redisClient.Delete(ctx, presenceKeyForRole(role, actorID)); err != nil {
		logger.Warn("Failed to drop presence key",
			logger.String("actor_id", actorID),
			logger.Err(err))
	}
	if role == models.RoleDriver {
		if err := r.redisClient.GeoRemove(ctx, constants.KeyDriverGeo, actorID); err != nil {
			logger.Warn("Failed to drop driver from geo index",
				logger.String("actor_id", actorID),
				logger.Err(err))
		}
	}

	return nil
}

// UpdateDriverLocation overwrites the driver's current-location projection:
// a GeoJSON point on the driver record and a member of the Redis geo index
func (r *PresenceRepo) UpdateDriverLocation(ctx context.Context, driverID string, location models.Location) error {
	point, err := json.Marshal(models.NewGeoPoint(location))
	if err != nil {
		return fmt.Errorf("failed to marshal location point: %w", err)
	}

	query := `
		UPDATE drivers
		SET location = $1, updated_at = NOW()
		WHERE id = $2
	`
	if _, err := r.db.ExecContext(ctx, query, point, driverID); err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, driverID); err != nil {
		logger.Warn("Failed to update driver geo index",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}

	return nil
}
