package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/swiftcab/backend/internal/pkg/constants"
	"github.com/swiftcab/backend/internal/pkg/database"
	"github.com/swiftcab/backend/internal/pkg/models"
)

// rideRow is the flat scan target for ride queries; pickup and destination
// are stored as GeoJSON blobs
type rideRow struct {
	models.Ride
	PickupRaw      []byte `db:"pickup"`
	DestinationRaw []byte `db:"destination"`
}

func (row *rideRow) toRide() (*models.Ride, error) {
	ride := row.Ride
	for _, col := range []struct {
		raw []byte
		dst *models.Location
	}{
		{row.PickupRaw, &ride.Pickup},
		{row.DestinationRaw, &ride.Destination},
	} {
		if len(col.raw) == 0 {
			continue
		}
		var point models.GeoPoint
		if err := json.Unmarshal(col.raw, &point); err != nil {
			return nil, fmt.Errorf("failed to decode ride location: %w", err)
		}
		col.dst.Latitude = point.Latitude()
		col.dst.Longitude = point.Longitude()
	}
	return &ride, nil
}

// RideRepo persists rides in Postgres and matches drivers through the Redis
// geo index maintained by location ingestion
type RideRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRideRepo creates a new ride repository
func NewRideRepo(db *sqlx.DB, redisClient *database.RedisClient) *RideRepo {
	return &RideRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateRide inserts a new ride record
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	pickup, err := json.Marshal(models.NewGeoPoint(ride.Pickup))
	if err != nil {
		return fmt.Errorf("failed to marshal pickup point: %w", err)
	}
	destination, err := json.Marshal(models.NewGeoPoint(ride.Destination))
	if err != nil {
		return fmt.Errorf("failed to marshal destination point: %w", err)
	}

	query := `
		INSERT INTO rides (id, rider_id, pickup, destination, pickup_hash, fare, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.ExecContext(ctx, query,
		ride.ID, ride.RiderID, pickup, destination,
		ride.PickupHash, ride.Fare, ride.Status,
		ride.CreatedAt, ride.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}
	return nil
}

// GetRideByID fetches a ride by id
func (r *RideRepo) GetRideByID(ctx context.Context, rideID string) (*models.Ride, error) {
	var row rideRow
	query := `
		SELECT id, rider_id, driver_id, pickup, destination, pickup_hash, fare, status, created_at, updated_at
		FROM rides
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to get ride by id: %w", err)
	}
	return row.toRide()
}

// AcceptRide assigns the ride to the driver while it is still pending.
// Returns false when another driver already took it.
func (r *RideRepo) AcceptRide(ctx context.Context, rideID, driverID string) (bool, error) {
	query := `
		UPDATE rides
		SET driver_id = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`
	res, err := r.db.ExecContext(ctx, query, driverID, models.RideStatusAccepted, rideID, models.RideStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to accept ride: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read accept result: %w", err)
	}
	return rows > 0, nil
}

// CompleteRide finishes a ride held by this driver. Returns false when the
// ride is not in an active state for this driver anymore.
func (r *RideRepo) CompleteRide(ctx context.Context, rideID, driverID string) (bool, error) {
	query := `
		UPDATE rides
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND driver_id = $3 AND status IN ($4, $5)
	`
	res, err := r.db.ExecContext(ctx, query,
		models.RideStatusCompleted, rideID, driverID,
		models.RideStatusAccepted, models.RideStatusOngoing,
	)
	if err != nil {
		return false, fmt.Errorf("failed to complete ride: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read complete result: %w", err)
	}
	return rows > 0, nil
}

// FindNearbyDrivers queries the geo index for drivers around the pickup
// point, nearest first
func (r *RideRepo) FindNearbyDrivers(ctx context.Context, pickup models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo,
		pickup.Longitude, pickup.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query driver geo index: %w", err)
	}

	nearby := make([]models.NearbyDriver, 0, len(locations))
	for _, loc := range locations {
		nearby = append(nearby, models.NearbyDriver{
			DriverID:   loc.Name,
			DistanceKm: loc.Dist,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
		})
	}
	return nearby, nil
}
