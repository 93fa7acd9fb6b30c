package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/swiftcab/backend/internal/pkg/constants"
	"github.com/swiftcab/backend/internal/pkg/database"
	"github.com/swiftcab/backend/internal/pkg/models"
)

// driverRow is the flat scan target for driver queries; vehicle columns and
// the GeoJSON location blob are folded into the model after scanning
type driverRow struct {
	models.Driver
	VehicleColor    string `db:"vehicle_color"`
	VehiclePlate    string `db:"vehicle_plate"`
	VehicleCapacity int    `db:"vehicle_capacity"`
	VehicleType     string `db:"vehicle_type"`
	LocationRaw     []byte `db:"location"`
}

func (row *driverRow) toDriver() (*models.Driver, error) {
	driver := row.Driver
	driver.Vehicle = models.Vehicle{
		Color:    row.VehicleColor,
		Plate:    row.VehiclePlate,
		Capacity: row.VehicleCapacity,
		Type:     row.VehicleType,
	}
	if len(row.LocationRaw) > 0 {
		var point models.GeoPoint
		if err := json.Unmarshal(row.LocationRaw, &point); err != nil {
			return nil, fmt.Errorf("failed to decode driver location: %w", err)
		}
		driver.Location = &point
	}
	return &driver, nil
}

// DriverRepo persists driver accounts in Postgres and revoked tokens in Redis
type DriverRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDriverRepo creates a new driver repository
func NewDriverRepo(db *sqlx.DB, redisClient *database.RedisClient) *DriverRepo {
	return &DriverRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateDriver inserts a new driver record with its vehicle columns
func (r *DriverRepo) CreateDriver(ctx context.Context, driver *models.Driver) error {
	query := `
		INSERT INTO drivers (
			id, firstname, lastname, email, password, status,
			vehicle_color, vehicle_plate, vehicle_capacity, vehicle_type,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		driver.ID, driver.FirstName, driver.LastName, driver.Email,
		driver.Password, driver.Status,
		driver.Vehicle.Color, driver.Vehicle.Plate,
		driver.Vehicle.Capacity, driver.Vehicle.Type,
		driver.CreatedAt, driver.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert driver: %w", err)
	}
	return nil
}

// GetDriverByEmail fetches a driver by email, password hash included
func (r *DriverRepo) GetDriverByEmail(ctx context.Context, email string) (*models.Driver, error) {
	var row driverRow
	query := `
		SELECT id, firstname, lastname, email, password, status, socket_id,
		       vehicle_color, vehicle_plate, vehicle_capacity, vehicle_type,
		       location, created_at, updated_at
		FROM drivers
		WHERE email = $1
	`
	if err := r.db.GetContext(ctx, &row, query, email); err != nil {
		return nil, fmt.Errorf("failed to get driver by email: %w", err)
	}
	return row.toDriver()
}

// GetDriverByID fetches a driver by id
func (r *DriverRepo) GetDriverByID(ctx context.Context, id string) (*models.Driver, error) {
	var row driverRow
	query := `
		SELECT id, firstname, lastname, email, password, status, socket_id,
		       vehicle_color, vehicle_plate, vehicle_capacity, vehicle_type,
		       location, created_at, updated_at
		FROM drivers
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, fmt.Errorf("failed to get driver by id: %w", err)
	}
	return row.toDriver()
}

// BlacklistToken marks a token revoked until it would have expired anyway
func (r *DriverRepo) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyTokenBlacklist, token)
	if err := r.redisClient.Set(ctx, key, "revoked", ttl); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}
