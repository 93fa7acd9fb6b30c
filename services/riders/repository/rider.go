package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/swiftcab/backend/internal/pkg/constants"
	"github.com/swiftcab/backend/internal/pkg/database"
	"github.com/swiftcab/backend/internal/pkg/models"
)

// RiderRepo persists rider accounts in Postgres and revoked tokens in Redis
type RiderRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRiderRepo creates a new rider repository
func NewRiderRepo(db *sqlx.DB, redisClient *database.RedisClient) *RiderRepo {
	return &RiderRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateRider inserts a new rider record
func (r *RiderRepo) CreateRider(ctx context.Context, rider *models.Rider) error {
	query := `
		INSERT INTO riders (id, firstname, lastname, email, password, created_at, updated_at)
		VALUES (:id, :firstname, :lastname, :email, :password, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, rider); err != nil {
		return fmt.Errorf("failed to insert rider: %w", err)
	}
	return nil
}

// GetRiderByEmail fetches a rider by email, password hash included
func (r *RiderRepo) GetRiderByEmail(ctx context.Context, email string) (*models.Rider, error) {
	var rider models.Rider
	query := `
		SELECT id, firstname, lastname, email, password, socket_id, created_at, updated_at
		FROM riders
		WHERE email = $1
	`
	if err := r.db.GetContext(ctx, &rider, query, email); err != nil {
		return nil, fmt.Errorf("failed to get rider by email: %w", err)
	}
	return &rider, nil
}

// GetRiderByID fetches a rider by id
func (r *RiderRepo) GetRiderByID(ctx context.Context, id string) (*models.Rider, error) {
	var rider models.Rider
	query := `
		SELECT id, firstname, lastname, email, password, socket_id, created_at, updated_at
		FROM riders
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &rider, query, id); err != nil {
		return nil, fmt.Errorf("failed to get rider by id: %w", err)
	}
	return &rider, nil
}

// BlacklistToken marks a token revoked until it would have expired anyway
func (r *RiderRepo) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyTokenBlacklist, token)
	if err := r.redisClient.Set(ctx, key, "revoked", ttl); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}
