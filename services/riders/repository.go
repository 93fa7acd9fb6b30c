package riders

import (
	"context"
	"time"

	"github.com/swiftcab/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swiftcab/backend/services/riders RiderRepo

// RiderRepo defines the rider persistence contract
type RiderRepo interface {
	CreateRider(ctx context.Context, rider *models.Rider) error
	GetRiderByEmail(ctx context.Context, email string) (*models.Rider, error)
	GetRiderByID(ctx context.Context, id string) (*models.Rider, error)
	BlacklistToken(ctx context.Context, token string, ttl time.Duration) error
}
