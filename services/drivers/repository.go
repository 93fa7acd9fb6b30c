package drivers

import (
	"context"
	"time"

	"github.com/swiftcab/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swiftcab/backend/services/drivers DriverRepo

// DriverRepo defines the driver persistence contract
type DriverRepo interface {
	CreateDriver(ctx context.Context, driver *models.Driver) error
	GetDriverByEmail(ctx context.Context, email string) (*models.Driver, error)
	GetDriverByID(ctx context.Context, id string) (*models.Driver, error)
	BlacklistToken(ctx context.Context, token string, ttl time.Duration) error
}
