package rides

import (
	"context"

	"github.com/swiftcab/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swiftcab/backend/services/rides RideRepo

// RideRepo defines the ride persistence and matching contract
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRideByID(ctx context.Context, rideID string) (*models.Ride, error)
	AcceptRide(ctx context.Context, rideID, driverID string) (bool, error)
	CompleteRide(ctx context.Context, rideID, driverID string) (bool, error)
	FindNearbyDrivers(ctx context.Context, pickup models.Location, radiusKm float64) ([]models.NearbyDriver, error)
}
