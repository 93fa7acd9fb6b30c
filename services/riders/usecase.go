package riders

import (
	"context"
	"errors"

	"github.com/swiftcab/backend/internal/pkg/models"
)

// Sentinel errors mapped to HTTP statuses at the handler boundary
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("rider not found")
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/swiftcab/backend/services/riders RiderUC

// RiderUC defines the rider account use case contract
type RiderUC interface {
	Register(ctx context.Context, req *models.RegisterRiderRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, riderID string) (*models.Rider, error)
}
