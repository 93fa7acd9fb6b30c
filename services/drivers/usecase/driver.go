package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jwtpkg "github.com/swiftcab/backend/internal/pkg/jwt"
	"github.com/swiftcab/backend/internal/pkg/logger"
	"github.com/swiftcab/backend/internal/pkg/models"
	"github.com/swiftcab/backend/services/drivers"
	"golang.org/x/crypto/bcrypt"
)

// DriverUC implements the driver account use case
type DriverUC struct {
	cfg  *models.Config
	repo drivers.DriverRepo
}

// NewDriverUC creates the driver use case
func NewDriverUC(cfg *models.Config, repo drivers.DriverRepo) *DriverUC {
	return &DriverUC{
		cfg:  cfg,
		repo: repo,
	}
}

// Register creates a driver account with its vehicle and issues a token.
// New drivers start inactive until they connect and report a location.
func (uc *DriverUC) Register(ctx context.Context, req *models.RegisterDriverRequest) (*models.AuthResponse, error) {
	existing, err := uc.repo.GetDriverByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing driver: %w", err)
	}
	if existing != nil {
		return nil, drivers.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	driver := &models.Driver{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
		Status:    models.DriverStatusInactive,
		Vehicle:   req.Vehicle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.CreateDriver(ctx, driver); err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(driver.ID, string(models.RoleDriver), uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Driver registered",
		logger.String("driver_id", driver.ID.String()),
		logger.String("vehicle_plate", driver.Vehicle.Plate))

	driver.Password = ""
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   driver,
	}, nil
}

// Login authenticates a driver by email and password
func (uc *DriverUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	driver, err := uc.repo.GetDriverByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, drivers.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch driver: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(driver.Password), []byte(req.Password)); err != nil {
		return nil, drivers.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(driver.ID, string(models.RoleDriver), uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	driver.Password = ""
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   driver,
	}, nil
}

// Logout blacklists the presented token for the rest of its lifetime
func (uc *DriverUC) Logout(ctx context.Context, token string) error {
	ttl := time.Duration(uc.cfg.JWT.Expiration) * time.Minute
	if err := uc.repo.BlacklistToken(ctx, token, ttl); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// GetProfile fetches the driver document by id
func (uc *DriverUC) GetProfile(ctx context.Context, driverID string) (*models.Driver, error) {
	driver, err := uc.repo.GetDriverByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, drivers.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch driver: %w", err)
	}
	driver.Password = ""
	return driver, nil
}
