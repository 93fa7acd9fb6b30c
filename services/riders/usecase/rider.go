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
	"github.com/swiftcab/backend/services/riders"
	"golang.org/x/crypto/bcrypt"
)

// RiderUC implements the rider account use case
type RiderUC struct {
	cfg  *models.Config
	repo riders.RiderRepo
}

// NewRiderUC creates the rider use case
func NewRiderUC(cfg *models.Config, repo riders.RiderRepo) *RiderUC {
	return &RiderUC{
		cfg:  cfg,
		repo: repo,
	}
}

// Register creates a rider account and issues a token for it
func (uc *RiderUC) Register(ctx context.Context, req *models.RegisterRiderRequest) (*models.AuthResponse, error) {
	existing, err := uc.repo.GetRiderByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing rider: %w", err)
	}
	if existing != nil {
		return nil, riders.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	rider := &models.Rider{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.CreateRider(ctx, rider); err != nil {
		return nil, fmt.Errorf("failed to create rider: %w", err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(rider.ID, string(models.RoleRider), uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Rider registered",
		logger.String("rider_id", rider.ID.String()))

	rider.Password = ""
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   rider,
	}, nil
}

// Login authenticates a rider by email and password
func (uc *RiderUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	rider, err := uc.repo.GetRiderByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, riders.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch rider: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rider.Password), []byte(req.Password)); err != nil {
		return nil, riders.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(rider.ID, string(models.RoleRider), uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	rider.Password = ""
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   rider,
	}, nil
}

// Logout blacklists the presented token for the rest of its lifetime
func (uc *RiderUC) Logout(ctx context.Context, token string) error {
	ttl := time.Duration(uc.cfg.JWT.Expiration) * time.Minute
	if err := uc.repo.BlacklistToken(ctx, token, ttl); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// GetProfile fetches the rider document by id
func (uc *RiderUC) GetProfile(ctx context.Context, riderID string) (*models.Rider, error) {
	rider, err := uc.repo.GetRiderByID(ctx, riderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, riders.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch rider: %w", err)
	}
	rider.Password = ""
	return rider, nil
}
