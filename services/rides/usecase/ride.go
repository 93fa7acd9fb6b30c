package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/swiftcab/backend/internal/pkg/constants"
	"github.com/swiftcab/backend/internal/pkg/logger"
	"github.com/swiftcab/backend/internal/pkg/models"
	ws "github.com/swiftcab/backend/internal/pkg/websocket"
	"github.com/swiftcab/backend/internal/utils"
	"github.com/swiftcab/backend/services/rides"
)

// Fare model, flat base plus a per-kilometer rate
const (
	baseFare  = 30.0
	farePerKm = 12.0
)

// Geohash precision for the pickup cell, ~1.2km squares
const pickupHashPrecision = 6

// RideUC implements the ride lifecycle use case
type RideUC struct {
	cfg      *models.Config
	repo     rides.RideRepo
	gw       rides.RideGW
	notifier rides.Notifier
}

// NewRideUC creates the ride use case
func NewRideUC(cfg *models.Config, repo rides.RideRepo, gw rides.RideGW, notifier rides.Notifier) *RideUC {
	return &RideUC{
		cfg:      cfg,
		repo:     repo,
		gw:       gw,
		notifier: notifier,
	}
}

// CreateRide persists a ride request, offers it to nearby drivers over their
// live connections and announces it on the bus. Unreachable drivers are
// skipped, an offline driver is an expected outcome of matching, not a
// relay failure. The ride is created even when nobody is around to take it.
func (uc *RideUC) CreateRide(ctx context.Context, riderID string, req *models.CreateRideRequest) (*models.Ride, error) {
	if !req.Pickup.Valid() || !req.Destination.Valid() {
		return nil, fmt.Errorf("pickup and destination coordinates are required")
	}

	riderUUID, err := uuid.Parse(riderID)
	if err != nil {
		return nil, fmt.Errorf("invalid rider id: %w", err)
	}

	distanceKm := utils.CalculateDistance(req.Pickup, req.Destination)
	fare := baseFare + farePerKm*distanceKm

	now := time.Now()
	ride := &models.Ride{
		ID:          uuid.New(),
		RiderID:     riderUUID,
		Pickup:      req.Pickup,
		Destination: req.Destination,
		PickupHash: sql.NullString{
			String: utils.EncodeLocation(req.Pickup, pickupHashPrecision),
			Valid:  true,
		},
		Fare:      fare,
		Status:    models.RideStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.CreateRide(ctx, ride); err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	event := &models.RideEvent{
		RideID:  ride.ID.String(),
		RiderID: riderID,
		Status:  ride.Status,
		Fare:    ride.Fare,
		Pickup:  ride.Pickup,
	}

	uc.offerToNearbyDrivers(ctx, ride, event)

	if err := uc.gw.PublishRideRequested(ctx, event); err != nil {
		logger.Warn("Failed to publish ride requested event",
			logger.String("ride_id", event.RideID),
			logger.Err(err))
	}

	return ride, nil
}

func (uc *RideUC) offerToNearbyDrivers(ctx context.Context, ride *models.Ride, event *models.RideEvent) {
	nearby, err := uc.repo.FindNearbyDrivers(ctx, ride.Pickup, uc.cfg.Match.SearchRadiusKm)
	if err != nil {
		logger.Error("Failed to find nearby drivers",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
		return
	}

	reached := 0
	for _, candidate := range nearby {
		if uc.notifier.Send(candidate.DriverID, constants.EventRideOffer, event) == ws.OutcomeReachable {
			reached++
		}
	}

	logger.Info("Offered ride to nearby drivers",
		logger.String("ride_id", ride.ID.String()),
		logger.String("pickup_hash", ride.PickupHash.String),
		logger.Int("candidates", len(nearby)),
		logger.Int("reached", reached))
}

// AcceptRide assigns the ride to the driver. The assignment is guarded in
// the store, when two drivers race for the same ride only the first update
// lands and the loser gets ErrRideUnavailable.
func (uc *RideUC) AcceptRide(ctx context.Context, driverID, rideID string) (*models.Ride, error) {
	driverUUID, err := uuid.Parse(driverID)
	if err != nil {
		return nil, fmt.Errorf("invalid driver id: %w", err)
	}

	ride, err := uc.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusPending {
		return nil, rides.ErrRideUnavailable
	}

	won, err := uc.repo.AcceptRide(ctx, rideID, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to accept ride: %w", err)
	}
	if !won {
		return nil, rides.ErrRideUnavailable
	}

	ride.Status = models.RideStatusAccepted
	ride.DriverID = uuid.NullUUID{UUID: driverUUID, Valid: true}

	event := &models.RideEvent{
		RideID:   rideID,
		RiderID:  ride.RiderID.String(),
		DriverID: driverID,
		Status:   ride.Status,
		Fare:     ride.Fare,
	}

	// The rider hears about the confirmation over the bus; the realtime
	// bridge owns the forward to their live connection, so each transition
	// reaches the rider through exactly one path.
	if err := uc.gw.PublishRideAccepted(ctx, event); err != nil {
		logger.Warn("Failed to publish ride accepted event",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	return ride, nil
}

// FinishRide completes a ride held by this driver
func (uc *RideUC) FinishRide(ctx context.Context, driverID, rideID string) (*models.Ride, error) {
	ride, err := uc.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !ride.DriverID.Valid || ride.DriverID.UUID.String() != driverID {
		return nil, rides.ErrRideUnavailable
	}

	done, err := uc.repo.CompleteRide(ctx, rideID, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to complete ride: %w", err)
	}
	if !done {
		return nil, rides.ErrRideUnavailable
	}

	ride.Status = models.RideStatusCompleted

	event := &models.RideEvent{
		RideID:   rideID,
		RiderID:  ride.RiderID.String(),
		DriverID: driverID,
		Status:   ride.Status,
		Fare:     ride.Fare,
	}

	if err := uc.gw.PublishRideCompleted(ctx, event); err != nil {
		logger.Warn("Failed to publish ride completed event",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	return ride, nil
}

func (uc *RideUC) getRide(ctx context.Context, rideID string) (*models.Ride, error) {
	ride, err := uc.repo.GetRideByID(ctx, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to fetch ride: %w", err)
	}
	return ride, nil
}
