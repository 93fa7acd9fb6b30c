package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Ride status values
const (
	RideStatusPending   = "pending"
	RideStatusAccepted  = "accepted"
	RideStatusOngoing   = "ongoing"
	RideStatusCompleted = "completed"
)

// Ride represents a ride document
type Ride struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	RiderID     uuid.UUID      `json:"rider_id" db:"rider_id"`
	DriverID    uuid.NullUUID  `json:"driver_id,omitempty" db:"driver_id"`
	Pickup      Location       `json:"pickup" db:"-"`
	Destination Location       `json:"destination" db:"-"`
	PickupHash  sql.NullString `json:"-" db:"pickup_hash"`
	Fare        float64        `json:"fare" db:"fare"`
	Status      string         `json:"status" db:"status"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// CreateRideRequest is the payload for requesting a ride
type CreateRideRequest struct {
	Pickup      Location `json:"pickup"`
	Destination Location `json:"destination"`
}

// RideDecisionRequest is the payload for a driver accepting or finishing a ride
type RideDecisionRequest struct {
	RideID string `json:"ride_id"`
}

// RideEvent is the payload published on NATS and pushed to live connections
type RideEvent struct {
	RideID   string   `json:"ride_id"`
	RiderID  string   `json:"rider_id"`
	DriverID string   `json:"driver_id,omitempty"`
	Status   string   `json:"status"`
	Fare     float64  `json:"fare,omitempty"`
	Pickup   Location `json:"pickup,omitempty"`
}
