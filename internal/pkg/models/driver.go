package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Driver status values
const (
	DriverStatusInactive = "inactive"
	DriverStatusActive   = "active"
)

// Driver represents a driver account with vehicle details
type Driver struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	FirstName string         `json:"firstname" db:"firstname"`
	LastName  string         `json:"lastname" db:"lastname"`
	Email     string         `json:"email" db:"email"`
	Password  string         `json:"-" db:"password"`
	Status    string         `json:"status" db:"status"`
	SocketID  sql.NullString `json:"-" db:"socket_id"`
	Location  *GeoPoint      `json:"location,omitempty" db:"-"`
	Vehicle   Vehicle        `json:"vehicle" db:"-"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// Vehicle represents the vehicle registered for a driver
type Vehicle struct {
	Color    string `json:"color" db:"vehicle_color"`
	Plate    string `json:"plate" db:"vehicle_plate"`
	Capacity int    `json:"capacity" db:"vehicle_capacity"`
	Type     string `json:"type" db:"vehicle_type"`
}

// RegisterDriverRequest is the payload for driver registration
type RegisterDriverRequest struct {
	FirstName string  `json:"firstname"`
	LastName  string  `json:"lastname"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Vehicle   Vehicle `json:"vehicle"`
}

// NearbyDriver is a matching candidate returned from the geo index
type NearbyDriver struct {
	DriverID   string  `json:"driver_id"`
	DistanceKm float64 `json:"distance_km"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}
