package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Rider represents a passenger account
type Rider struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	FirstName string         `json:"firstname" db:"firstname"`
	LastName  string         `json:"lastname" db:"lastname"`
	Email     string         `json:"email" db:"email"`
	Password  string         `json:"-" db:"password"`
	SocketID  sql.NullString `json:"-" db:"socket_id"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// RegisterRiderRequest is the payload for rider registration
type RegisterRiderRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the payload for rider and driver login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token together with the account document
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
	Account   interface{} `json:"account"`
}
