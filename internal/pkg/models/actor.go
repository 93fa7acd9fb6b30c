package models

// Role identifies which side of a ride an actor is on
type Role string

const (
	RoleRider  Role = "rider"
	RoleDriver Role = "driver"
)

// Valid reports whether the role is one of the two known variants
func (r Role) Valid() bool {
	return r == RoleRider || r == RoleDriver
}
