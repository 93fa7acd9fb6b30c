package models

import "time"

// Location represents a geographical position reported by a client
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty" db:"timestamp"`
}

// Valid reports whether the coordinates are inside the WGS84 envelope.
// Reports with a zero-value Location fail the check since (0,0) is only
// reachable through a missing payload, not a real driver position.
func (l Location) Valid() bool {
	if l.Latitude == 0 && l.Longitude == 0 {
		return false
	}
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// GeoPoint is the persisted GeoJSON projection of a location.
// Coordinates are ordered [longitude, latitude] per the GeoJSON spec.
type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from a location
func NewGeoPoint(l Location) GeoPoint {
	return GeoPoint{
		Type:        "Point",
		Coordinates: [2]float64{l.Longitude, l.Latitude},
	}
}

// Latitude returns the latitude component of the point
func (p GeoPoint) Latitude() float64 { return p.Coordinates[1] }

// Longitude returns the longitude component of the point
func (p GeoPoint) Longitude() float64 { return p.Coordinates[0] }

// LocationUpdate represents a location report received over a live connection
type LocationUpdate struct {
	DriverID  string    `json:"driver_id,omitempty"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
