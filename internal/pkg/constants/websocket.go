package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"

	// Presence events
	EventJoin = "join"

	// Location events
	EventLocationUpdate = "update-location-driver"

	// Ride events pushed to clients
	EventRideOffer     = "ride:offer"
	EventRideConfirmed = "ride:confirmed"
	EventRideEnded     = "ride:ended"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorInternalError = "internal_error"
)
