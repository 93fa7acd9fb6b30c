package constants

// Redis key formats
const (
	KeyDriverGeo      = "drivers:geo"        // GEO set of current driver positions
	KeyDriverPresence = "driver:presence:%s" // Format: driver:presence:{driver_id}
	KeyRiderPresence  = "rider:presence:%s"  // Format: rider:presence:{rider_id}
	KeyTokenBlacklist = "token:blacklist:%s" // Format: token:blacklist:{token}
)
