package constants

// NATS Subjects
const (
	SubjectRideRequested = "ride.requested"
	SubjectRideAccepted  = "ride.accepted"
	SubjectRideCompleted = "ride.completed"
)
