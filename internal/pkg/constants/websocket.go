package constants

// WebSocket event types
const (
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// EventNearbyCabs is both the request and the reply event of the cab simulator
	EventNearbyCabs = "nearby_cabs"
)

// ErrorInvalidLocation is the simulator's code for an origin it cannot search around
const ErrorInvalidLocation = "invalid_location"
