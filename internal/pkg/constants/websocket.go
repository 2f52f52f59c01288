package constants

// WebSocket event types
const (
	EventError    = "error"
	EventPing     = "ping"
	EventPong     = "pong"
	EventViewport = "viewport"
	EventWaiting  = "waiting"
	EventRunEnded = "run_ended"
)

// WebSocket error codes
const (
	ErrorInvalidFormat  = "invalid_format"
	ErrorUnauthorized   = "unauthorized"
	ErrorInternalError  = "internal_error"
	ErrorRunNotFound    = "run_not_found"
	ErrorInvalidMessage = "invalid_message"
)
