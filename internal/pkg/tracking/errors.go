package tracking

import "errors"

var (
	// ErrDuplicateStopPoint is returned when a stop point is already part of the route
	ErrDuplicateStopPoint = errors.New("stop point already in route")
	// ErrUnknownStopPoint is returned when a stop point is not in the catalog
	ErrUnknownStopPoint = errors.New("unknown stop point")
	// ErrIndexOutOfRange is returned when a route index does not address an existing stop
	ErrIndexOutOfRange = errors.New("route index out of range")
	// ErrInvalidCoordinate is returned for non-finite or out of range samples
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrIncompleteRunConfiguration is returned when a run cannot be started yet
	ErrIncompleteRunConfiguration = errors.New("incomplete run configuration")
)
