package models

import "errors"

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrRunNotFound     = errors.New("run not found")
	ErrRunNotActive    = errors.New("run is not active")
	ErrInvalidRefuel   = errors.New("invalid refuel")
	ErrNoLocationData  = errors.New("no location data yet")
)
