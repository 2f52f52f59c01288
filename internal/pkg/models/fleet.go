package models

import "time"

// Vehicle is a truck available to an operator's company and sector
type Vehicle struct {
	ID    string `json:"id" db:"id"`
	Model string `json:"model" db:"model"`
}

// Refuel represents a fuel purchase registered by a driver
type Refuel struct {
	ID         string    `json:"id" db:"id"`
	DriverID   string    `json:"driver_id" db:"driver_id"`
	DriverName string    `json:"driver_name" db:"driver_name"`
	VehicleID  string    `json:"vehicle_id" db:"vehicle_id"`
	CompanyID  string    `json:"company_id" db:"company_id"`
	SectorID   string    `json:"sector_id" db:"sector_id"`
	Liters     float64   `json:"liters" db:"liters"`
	Amount     float64   `json:"amount" db:"amount"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// RefuelRequest is the payload for registering a refuel
type RefuelRequest struct {
	VehicleID string  `json:"vehicle_id" validate:"required"`
	Liters    float64 `json:"liters" validate:"gt=0"`
	Amount    float64 `json:"amount" validate:"gt=0"`
}
