package models

import "time"

// StopPoint names a checkpoint a vehicle visits along its route
type StopPoint string

// RouteState describes how far a route draft is from being startable
type RouteState string

const (
	RouteEmpty        RouteState = "empty"
	RouteBuilding     RouteState = "building"
	RouteReadyToStart RouteState = "ready_to_start"
)

// MoveDirection is the direction of an adjacent swap inside a route
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// RunStatus represents the lifecycle state of a tracked run
type RunStatus string

const (
	RunStatusActive   RunStatus = "active"
	RunStatusFinished RunStatus = "finished"
)

// RunSubmission is the validated tuple handed over to start a tracked run
type RunSubmission struct {
	VehicleID string      `json:"vehicle_id"`
	Mileage   float64     `json:"mileage"`
	Route     []StopPoint `json:"route"`
}

// RouteDraft is the operator-facing view of a route being planned
type RouteDraft struct {
	VehicleID  string      `json:"vehicle_id"`
	Mileage    string      `json:"mileage"`
	StopPoints []StopPoint `json:"stop_points"`
	State      RouteState  `json:"state"`
	Ready      bool        `json:"ready"`
}

// Run represents a tracked trip of a vehicle along a route
type Run struct {
	ID         string      `json:"id" db:"id"`
	OperatorID string      `json:"operator_id" db:"operator_id"`
	CompanyID  string      `json:"company_id" db:"company_id"`
	SectorID   string      `json:"sector_id" db:"sector_id"`
	VehicleID  string      `json:"vehicle_id" db:"vehicle_id"`
	Mileage    float64     `json:"mileage" db:"mileage"`
	StopPoints []StopPoint `json:"stop_points" db:"stop_points"`
	Status     RunStatus   `json:"status" db:"status"`
	StartedAt  time.Time   `json:"started_at" db:"started_at"`
	FinishedAt *time.Time  `json:"finished_at,omitempty" db:"finished_at"`
}

// RunStartedEvent is published when an operator starts a run
type RunStartedEvent struct {
	RunID      string      `json:"run_id"`
	VehicleID  string      `json:"vehicle_id"`
	OperatorID string      `json:"operator_id"`
	CompanyID  string      `json:"company_id"`
	SectorID   string      `json:"sector_id"`
	Mileage    float64     `json:"mileage"`
	StopPoints []StopPoint `json:"stop_points"`
	StartedAt  time.Time   `json:"started_at"`
}

// RunFinishedEvent is published when a run ends
type RunFinishedEvent struct {
	RunID      string    `json:"run_id"`
	VehicleID  string    `json:"vehicle_id"`
	FinishedAt time.Time `json:"finished_at"`
}
