package models

import "time"

// Location is a single position sample reported for a tracked vehicle
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// LocationUpdate represents a location update event from the live feed
type LocationUpdate struct {
	RunID     string    `json:"run_id"`
	VehicleID string    `json:"vehicle_id"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// TrackedRun is what the location service keeps about a run it tracks
type TrackedRun struct {
	RunID     string    `json:"run_id"`
	VehicleID string    `json:"vehicle_id"`
	CompanyID string    `json:"company_id"`
	SectorID  string    `json:"sector_id"`
	Status    RunStatus `json:"status"`
}

// VisibleTo reports whether scope acts in the company and sector owning the run
func (r TrackedRun) VisibleTo(scope Scope) bool {
	return r.CompanyID == scope.CompanyID && r.SectorID == scope.SectorID
}

// Coordinate is a bare latitude/longitude pair
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BoundingBox is the smallest rectangle enclosing a set of samples
type BoundingBox struct {
	SouthWest Coordinate `json:"south_west"`
	NorthEast Coordinate `json:"north_east"`
}

// Viewport frames a map display around the known positions of a run
type Viewport struct {
	Bounds  BoundingBox `json:"bounds"`
	Focal   Location    `json:"focal"`
	Samples int         `json:"samples"`
	Version uint64      `json:"version"`
}

// MapFrame is a viewport after the display policy (padding, zoom) is applied
type MapFrame struct {
	Viewport
	Center  Coordinate `json:"center"`
	Zoom    int        `json:"zoom"`
	Padding int        `json:"padding"`
}

// Track is the full position history of a run
type Track struct {
	RunID      string     `json:"run_id"`
	Locations  []Location `json:"locations"`
	Polyline   string     `json:"polyline"`
	DistanceKm float64    `json:"distance_km"`
}
