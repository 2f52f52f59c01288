package constants

import "time"

// Redis key formats
const (
	KeyRunLocation = "run:location:%s" // Format: run:location:{run_id}, hash of the latest sample
	KeyRunTrack    = "run:track:%s"    // Format: run:track:{run_id}, list of JSON samples
	KeyRunMeta     = "run:meta:%s"     // Format: run:meta:{run_id}, hash of owner and status
	KeyFleetGeo    = "fleet:positions" // Geo set of the latest position of every vehicle on a run

	DefaultHistoryTTL = 24 * time.Hour
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldGeohash   = "geohash"
	FieldVehicleID = "vehicle_id"
	FieldCompanyID = "company_id"
	FieldSectorID  = "sector_id"
	FieldStatus    = "status"
)
