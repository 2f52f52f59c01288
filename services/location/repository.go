package location

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// LocationRepo mirrors run positions to Redis so tracks survive restarts
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/fleettrack/services/location LocationRepo
type LocationRepo interface {
	// StorePosition records update as the run's latest position, appends it
	// to the run's track and moves the vehicle in the fleet geo set
	StorePosition(ctx context.Context, update models.LocationUpdate) error

	// Run ownership and status, kept beside the track
	SaveRun(ctx context.Context, run models.TrackedRun) error
	GetRun(ctx context.Context, runID string) (*models.TrackedRun, error)
	FinishRun(ctx context.Context, runID string) error

	GetTrack(ctx context.Context, runID string) ([]models.Location, error)
	GetLatest(ctx context.Context, runID string) (*models.Location, error)
	RemoveVehicle(ctx context.Context, vehicleID string) error
}
