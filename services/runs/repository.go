package runs

import (
	"context"
	"time"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// RunRepo defines the interface for run persistence
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/fleettrack/services/runs RunRepo,VehicleRepo
type RunRepo interface {
	CreateRun(ctx context.Context, run *models.Run) error
	GetRun(ctx context.Context, companyID, sectorID, runID string) (*models.Run, error)
	FinishRun(ctx context.Context, runID string, finishedAt time.Time) error
	DeleteRun(ctx context.Context, runID string) error
}

// VehicleRepo is the vehicle lookup used to check a draft's vehicle
type VehicleRepo interface {
	GetVehicle(ctx context.Context, companyID, sectorID, vehicleID string) (*models.Vehicle, error)
}
