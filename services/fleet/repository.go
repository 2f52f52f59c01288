package fleet

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// FleetRepo defines the interface for vehicle and refuel data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/fleettrack/services/fleet FleetRepo
type FleetRepo interface {
	ListVehicles(ctx context.Context, companyID, sectorID string) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, companyID, sectorID, vehicleID string) (*models.Vehicle, error)
	CreateRefuel(ctx context.Context, refuel *models.Refuel) error
	ListRefuels(ctx context.Context, companyID, sectorID, vehicleID string) ([]*models.Refuel, error)
}
