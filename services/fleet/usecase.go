package fleet

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// FleetUC defines the interface for vehicle catalog and refuel business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/fleettrack/services/fleet FleetUC
type FleetUC interface {
	ListVehicles(ctx context.Context, scope models.Scope) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, scope models.Scope, vehicleID string) (*models.Vehicle, error)
	RegisterRefuel(ctx context.Context, scope models.Scope, req models.RefuelRequest) (*models.Refuel, error)
	ListRefuels(ctx context.Context, scope models.Scope, vehicleID string) ([]*models.Refuel, error)
}
