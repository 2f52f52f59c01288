package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/services/fleet"
)

// FleetUC implements the fleet use cases
type FleetUC struct {
	repo     fleet.FleetRepo
	validate *validator.Validate
}

// NewFleetUC creates a new fleet use case
func NewFleetUC(repo fleet.FleetRepo) *FleetUC {
	return &FleetUC{
		repo:     repo,
		validate: validator.New(),
	}
}

// ListVehicles returns the trucks available in the operator's scope
func (uc *FleetUC) ListVehicles(ctx context.Context, scope models.Scope) ([]models.Vehicle, error) {
	return uc.repo.ListVehicles(ctx, scope.CompanyID, scope.SectorID)
}

// GetVehicle returns one truck of the operator's scope
func (uc *FleetUC) GetVehicle(ctx context.Context, scope models.Scope, vehicleID string) (*models.Vehicle, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, models.ErrVehicleNotFound
	}
	return uc.repo.GetVehicle(ctx, scope.CompanyID, scope.SectorID, vehicleID)
}

// RegisterRefuel validates and stores a refuel made by the operator
func (uc *FleetUC) RegisterRefuel(ctx context.Context, scope models.Scope, req models.RefuelRequest) (*models.Refuel, error) {
	req.VehicleID = strings.TrimSpace(req.VehicleID)
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidRefuel, describe(err))
	}

	vehicle, err := uc.repo.GetVehicle(ctx, scope.CompanyID, scope.SectorID, req.VehicleID)
	if err != nil {
		return nil, err
	}

	refuel := &models.Refuel{
		ID:         uuid.NewString(),
		DriverID:   scope.UserID,
		DriverName: scope.Name,
		VehicleID:  vehicle.ID,
		CompanyID:  scope.CompanyID,
		SectorID:   scope.SectorID,
		Liters:     req.Liters,
		Amount:     req.Amount,
		CreatedAt:  models.Now(),
	}

	if err := uc.repo.CreateRefuel(ctx, refuel); err != nil {
		logger.ErrorCtx(ctx, "Failed to store refuel",
			logger.String("vehicle_id", refuel.VehicleID),
			logger.Err(err))
		return nil, err
	}

	logger.InfoCtx(ctx, "Refuel registered",
		logger.String("refuel_id", refuel.ID),
		logger.String("vehicle_id", refuel.VehicleID),
		logger.Float64("liters", refuel.Liters))

	return refuel, nil
}

// ListRefuels returns refuels in the operator's scope, newest first
func (uc *FleetUC) ListRefuels(ctx context.Context, scope models.Scope, vehicleID string) ([]*models.Refuel, error) {
	return uc.repo.ListRefuels(ctx, scope.CompanyID, scope.SectorID, strings.TrimSpace(vehicleID))
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field())+" "+fe.Tag())
	}
	return strings.Join(fields, ", ")
}
