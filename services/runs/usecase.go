package runs

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// RunUC defines the interface for route planning and run lifecycle logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/fleettrack/services/runs RunUC
type RunUC interface {
	// Route draft operations, one draft per operator
	GetDraft(ctx context.Context, scope models.Scope) models.RouteDraft
	ResetDraft(ctx context.Context, scope models.Scope) models.RouteDraft
	SelectVehicle(ctx context.Context, scope models.Scope, vehicleID string) (models.RouteDraft, error)
	SetMileage(ctx context.Context, scope models.Scope, mileage string) models.RouteDraft
	AddStop(ctx context.Context, scope models.Scope, point models.StopPoint) (models.RouteDraft, error)
	RemoveStop(ctx context.Context, scope models.Scope, index int) (models.RouteDraft, error)
	MoveStop(ctx context.Context, scope models.Scope, index int, direction models.MoveDirection) (models.RouteDraft, error)
	ListStopPoints(ctx context.Context) []models.StopPoint

	// Run lifecycle operations
	StartRun(ctx context.Context, scope models.Scope) (*models.Run, error)
	FinishRun(ctx context.Context, scope models.Scope, runID string) (*models.Run, error)
	GetRun(ctx context.Context, scope models.Scope, runID string) (*models.Run, error)
}
