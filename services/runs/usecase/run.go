package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/pkg/tracking"
	"github.com/piresc/fleettrack/services/runs"
)

// StopPointCatalog is the stop-point list operators pick route entries from
type StopPointCatalog interface {
	tracking.Catalog
	List() []models.StopPoint
}

// RunUC implements route planning and the run lifecycle
type RunUC struct {
	runRepo     runs.RunRepo
	vehicleRepo runs.VehicleRepo
	runGW       runs.RunGW
	catalog     StopPointCatalog
	drafts      *draftStore
}

// NewRunUC creates a new run use case
func NewRunUC(
	runRepo runs.RunRepo,
	vehicleRepo runs.VehicleRepo,
	runGW runs.RunGW,
	catalog StopPointCatalog,
) *RunUC {
	return &RunUC{
		runRepo:     runRepo,
		vehicleRepo: vehicleRepo,
		runGW:       runGW,
		catalog:     catalog,
		drafts:      newDraftStore(catalog),
	}
}

// GetDraft returns the operator's route draft
func (uc *RunUC) GetDraft(ctx context.Context, scope models.Scope) models.RouteDraft {
	return uc.drafts.view(scope.UserID)
}

// ResetDraft discards the operator's draft
func (uc *RunUC) ResetDraft(ctx context.Context, scope models.Scope) models.RouteDraft {
	uc.drafts.discard(scope.UserID)
	return uc.drafts.view(scope.UserID)
}

// SelectVehicle sets the draft's vehicle. The vehicle must be a truck of the
// operator's sector; an empty id clears the selection.
func (uc *RunUC) SelectVehicle(ctx context.Context, scope models.Scope, vehicleID string) (models.RouteDraft, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID != "" {
		if _, err := uc.vehicleRepo.GetVehicle(ctx, scope.CompanyID, scope.SectorID, vehicleID); err != nil {
			return uc.drafts.view(scope.UserID), err
		}
	}

	return uc.drafts.update(scope.UserID, func(p *tracking.RoutePlanner) error {
		p.SelectVehicle(vehicleID)
		return nil
	})
}

// SetMileage stores the raw mileage input of the draft
func (uc *RunUC) SetMileage(ctx context.Context, scope models.Scope, mileage string) models.RouteDraft {
	draft, _ := uc.drafts.update(scope.UserID, func(p *tracking.RoutePlanner) error {
		p.SetMileage(mileage)
		return nil
	})
	return draft
}

// AddStop appends a stop point to the draft route
func (uc *RunUC) AddStop(ctx context.Context, scope models.Scope, point models.StopPoint) (models.RouteDraft, error) {
	return uc.drafts.update(scope.UserID, func(p *tracking.RoutePlanner) error {
		return p.Append(point)
	})
}

// RemoveStop removes the stop at index from the draft route
func (uc *RunUC) RemoveStop(ctx context.Context, scope models.Scope, index int) (models.RouteDraft, error) {
	return uc.drafts.update(scope.UserID, func(p *tracking.RoutePlanner) error {
		return p.RemoveAt(index)
	})
}

// MoveStop swaps the stop at index with its neighbour in direction
func (uc *RunUC) MoveStop(ctx context.Context, scope models.Scope, index int, direction models.MoveDirection) (models.RouteDraft, error) {
	return uc.drafts.update(scope.UserID, func(p *tracking.RoutePlanner) error {
		return p.Move(index, direction)
	})
}

// ListStopPoints returns the stop-point catalog in order
func (uc *RunUC) ListStopPoints(ctx context.Context) []models.StopPoint {
	return uc.catalog.List()
}

// StartRun submits the operator's draft. Nothing is persisted or published
// unless the draft is complete, and the run is removed again if its start
// cannot be announced. The draft is taken out for the duration of the start,
// so a concurrent StartRun of the same operator finds nothing to submit; it
// is handed back when the start fails.
func (uc *RunUC) StartRun(ctx context.Context, scope models.Scope) (*models.Run, error) {
	submission, planner, err := uc.drafts.take(scope.UserID)
	if err != nil {
		return nil, err
	}

	run, err := uc.startRun(ctx, scope, submission)
	if err != nil {
		uc.drafts.restore(scope.UserID, planner)
		return nil, err
	}

	logger.InfoCtx(ctx, "Run started",
		logger.String("run_id", run.ID),
		logger.String("vehicle_id", run.VehicleID),
		logger.Int("stop_points", len(run.StopPoints)))

	return run, nil
}

func (uc *RunUC) startRun(ctx context.Context, scope models.Scope, submission models.RunSubmission) (*models.Run, error) {
	vehicle, err := uc.vehicleRepo.GetVehicle(ctx, scope.CompanyID, scope.SectorID, submission.VehicleID)
	if err != nil {
		return nil, err
	}

	run := &models.Run{
		ID:         uuid.NewString(),
		OperatorID: scope.UserID,
		CompanyID:  scope.CompanyID,
		SectorID:   scope.SectorID,
		VehicleID:  vehicle.ID,
		Mileage:    submission.Mileage,
		StopPoints: submission.Route,
		Status:     models.RunStatusActive,
		StartedAt:  models.Now(),
	}

	if err := uc.runRepo.CreateRun(ctx, run); err != nil {
		return nil, err
	}

	event := models.RunStartedEvent{
		RunID:      run.ID,
		VehicleID:  run.VehicleID,
		OperatorID: run.OperatorID,
		CompanyID:  run.CompanyID,
		SectorID:   run.SectorID,
		Mileage:    run.Mileage,
		StopPoints: run.StopPoints,
		StartedAt:  run.StartedAt,
	}
	if err := uc.runGW.PublishRunStarted(ctx, event); err != nil {
		if delErr := uc.runRepo.DeleteRun(ctx, run.ID); delErr != nil {
			logger.ErrorCtx(ctx, "Failed to roll back unannounced run",
				logger.String("run_id", run.ID),
				logger.Err(delErr))
		}
		return nil, fmt.Errorf("failed to start run: %w", err)
	}
	return run, nil
}

// FinishRun ends an active run of the operator's sector
func (uc *RunUC) FinishRun(ctx context.Context, scope models.Scope, runID string) (*models.Run, error) {
	run, err := uc.runRepo.GetRun(ctx, scope.CompanyID, scope.SectorID, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != models.RunStatusActive {
		return nil, models.ErrRunNotActive
	}

	finishedAt := models.Now()
	if err := uc.runRepo.FinishRun(ctx, run.ID, finishedAt); err != nil {
		return nil, err
	}
	run.Status = models.RunStatusFinished
	run.FinishedAt = &finishedAt

	event := models.RunFinishedEvent{
		RunID:      run.ID,
		VehicleID:  run.VehicleID,
		FinishedAt: finishedAt,
	}
	if err := uc.runGW.PublishRunFinished(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Run finished but event was not published",
			logger.String("run_id", run.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Run finished", logger.String("run_id", run.ID))
	return run, nil
}

// GetRun returns a run of the operator's sector
func (uc *RunUC) GetRun(ctx context.Context, scope models.Scope, runID string) (*models.Run, error) {
	return uc.runRepo.GetRun(ctx, scope.CompanyID, scope.SectorID, runID)
}
