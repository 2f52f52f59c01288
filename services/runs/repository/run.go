package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/piresc/fleettrack/internal/pkg/models"
	nrpkg "github.com/piresc/fleettrack/internal/pkg/newrelic"
)

// RunRepo stores runs in Postgres
type RunRepo struct {
	db *sqlx.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *sqlx.DB) *RunRepo {
	return &RunRepo{db: db}
}

type runRow struct {
	ID         string           `db:"id"`
	OperatorID string           `db:"operator_id"`
	CompanyID  string           `db:"company_id"`
	SectorID   string           `db:"sector_id"`
	VehicleID  string           `db:"vehicle_id"`
	Mileage    float64          `db:"mileage"`
	StopPoints pq.StringArray   `db:"stop_points"`
	Status     models.RunStatus `db:"status"`
	StartedAt  time.Time        `db:"started_at"`
	FinishedAt sql.NullTime     `db:"finished_at"`
}

func (r runRow) toModel() *models.Run {
	run := &models.Run{
		ID:         r.ID,
		OperatorID: r.OperatorID,
		CompanyID:  r.CompanyID,
		SectorID:   r.SectorID,
		VehicleID:  r.VehicleID,
		Mileage:    r.Mileage,
		StopPoints: make([]models.StopPoint, len(r.StopPoints)),
		Status:     r.Status,
		StartedAt:  r.StartedAt,
	}
	for i, p := range r.StopPoints {
		run.StopPoints[i] = models.StopPoint(p)
	}
	if r.FinishedAt.Valid {
		finishedAt := r.FinishedAt.Time
		run.FinishedAt = &finishedAt
	}
	return run
}

// CreateRun inserts a new run
func (r *RunRepo) CreateRun(ctx context.Context, run *models.Run) error {
	query := `
		INSERT INTO runs (
			id, operator_id, company_id, sector_id, vehicle_id,
			mileage, stop_points, status, started_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	stops := make([]string, len(run.StopPoints))
	for i, p := range run.StopPoints {
		stops[i] = string(p)
	}

	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "runs", "INSERT", func() error {
		_, err := r.db.ExecContext(ctx, query,
			run.ID,
			run.OperatorID,
			run.CompanyID,
			run.SectorID,
			run.VehicleID,
			run.Mileage,
			pq.Array(stops),
			run.Status,
			run.StartedAt,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// GetRun returns a run of a company sector or models.ErrRunNotFound
func (r *RunRepo) GetRun(ctx context.Context, companyID, sectorID, runID string) (*models.Run, error) {
	query := `
		SELECT id, operator_id, company_id, sector_id, vehicle_id,
			mileage, stop_points, status, started_at, finished_at
		FROM runs
		WHERE id = $1 AND company_id = $2 AND sector_id = $3
	`

	var row runRow
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "runs", "SELECT", func() error {
		return r.db.GetContext(ctx, &row, query, runID, companyID, sectorID)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return row.toModel(), nil
}

// FinishRun marks an active run as finished. A run that is missing or
// already finished yields models.ErrRunNotActive.
func (r *RunRepo) FinishRun(ctx context.Context, runID string, finishedAt time.Time) error {
	query := `
		UPDATE runs
		SET status = $1, finished_at = $2
		WHERE id = $3 AND status = $4
	`

	var result sql.Result
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "runs", "UPDATE", func() error {
		var err error
		result, err = r.db.ExecContext(ctx, query,
			models.RunStatusFinished, finishedAt, runID, models.RunStatusActive)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	if affected == 0 {
		return models.ErrRunNotActive
	}

	return nil
}

// DeleteRun removes a run whose start could not be announced
func (r *RunRepo) DeleteRun(ctx context.Context, runID string) error {
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "runs", "DELETE", func() error {
		_, err := r.db.ExecContext(ctx, `DELETE FROM runs WHERE id = $1`, runID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}
