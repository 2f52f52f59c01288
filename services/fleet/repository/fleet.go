package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/piresc/fleettrack/internal/pkg/models"
	nrpkg "github.com/piresc/fleettrack/internal/pkg/newrelic"
)

// FleetRepo reads vehicles and stores refuels in Postgres
type FleetRepo struct {
	db *sqlx.DB
}

// NewFleetRepository creates a new fleet repository
func NewFleetRepository(db *sqlx.DB) *FleetRepo {
	return &FleetRepo{db: db}
}

// ListVehicles returns the trucks of a company sector ordered by id
func (r *FleetRepo) ListVehicles(ctx context.Context, companyID, sectorID string) ([]models.Vehicle, error) {
	query := `
		SELECT id, model
		FROM vehicles
		WHERE company_id = $1 AND sector_id = $2 AND is_truck = true
		ORDER BY id
	`

	vehicles := make([]models.Vehicle, 0)
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "vehicles", "SELECT", func() error {
		return r.db.SelectContext(ctx, &vehicles, query, companyID, sectorID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return vehicles, nil
}

// GetVehicle returns a truck by id. Vehicles outside the scope, or that are
// not trucks, are reported as models.ErrVehicleNotFound.
func (r *FleetRepo) GetVehicle(ctx context.Context, companyID, sectorID, vehicleID string) (*models.Vehicle, error) {
	query := `
		SELECT id, model
		FROM vehicles
		WHERE id = $1 AND company_id = $2 AND sector_id = $3 AND is_truck = true
	`

	var vehicle models.Vehicle
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "vehicles", "SELECT", func() error {
		return r.db.GetContext(ctx, &vehicle, query, vehicleID, companyID, sectorID)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}

// CreateRefuel inserts a refuel record
func (r *FleetRepo) CreateRefuel(ctx context.Context, refuel *models.Refuel) error {
	query := `
		INSERT INTO refuels (
			id, driver_id, driver_name, vehicle_id, company_id, sector_id,
			liters, amount, created_at
		) VALUES (
			:id, :driver_id, :driver_name, :vehicle_id, :company_id, :sector_id,
			:liters, :amount, :created_at
		)
	`

	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "refuels", "INSERT", func() error {
		_, err := r.db.NamedExecContext(ctx, query, refuel)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create refuel: %w", err)
	}

	return nil
}

// ListRefuels returns refuels of a company sector, newest first. An empty
// vehicleID lists every vehicle.
func (r *FleetRepo) ListRefuels(ctx context.Context, companyID, sectorID, vehicleID string) ([]*models.Refuel, error) {
	query := `
		SELECT id, driver_id, driver_name, vehicle_id, company_id, sector_id,
			liters, amount, created_at
		FROM refuels
		WHERE company_id = $1 AND sector_id = $2 AND ($3::text = '' OR vehicle_id = $3)
		ORDER BY created_at DESC
	`

	refuels := make([]*models.Refuel, 0)
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "refuels", "SELECT", func() error {
		return r.db.SelectContext(ctx, &refuels, query, companyID, sectorID, vehicleID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list refuels: %w", err)
	}

	return refuels, nil
}
