package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/database"
	"github.com/piresc/fleettrack/internal/pkg/models"
	nrpkg "github.com/piresc/fleettrack/internal/pkg/newrelic"
	"github.com/piresc/fleettrack/internal/utils"
)

// LocationRepo mirrors run positions to Redis
type LocationRepo struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewLocationRepository creates a new location repository. Keys of a run
// expire ttl after its last sample; zero uses constants.DefaultHistoryTTL.
func NewLocationRepository(redisClient *database.RedisClient, ttl time.Duration) *LocationRepo {
	if ttl <= 0 {
		ttl = constants.DefaultHistoryTTL
	}
	return &LocationRepo{redis: redisClient, ttl: ttl}
}

// StorePosition records update as the latest position of its run, appends
// it to the run's track and moves the vehicle in the fleet geo set
func (r *LocationRepo) StorePosition(ctx context.Context, update models.LocationUpdate) error {
	sample, err := json.Marshal(update.Location)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	latestKey := fmt.Sprintf(constants.KeyRunLocation, update.RunID)
	trackKey := fmt.Sprintf(constants.KeyRunTrack, update.RunID)
	metaKey := fmt.Sprintf(constants.KeyRunMeta, update.RunID)
	loc := update.Location

	err = nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, "run_location", "MULTI", func() error {
		_, err := r.redis.GetClient().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, latestKey, map[string]interface{}{
				constants.FieldLatitude:  loc.Latitude,
				constants.FieldLongitude: loc.Longitude,
				constants.FieldTimestamp: loc.Timestamp.UnixMilli(),
				constants.FieldGeohash:   utils.EncodeLocation(loc, utils.DefaultGeohashPrecision),
				constants.FieldVehicleID: update.VehicleID,
			})
			pipe.Expire(ctx, latestKey, r.ttl)
			pipe.RPush(ctx, trackKey, sample)
			pipe.Expire(ctx, trackKey, r.ttl)
			pipe.Expire(ctx, metaKey, r.ttl)
			return nil
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to store position: %w", err)
	}

	if update.VehicleID == "" {
		return nil
	}

	err = nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, "fleet_positions", "GEOADD", func() error {
		return r.redis.GeoAdd(ctx, constants.KeyFleetGeo, loc.Longitude, loc.Latitude, update.VehicleID)
	})
	if err != nil {
		return fmt.Errorf("failed to update fleet position: %w", err)
	}
	return nil
}

// SaveRun records the owner and status of a tracked run
func (r *LocationRepo) SaveRun(ctx context.Context, run models.TrackedRun) error {
	key := fmt.Sprintf(constants.KeyRunMeta, run.RunID)
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, "run_meta", "MULTI", func() error {
		_, err := r.redis.GetClient().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, map[string]interface{}{
				constants.FieldVehicleID: run.VehicleID,
				constants.FieldCompanyID: run.CompanyID,
				constants.FieldSectorID:  run.SectorID,
				constants.FieldStatus:    string(run.Status),
			})
			pipe.Expire(ctx, key, r.ttl)
			return nil
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// GetRun returns the stored owner and status of a run, or
// models.ErrRunNotFound when the run is unknown or expired
func (r *LocationRepo) GetRun(ctx context.Context, runID string) (*models.TrackedRun, error) {
	var fields map[string]string
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, "run_meta", "HGETALL", func() error {
		var err error
		fields, err = r.redis.GetClient().HGetAll(ctx, fmt.Sprintf(constants.KeyRunMeta, runID)).Result()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	if len(fields) == 0 {
		return nil, models.ErrRunNotFound
	}

	return &models.TrackedRun{
		RunID:     runID,
		VehicleID: fields[constants.FieldVehicleID],
		CompanyID: fields[constants.FieldCompanyID],
		SectorID:  fields[constants.FieldSectorID],
		Status:    models.RunStatus(fields[constants.FieldStatus]),
	}, nil
}

// FinishRun marks a run finished. The marker is written even for runs this
// service never saw start, so the run cannot be reopened from its track.
func (r *LocationRepo) FinishRun(ctx context.Context, runID string) error {
	key := fmt.Sprintf(constants.KeyRunMeta, runID)
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, "run_meta", "MULTI", func() error {
		_, err := r.redis.GetClient().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, constants.FieldStatus, string(models.RunStatusFinished))
			pipe.Expire(ctx, key, r.ttl)
			return nil
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// GetTrack returns every stored sample of a run in arrival order
func (r *LocationRepo) GetTrack(ctx context.Context, runID string) ([]models.Location, error) {
	var raw []string
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, "run_track", "LRANGE", func() error {
		var err error
		raw, err = r.redis.GetClient().LRange(ctx, fmt.Sprintf(constants.KeyRunTrack, runID), 0, -1).Result()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get track: %w", err)
	}

	track := make([]models.Location, 0, len(raw))
	for _, item := range raw {
		var loc models.Location
		if err := json.Unmarshal([]byte(item), &loc); err != nil {
			return nil, fmt.Errorf("failed to decode track sample: %w", err)
		}
		track = append(track, loc)
	}
	return track, nil
}

// GetLatest returns the most recent stored sample of a run
func (r *LocationRepo) GetLatest(ctx context.Context, runID string) (*models.Location, error) {
	var fields map[string]string
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, "run_location", "HGETALL", func() error {
		var err error
		fields, err = r.redis.GetClient().HGetAll(ctx, fmt.Sprintf(constants.KeyRunLocation, runID)).Result()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get latest position: %w", err)
	}
	if len(fields) == 0 {
		return nil, models.ErrNoLocationData
	}

	lat, latErr := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	lng, lngErr := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	ts, tsErr := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64)
	if err := errors.Join(latErr, lngErr, tsErr); err != nil {
		return nil, fmt.Errorf("failed to decode latest position: %w", err)
	}

	return &models.Location{
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.UnixMilli(ts).UTC(),
	}, nil
}

// RemoveVehicle drops a vehicle from the fleet geo set
func (r *LocationRepo) RemoveVehicle(ctx context.Context, vehicleID string) error {
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, "fleet_positions", "ZREM", func() error {
		return r.redis.GeoRemove(ctx, constants.KeyFleetGeo, vehicleID)
	})
	if err != nil {
		return fmt.Errorf("failed to remove vehicle position: %w", err)
	}
	return nil
}
