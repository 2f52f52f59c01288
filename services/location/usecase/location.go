package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/pkg/tracking"
	"github.com/piresc/fleettrack/internal/utils"
	"github.com/piresc/fleettrack/services/location"
)

// LocationUC tracks the position history and viewport of every open run
type LocationUC struct {
	locationRepo location.LocationRepo
	locationGW   location.LocationGW
	sessions     *registry
}

// NewLocationUC creates a new location use case
func NewLocationUC(locationRepo location.LocationRepo, locationGW location.LocationGW) *LocationUC {
	return &LocationUC{
		locationRepo: locationRepo,
		locationGW:   locationGW,
		sessions:     newRegistry(),
	}
}

// OpenRun registers a history for a started run and records who owns it.
// Samples already mirrored in Redis are replayed, so a redelivered
// run.started does not lose the track. A run already marked finished is not
// reopened.
func (uc *LocationUC) OpenRun(ctx context.Context, event models.RunStartedEvent) error {
	if _, ok := uc.sessions.get(event.RunID); ok {
		return nil
	}

	stored, err := uc.locationRepo.GetRun(ctx, event.RunID)
	switch {
	case err == nil && stored.Status != models.RunStatusActive:
		logger.WarnCtx(ctx, "Ignoring start of finished run", logger.String("run_id", event.RunID))
		return nil
	case err != nil && !errors.Is(err, models.ErrRunNotFound):
		return err
	}

	run := models.TrackedRun{
		RunID:     event.RunID,
		VehicleID: event.VehicleID,
		CompanyID: event.CompanyID,
		SectorID:  event.SectorID,
		Status:    models.RunStatusActive,
	}
	if err := uc.locationRepo.SaveRun(ctx, run); err != nil {
		return err
	}

	s, err := uc.restore(ctx, run)
	if err != nil {
		return err
	}
	s, created := uc.sessions.open(s)
	if created {
		logger.InfoCtx(ctx, "Run opened",
			logger.String("run_id", run.RunID),
			logger.String("vehicle_id", run.VehicleID),
			logger.Int("samples", s.history().Len()))
	}
	return nil
}

// CloseRun marks the run finished, drops its history and ends its
// subscriptions. Samples arriving afterwards are refused with
// models.ErrRunNotActive.
func (uc *LocationUC) CloseRun(ctx context.Context, event models.RunFinishedEvent) error {
	if err := uc.locationRepo.FinishRun(ctx, event.RunID); err != nil {
		return err
	}

	vehicleID := event.VehicleID
	if s, ok := uc.sessions.remove(event.RunID); ok {
		s.close()
		if vehicleID == "" {
			vehicleID = s.run.VehicleID
		}
	}

	if vehicleID != "" {
		if err := uc.locationRepo.RemoveVehicle(ctx, vehicleID); err != nil {
			return err
		}
	}

	logger.InfoCtx(ctx, "Run closed", logger.String("run_id", event.RunID))
	return nil
}

// RecordPosition appends a sample from the live feed to its run. An invalid
// sample is rejected with tracking.ErrInvalidCoordinate and leaves the run as
// it was.
func (uc *LocationUC) RecordPosition(ctx context.Context, update models.LocationUpdate) error {
	if err := tracking.ValidateCoordinate(update.Location.Latitude, update.Location.Longitude); err != nil {
		logger.WarnCtx(ctx, "Rejected position sample",
			logger.String("run_id", update.RunID),
			logger.Err(err))
		return err
	}

	s, err := uc.session(ctx, update.RunID)
	if err != nil {
		return err
	}
	if update.VehicleID == "" {
		update.VehicleID = s.run.VehicleID
	}
	if update.Location.Timestamp.IsZero() {
		update.Location.Timestamp = models.Now()
	}

	if err := uc.locationRepo.StorePosition(ctx, update); err != nil {
		return err
	}
	if err := s.history().Append(update.Location); err != nil {
		return err
	}

	if v, ok := s.cache.Get(); ok {
		s.publish(v)
	}

	logger.DebugCtx(ctx, "Position recorded",
		logger.String("run_id", update.RunID),
		logger.Float64("latitude", update.Location.Latitude),
		logger.Float64("longitude", update.Location.Longitude),
		logger.Int("viewport_computations", s.cache.Computations()))
	return nil
}

// GetViewport returns the run's viewport fitted to opts. It returns false
// while the run has no samples yet.
func (uc *LocationUC) GetViewport(ctx context.Context, scope models.Scope, runID string, opts tracking.FrameOptions) (models.MapFrame, bool, error) {
	s, err := uc.session(ctx, runID)
	if err != nil {
		return models.MapFrame{}, false, err
	}
	if !s.run.VisibleTo(scope) {
		return models.MapFrame{}, false, models.ErrRunNotFound
	}

	v, ok := s.cache.Get()
	if !ok {
		return models.MapFrame{}, false, nil
	}
	return tracking.FitFrame(v, opts), true, nil
}

// GetTrack returns every sample of a run with its encoded polyline. Runs no
// longer open are served from the Redis mirror.
func (uc *LocationUC) GetTrack(ctx context.Context, scope models.Scope, runID string) (*models.Track, error) {
	s, _, err := uc.lookup(ctx, scope, runID)
	if err != nil {
		return nil, err
	}

	var samples []models.Location
	if s != nil {
		samples = s.history().Snapshot()
	} else {
		samples, err = uc.locationRepo.GetTrack(ctx, runID)
		if err != nil {
			return nil, err
		}
	}

	return &models.Track{
		RunID:      runID,
		Locations:  samples,
		Polyline:   utils.EncodePolyline(samples),
		DistanceKm: utils.TrackDistance(samples),
	}, nil
}

// GetLatest returns the most recent sample of a run
func (uc *LocationUC) GetLatest(ctx context.Context, scope models.Scope, runID string) (*models.Location, error) {
	s, _, err := uc.lookup(ctx, scope, runID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return uc.locationRepo.GetLatest(ctx, runID)
	}

	latest, ok := s.history().Latest()
	if !ok {
		return nil, models.ErrNoLocationData
	}
	return &latest, nil
}

// Subscribe streams the run's viewport after every accepted sample
func (uc *LocationUC) Subscribe(scope models.Scope, runID string) (<-chan models.Viewport, func(), error) {
	s, ok := uc.sessions.get(runID)
	if !ok || !s.run.VisibleTo(scope) {
		return nil, nil, models.ErrRunNotFound
	}
	ch, cancel := s.subscribe()
	return ch, cancel, nil
}

// SubmitPosition validates a sample received over HTTP and forwards it to the
// live feed, which remains the only writer of run histories. The sample is
// attributed to the run's vehicle.
func (uc *LocationUC) SubmitPosition(ctx context.Context, scope models.Scope, update models.LocationUpdate) error {
	update.RunID = strings.TrimSpace(update.RunID)
	if update.RunID == "" {
		return models.ErrRunNotFound
	}
	if err := tracking.ValidateCoordinate(update.Location.Latitude, update.Location.Longitude); err != nil {
		return err
	}

	_, run, err := uc.lookup(ctx, scope, update.RunID)
	if err != nil {
		return err
	}
	if run.Status != models.RunStatusActive {
		return models.ErrRunNotActive
	}
	if run.VehicleID != "" {
		update.VehicleID = run.VehicleID
	}

	now := models.Now()
	if update.Location.Timestamp.IsZero() {
		update.Location.Timestamp = now
	}
	update.CreatedAt = now

	return uc.locationGW.PublishLocationUpdate(ctx, update)
}

// session returns the open session of a run, restoring it from Redis when
// the process has not seen the run start. Finished runs are refused.
func (uc *LocationUC) session(ctx context.Context, runID string) (*session, error) {
	if s, ok := uc.sessions.get(runID); ok {
		return s, nil
	}

	run, err := uc.locationRepo.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != models.RunStatusActive {
		return nil, models.ErrRunNotActive
	}

	s, err := uc.restore(ctx, *run)
	if err != nil {
		return nil, err
	}

	s, _ = uc.sessions.open(s)
	logger.InfoCtx(ctx, "Run restored from track mirror",
		logger.String("run_id", runID),
		logger.Int("samples", s.history().Len()))
	return s, nil
}

// lookup finds a run owned by scope's company and sector. The session is nil
// when the run is not open in this process. Runs of other tenants are
// reported as not found.
func (uc *LocationUC) lookup(ctx context.Context, scope models.Scope, runID string) (*session, models.TrackedRun, error) {
	s, ok := uc.sessions.get(runID)
	var run models.TrackedRun
	if ok {
		run = s.run
	} else {
		stored, err := uc.locationRepo.GetRun(ctx, runID)
		if err != nil {
			return nil, models.TrackedRun{}, err
		}
		run = *stored
	}

	if !run.VisibleTo(scope) {
		return nil, models.TrackedRun{}, models.ErrRunNotFound
	}
	return s, run, nil
}

// restore builds a session from the run's mirrored track
func (uc *LocationUC) restore(ctx context.Context, run models.TrackedRun) (*session, error) {
	stored, err := uc.locationRepo.GetTrack(ctx, run.RunID)
	if err != nil {
		return nil, err
	}

	history := tracking.NewPositionHistory()
	for _, sample := range stored {
		if err := history.Append(sample); err != nil {
			logger.WarnCtx(ctx, "Skipping stored sample",
				logger.String("run_id", run.RunID),
				logger.Err(err))
		}
	}

	return newSession(run, history), nil
}
