package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/pkg/tracking"
	"github.com/piresc/fleettrack/services/location/mocks"
)

var (
	testScope  = models.Scope{UserID: "viewer-1", CompanyID: "acme", SectorID: "plant-1"}
	otherScope = models.Scope{UserID: "viewer-9", CompanyID: "globex", SectorID: "plant-1"}
)

type locationMocks struct {
	repo *mocks.MockLocationRepo
	gw   *mocks.MockLocationGW
}

func newTestLocationUC(t *testing.T) (*LocationUC, locationMocks) {
	ctrl := gomock.NewController(t)
	m := locationMocks{
		repo: mocks.NewMockLocationRepo(ctrl),
		gw:   mocks.NewMockLocationGW(ctrl),
	}
	return NewLocationUC(m.repo, m.gw), m
}

func sample(lat, lng float64) models.Location {
	return models.Location{Latitude: lat, Longitude: lng, Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func positionOf(runID string, lat, lng float64) models.LocationUpdate {
	return models.LocationUpdate{RunID: runID, VehicleID: "truck-1", Location: sample(lat, lng)}
}

func trackedRun(runID string, status models.RunStatus) *models.TrackedRun {
	return &models.TrackedRun{
		RunID:     runID,
		VehicleID: "truck-1",
		CompanyID: "acme",
		SectorID:  "plant-1",
		Status:    status,
	}
}

func startedEvent(runID string) models.RunStartedEvent {
	return models.RunStartedEvent{RunID: runID, VehicleID: "truck-1", CompanyID: "acme", SectorID: "plant-1"}
}

func openRun(t *testing.T, uc *LocationUC, m locationMocks, runID string) {
	t.Helper()
	m.repo.EXPECT().GetRun(gomock.Any(), runID).Return(nil, models.ErrRunNotFound)
	m.repo.EXPECT().SaveRun(gomock.Any(), *trackedRun(runID, models.RunStatusActive)).Return(nil)
	m.repo.EXPECT().GetTrack(gomock.Any(), runID).Return(nil, nil)
	require.NoError(t, uc.OpenRun(context.Background(), startedEvent(runID)))
}

func TestOpenRun_Idempotent(t *testing.T) {
	uc, m := newTestLocationUC(t)
	openRun(t, uc, m, "run-1")

	// second delivery does not touch Redis again
	require.NoError(t, uc.OpenRun(context.Background(), startedEvent("run-1")))

	_, ok, err := uc.GetViewport(context.Background(), testScope, "run-1", tracking.DefaultFrameOptions())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenRun_RestoresMirroredTrack(t *testing.T) {
	uc, m := newTestLocationUC(t)
	m.repo.EXPECT().GetRun(gomock.Any(), "run-1").Return(trackedRun("run-1", models.RunStatusActive), nil)
	m.repo.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil)
	m.repo.EXPECT().GetTrack(gomock.Any(), "run-1").
		Return([]models.Location{sample(10, 10), sample(91, 0), sample(20, 20)}, nil)

	require.NoError(t, uc.OpenRun(context.Background(), startedEvent("run-1")))

	track, err := uc.GetTrack(context.Background(), testScope, "run-1")
	require.NoError(t, err)
	assert.Len(t, track.Locations, 2)
}

func TestOpenRun_IgnoresFinishedRun(t *testing.T) {
	uc, m := newTestLocationUC(t)
	m.repo.EXPECT().GetRun(gomock.Any(), "run-1").Return(trackedRun("run-1", models.RunStatusFinished), nil)

	require.NoError(t, uc.OpenRun(context.Background(), startedEvent("run-1")))

	_, _, err := uc.Subscribe(testScope, "run-1")
	assert.ErrorIs(t, err, models.ErrRunNotFound)
}

func TestOpenRun_RedisError(t *testing.T) {
	uc, m := newTestLocationUC(t)
	m.repo.EXPECT().GetRun(gomock.Any(), "run-1").Return(nil, errors.New("redis down"))

	assert.Error(t, uc.OpenRun(context.Background(), startedEvent("run-1")))
}

func TestRecordPosition(t *testing.T) {
	uc, m := newTestLocationUC(t)
	ctx := context.Background()
	openRun(t, uc, m, "run-1")

	m.repo.EXPECT().StorePosition(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	require.NoError(t, uc.RecordPosition(ctx, positionOf("run-1", 10, 10)))
	require.NoError(t, uc.RecordPosition(ctx, positionOf("run-1", 20, 20)))
	require.NoError(t, uc.RecordPosition(ctx, positionOf("run-1", 5, 5)))

	frame, ok, err := uc.GetViewport(ctx, testScope, "run-1", tracking.DefaultFrameOptions())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.Coordinate{Latitude: 5, Longitude: 5}, frame.Bounds.SouthWest)
	assert.Equal(t, models.Coordinate{Latitude: 20, Longitude: 20}, frame.Bounds.NorthEast)
	assert.Equal(t, 5.0, frame.Focal.Latitude)
	assert.Equal(t, 3, frame.Samples)
}

func TestRecordPosition_InvalidCoordinate(t *testing.T) {
	uc, m := newTestLocationUC(t)
	ctx := context.Background()
	openRun(t, uc, m, "run-1")

	err := uc.RecordPosition(ctx, positionOf("run-1", 91, 0))
	assert.ErrorIs(t, err, tracking.ErrInvalidCoordinate)

	_, ok, err := uc.GetViewport(ctx, testScope, "run-1", tracking.DefaultFrameOptions())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecordPosition_UnknownRun(t *testing.T) {
	uc, m := newTestLocationUC(t)
	m.repo.EXPECT().GetRun(gomock.Any(), "ghost").Return(nil, models.ErrRunNotFound)

	err := uc.RecordPosition(context.Background(), positionOf("ghost", 10, 10))
	assert.ErrorIs(t, err, models.ErrRunNotFound)
}

func TestRecordPosition_RestoresRunAfterRestart(t *testing.T) {
	uc, m := newTestLocationUC(t)
	ctx := context.Background()

	m.repo.EXPECT().GetRun(gomock.Any(), "run-1").Return(trackedRun("run-1", models.RunStatusActive), nil)
	m.repo.EXPECT().GetTrack(gomock.Any(), "run-1").Return([]models.Location{sample(10, 10)}, nil)
	m.repo.EXPECT().StorePosition(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, uc.RecordPosition(ctx, positionOf("run-1", 20, 20)))

	latest, err := uc.GetLatest(ctx, testScope, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, latest.Latitude)
}

func TestRecordPosition_StoreFailureLeavesHistory(t *testing.T) {
	uc, m := newTestLocationUC(t)
	ctx := context.Background()
	openRun(t, uc, m, "run-1")

	m.repo.EXPECT().StorePosition(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	assert.Error(t, uc.RecordPosition(ctx, positionOf("run-1", 10, 10)))
	_, err := uc.GetLatest(ctx, testScope, "run-1")
	assert.ErrorIs(t, err, models.ErrNoLocationData)
}

func TestCloseRun(t *testing.T) {
	uc, m := newTestLocationUC(t)
	ctx := context.Background()
	openRun(t, uc, m, "run-1")

	ch, cancel, err := uc.Subscribe(testScope, "run-1")
	require.NoError(t, err)
	defer cancel()

	m.repo.EXPECT().FinishRun(gomock.Any(), "run-1").Return(nil)
	m.repo.EXPECT().RemoveVehicle(gomock.Any(), "truck-1").Return(nil)
	require.NoError(t, uc.CloseRun(ctx, models.RunFinishedEvent{RunID: "run-1"}))

	_, open := <-ch
	assert.False(t, open)

	_, _, err = uc.Subscribe(testScope, "run-1")
	assert.ErrorIs(t, err, models.ErrRunNotFound)
}

func TestCloseRun_FinishedRunIsNotRestored(t *testing.T) {
	uc, m := newTestLocationUC(t)
	ctx := context.Background()
	openRun(t, uc, m, "run-1")

	m.repo.EXPECT().StorePosition(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, uc.RecordPosition(ctx, positionOf("run-1", 10, 10)))

	m.repo.EXPECT().FinishRun(gomock.Any(), "run-1").Return(nil)
	m.repo.EXPECT().RemoveVehicle(gomock.Any(), "truck-1").Return(nil)
	require.NoError(t, uc.CloseRun(ctx, models.RunFinishedEvent{RunID: "run-1"}))

	// the mirror still holds the track, but the run is marked finished
	m.repo.EXPECT().GetRun(gomock.Any(), "run-1").Return(trackedRun("run-1", models.RunStatusFinished), nil).Times(3)

	_, _, err := uc.GetViewport(ctx, testScope, "run-1", tracking.DefaultFrameOptions())
	assert.ErrorIs(t, err, models.ErrRunNotActive)

	err = uc.RecordPosition(ctx, positionOf("run-1", 20, 20))
	assert.ErrorIs(t, err, models.ErrRunNotActive)

	_, ok := uc.sessions.get("run-1")
	assert.False(t, ok, "finished run re-registered")

	// the finished track stays readable from the mirror
	m.repo.EXPECT().GetTrack(gomock.Any(), "run-1").Return([]models.Location{sample(10, 10)}, nil)
	track, err := uc.GetTrack(ctx, testScope, "run-1")
	require.NoError(t, err)
	assert.Len(t, track.Locations, 1)
}

func TestCloseRun_FinishError(t *testing.T) {
	uc, m := newTestLocationUC(t)
	ctx := context.Background()
	openRun(t, uc, m, "run-1")

	m.repo.EXPECT().FinishRun(gomock.Any(), "run-1").Return(errors.New("redis down"))
	assert.Error(t, uc.CloseRun(ctx, models.RunFinishedEvent{RunID: "run-1"}))

	_, ok := uc.sessions.get("run-1")
	assert.True(t, ok, "session kept for redelivery")
}

func TestSubscribe_KeepsNewestViewport(t *testing.T) {
	uc, m := newTestLocationUC(t)
	ctx := context.Background()
	openRun(t, uc, m, "run-1")

	ch, cancel, err := uc.Subscribe(testScope, "run-1")
	require.NoError(t, err)

	m.repo.EXPECT().StorePosition(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	require.NoError(t, uc.RecordPosition(ctx, positionOf("run-1", 10, 10)))
	require.NoError(t, uc.RecordPosition(ctx, positionOf("run-1", 20, 20)))

	v := <-ch
	assert.Equal(t, 2, v.Samples)
	assert.Equal(t, 20.0, v.Focal.Latitude)

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)

	s, ok := uc.sessions.get("run-1")
	require.True(t, ok)
	assert.Equal(t, 0, s.subscribers())
}

func TestSubscribe_UnknownRun(t *testing.T) {
	uc, _ := newTestLocationUC(t)

	_, _, err := uc.Subscribe(testScope, "run-1")
	assert.ErrorIs(t, err, models.ErrRunNotFound)
}

func TestOtherTenantCannotReachOpenRun(t *testing.T) {
	uc, m := newTestLocationUC(t)
	ctx := context.Background()
	openRun(t, uc, m, "run-1")

	_, _, err := uc.GetViewport(ctx, otherScope, "run-1", tracking.DefaultFrameOptions())
	assert.ErrorIs(t, err, models.ErrRunNotFound)

	_, err = uc.GetTrack(ctx, otherScope, "run-1")
	assert.ErrorIs(t, err, models.ErrRunNotFound)

	_, err = uc.GetLatest(ctx, otherScope, "run-1")
	assert.ErrorIs(t, err, models.ErrRunNotFound)

	_, _, err = uc.Subscribe(otherScope, "run-1")
	assert.ErrorIs(t, err, models.ErrRunNotFound)

	// no publish expected on the gateway mock
	err = uc.SubmitPosition(ctx, otherScope, positionOf("run-1", 10, 10))
	assert.ErrorIs(t, err, models.ErrRunNotFound)
}

func TestOtherTenantCannotReachMirroredRun(t *testing.T) {
	uc, m := newTestLocationUC(t)
	ctx := context.Background()

	m.repo.EXPECT().GetRun(gomock.Any(), "run-1").Return(trackedRun("run-1", models.RunStatusFinished), nil).Times(2)

	_, err := uc.GetTrack(ctx, otherScope, "run-1")
	assert.ErrorIs(t, err, models.ErrRunNotFound)

	_, err = uc.GetLatest(ctx, otherScope, "run-1")
	assert.ErrorIs(t, err, models.ErrRunNotFound)
}

func TestGetTrack_FromMirror(t *testing.T) {
	uc, m := newTestLocationUC(t)
	m.repo.EXPECT().GetRun(gomock.Any(), "run-1").Return(trackedRun("run-1", models.RunStatusFinished), nil)
	m.repo.EXPECT().GetTrack(gomock.Any(), "run-1").
		Return([]models.Location{sample(38.5, -120.2), sample(40.7, -120.95)}, nil)

	track, err := uc.GetTrack(context.Background(), testScope, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", track.RunID)
	assert.NotEmpty(t, track.Polyline)
	assert.Greater(t, track.DistanceKm, 200.0)
}

func TestGetTrack_NotFound(t *testing.T) {
	uc, m := newTestLocationUC(t)
	m.repo.EXPECT().GetRun(gomock.Any(), "run-1").Return(nil, models.ErrRunNotFound)

	_, err := uc.GetTrack(context.Background(), testScope, "run-1")
	assert.ErrorIs(t, err, models.ErrRunNotFound)
}

func TestGetLatest_FromMirror(t *testing.T) {
	uc, m := newTestLocationUC(t)
	loc := sample(10, 10)
	m.repo.EXPECT().GetRun(gomock.Any(), "run-1").Return(trackedRun("run-1", models.RunStatusFinished), nil)
	m.repo.EXPECT().GetLatest(gomock.Any(), "run-1").Return(&loc, nil)

	latest, err := uc.GetLatest(context.Background(), testScope, "run-1")
	require.NoError(t, err)
	assert.Equal(t, loc, *latest)
}

func TestSubmitPosition(t *testing.T) {
	uc, m := newTestLocationUC(t)

	m.repo.EXPECT().GetRun(gomock.Any(), "run-1").Return(trackedRun("run-1", models.RunStatusActive), nil)
	m.gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.LocationUpdate) error {
			assert.Equal(t, "run-1", u.RunID)
			assert.Equal(t, "truck-1", u.VehicleID)
			assert.False(t, u.CreatedAt.IsZero())
			assert.False(t, u.Location.Timestamp.IsZero())
			return nil
		})

	update := models.LocationUpdate{
		RunID:     "run-1",
		VehicleID: "truck-9",
		Location:  models.Location{Latitude: -23.55, Longitude: -46.63},
	}
	require.NoError(t, uc.SubmitPosition(context.Background(), testScope, update))
}

func TestSubmitPosition_FinishedRun(t *testing.T) {
	uc, m := newTestLocationUC(t)
	m.repo.EXPECT().GetRun(gomock.Any(), "run-1").Return(trackedRun("run-1", models.RunStatusFinished), nil)

	err := uc.SubmitPosition(context.Background(), testScope, positionOf("run-1", 10, 10))
	assert.ErrorIs(t, err, models.ErrRunNotActive)
}

func TestSubmitPosition_InvalidCoordinate(t *testing.T) {
	uc, _ := newTestLocationUC(t)

	err := uc.SubmitPosition(context.Background(), testScope, positionOf("run-1", 0, 181))
	assert.ErrorIs(t, err, tracking.ErrInvalidCoordinate)
}
