package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/database"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

func setupRepo(t *testing.T) (*LocationRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewLocationRepository(&database.RedisClient{Client: client}, time.Hour), mr
}

func update(lat, lng float64, ts time.Time) models.LocationUpdate {
	return models.LocationUpdate{
		RunID:     "run-1",
		VehicleID: "truck-1",
		Location:  models.Location{Latitude: lat, Longitude: lng, Timestamp: ts},
	}
}

func TestLocationRepo_StorePosition(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.StorePosition(ctx, update(-23.55, -46.63, ts)))
	require.NoError(t, repo.StorePosition(ctx, update(-23.56, -46.64, ts.Add(time.Minute))))

	assert.Equal(t, "-23.56", mr.HGet("run:location:run-1", constants.FieldLatitude))
	assert.Equal(t, "truck-1", mr.HGet("run:location:run-1", constants.FieldVehicleID))
	assert.NotEmpty(t, mr.HGet("run:location:run-1", constants.FieldGeohash))
	assert.Equal(t, time.Hour, mr.TTL("run:location:run-1"))
	assert.Equal(t, time.Hour, mr.TTL("run:track:run-1"))

	members, err := mr.ZMembers(constants.KeyFleetGeo)
	require.NoError(t, err)
	assert.Equal(t, []string{"truck-1"}, members)
}

func TestLocationRepo_GetTrack(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.StorePosition(ctx, update(-23.55, -46.63, ts)))
	require.NoError(t, repo.StorePosition(ctx, update(-23.56, -46.64, ts.Add(time.Minute))))

	track, err := repo.GetTrack(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, track, 2)
	assert.Equal(t, -23.55, track[0].Latitude)
	assert.Equal(t, -46.64, track[1].Longitude)
	assert.True(t, track[1].Timestamp.Equal(ts.Add(time.Minute)))
}

func TestLocationRepo_GetTrack_Empty(t *testing.T) {
	repo, _ := setupRepo(t)

	track, err := repo.GetTrack(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, track)
}

func TestLocationRepo_GetTrack_CorruptSample(t *testing.T) {
	repo, mr := setupRepo(t)
	_, err := mr.Push("run:track:run-1", "not-json")
	require.NoError(t, err)

	_, err = repo.GetTrack(context.Background(), "run-1")
	assert.Error(t, err)
}

func TestLocationRepo_GetLatest(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.StorePosition(ctx, update(-23.55, -46.63, ts)))

	latest, err := repo.GetLatest(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, -23.55, latest.Latitude)
	assert.Equal(t, -46.63, latest.Longitude)
	assert.True(t, latest.Timestamp.Equal(ts))
}

func TestLocationRepo_GetLatest_NoData(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.GetLatest(context.Background(), "run-1")
	assert.ErrorIs(t, err, models.ErrNoLocationData)
}

func TestLocationRepo_RemoveVehicle(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.StorePosition(ctx, update(-23.55, -46.63, time.Now())))
	require.NoError(t, repo.RemoveVehicle(ctx, "truck-1"))

	members, _ := mr.ZMembers(constants.KeyFleetGeo)
	assert.Empty(t, members)
}

func TestLocationRepo_SaveAndGetRun(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	run := models.TrackedRun{
		RunID:     "run-1",
		VehicleID: "truck-1",
		CompanyID: "acme",
		SectorID:  "plant-1",
		Status:    models.RunStatusActive,
	}
	require.NoError(t, repo.SaveRun(ctx, run))
	assert.Equal(t, time.Hour, mr.TTL("run:meta:run-1"))

	got, err := repo.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run, *got)
}

func TestLocationRepo_GetRun_NotFound(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.GetRun(context.Background(), "ghost")
	assert.ErrorIs(t, err, models.ErrRunNotFound)
}

func TestLocationRepo_FinishRun(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveRun(ctx, models.TrackedRun{RunID: "run-1", CompanyID: "acme", SectorID: "plant-1", Status: models.RunStatusActive}))
	require.NoError(t, repo.FinishRun(ctx, "run-1"))

	got, err := repo.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusFinished, got.Status)
	assert.Equal(t, "acme", got.CompanyID)

	// unseen runs get the marker too
	require.NoError(t, repo.FinishRun(ctx, "run-2"))
	assert.Equal(t, string(models.RunStatusFinished), mr.HGet("run:meta:run-2", constants.FieldStatus))
}

func TestLocationRepo_StorePositionRefreshesRunTTL(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveRun(ctx, models.TrackedRun{RunID: "run-1", Status: models.RunStatusActive}))
	mr.FastForward(30 * time.Minute)
	require.NoError(t, repo.StorePosition(ctx, update(-23.55, -46.63, time.Now())))

	assert.Equal(t, time.Hour, mr.TTL("run:meta:run-1"))
}

func TestLocationRepo_RedisDown(t *testing.T) {
	repo, mr := setupRepo(t)
	mr.Close()

	err := repo.StorePosition(context.Background(), update(-23.55, -46.63, time.Now()))
	assert.Error(t, err)
}
