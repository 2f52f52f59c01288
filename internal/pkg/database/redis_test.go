package database

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1, PoolSize: 1})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_GeoRemove(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectZRem("fleet:positions", "truck-1").SetVal(1)

	assert.NoError(t, client.GeoRemove(context.Background(), "fleet:positions", "truck-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoAdd(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGeoAdd("fleet:positions", &redis.GeoLocation{
		Name:      "truck-1",
		Longitude: -46.63,
		Latitude:  -23.55,
	}).SetVal(1)

	assert.NoError(t, client.GeoAdd(context.Background(), "fleet:positions", -46.63, -23.55, "truck-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_PingError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectPing().SetErr(errors.New("down"))

	assert.Error(t, client.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
