package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	cfg := &models.Config{}
	assert.Nil(t, InitNewRelic(cfg))

	cfg.NewRelic.Enabled = true
	assert.Nil(t, InitNewRelic(cfg), "missing license key")
}

func TestSegmentsWithoutTransaction(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	assert.Nil(t, StartSegment(nil, "x"))
	assert.ErrorIs(t, WithSegment(ctx, "seg", func() error { return boom }), boom)
	assert.NoError(t, WithDatastoreSegment(ctx, "Redis", "run:track", "RPUSH", func() error { return nil }))
	assert.ErrorIs(t, WithPublishSegment(ctx, "run.started", func() error { return boom }), boom)

	v, err := WithSegmentAndReturn(ctx, "seg", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestMiddlewareAndTraceHandler_NilApp(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(nil))
	e.GET("/x", TraceHandler("x", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestTransactionHelpers_NilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		SetTransactionName(nil, "x")
		AddTransactionAttribute(nil, "k", 1)
		NoticeTransactionError(nil, errors.New("boom"))
	})
}
