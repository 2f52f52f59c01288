package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T, level string) (*ZapLogger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	l, err := NewZapLogger(ZapConfig{Level: level, Service: "fleet-test", Output: buf}, nil)
	require.NoError(t, err)
	return l, buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestNewZapLogger_WritesJSON(t *testing.T) {
	l, buf := newBufferLogger(t, "info")

	l.Info("position recorded", String("run_id", "run-1"), Float64("lat", -23.5))
	l.Debug("hidden")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "position recorded", lines[0]["message"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "fleet-test", lines[0]["service"])
	assert.Equal(t, "run-1", lines[0]["run_id"])
	assert.Equal(t, -23.5, lines[0]["lat"])
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, buf := newBufferLogger(t, "loud")
	l.Debug("hidden")
	l.Warn("shown")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warn", lines[0]["level"])
}

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fleet.log")
	l, err := NewZapLogger(ZapConfig{Level: "info", FilePath: path, Output: &bytes.Buffer{}}, nil)
	require.NoError(t, err)

	l.Info("to file")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Equal(t, path, l.GetFilePath())
}

func TestWithFields(t *testing.T) {
	l, buf := newBufferLogger(t, "info")
	l.WithFields(String("vehicle_id", "truck-1")).Info("with fields")
	l.Info("without")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "truck-1", lines[0]["vehicle_id"])
	assert.NotContains(t, lines[1], "vehicle_id")
}

func TestLogHTTPRequest_Levels(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "info"},
		{http.StatusConflict, "warn"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		l, buf := newBufferLogger(t, "debug")
		l.LogHTTPRequest(nil, http.MethodGet, "/api/vehicles", "127.0.0.1", "u1", "req-1", tt.status, time.Millisecond, errors.New("boom"))

		lines := decodeLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, tt.level, lines[0]["level"])
		assert.Equal(t, float64(tt.status), lines[0]["status"])
		assert.Equal(t, "req-1", lines[0]["request_id"])
	}
}

func TestZapEchoMiddleware(t *testing.T) {
	l, buf := newBufferLogger(t, "info")
	e := echo.New()
	e.Use(ZapEchoMiddleware(l))
	e.GET("/missing", func(c echo.Context) error {
		c.Set("user_id", "operator-1")
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, "/missing?x=1", lines[0]["path"])
	assert.Equal(t, "operator-1", lines[0]["user_id"])
}

func TestGlobalLogger(t *testing.T) {
	l, buf := newBufferLogger(t, "info")
	prev := GetGlobalLogger()
	SetGlobalLogger(l)
	t.Cleanup(func() { SetGlobalLogger(prev) })

	Warn("global warning", String("k", "v"))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "global warning", lines[0]["message"])
	assert.Equal(t, "v", lines[0]["k"])
}
