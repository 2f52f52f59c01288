package tracking

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

func loc(lat, lng float64) models.Location {
	return models.Location{Latitude: lat, Longitude: lng}
}

func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{"origin", 0, 0, false},
		{"corner", 90, -180, false},
		{"other corner", -90, 180, false},
		{"latitude too high", 91, 0, true},
		{"latitude too low", -90.0001, 0, true},
		{"longitude too high", 0, 180.5, true},
		{"NaN", math.NaN(), 0, true},
		{"Inf", 0, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(tt.lat, tt.lng)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCoordinate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPositionHistory_Append(t *testing.T) {
	h := NewPositionHistory()
	require.NoError(t, h.Append(loc(10, 20)))

	err := h.Append(loc(91, 0))
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, uint64(1), h.Version())
}

func TestPositionHistory_Latest(t *testing.T) {
	h := NewPositionHistory()
	_, ok := h.Latest()
	assert.False(t, ok)

	require.NoError(t, h.Append(loc(1, 1)))
	require.NoError(t, h.Append(loc(2, 2)))

	latest, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, loc(2, 2), latest)
}

func TestPositionHistory_All(t *testing.T) {
	h := NewPositionHistory()
	require.NoError(t, h.Append(loc(1, 1)))
	require.NoError(t, h.Append(loc(2, 2)))

	seq := h.All()
	require.NoError(t, h.Append(loc(3, 3)))

	// snapshot as of the call, restartable
	assert.Equal(t, []models.Location{loc(1, 1), loc(2, 2)}, slices.Collect(seq))
	assert.Equal(t, []models.Location{loc(1, 1), loc(2, 2)}, slices.Collect(seq))

	// early break
	var first []models.Location
	for s := range h.All() {
		first = append(first, s)
		break
	}
	assert.Equal(t, []models.Location{loc(1, 1)}, first)

	assert.Equal(t, h.Snapshot(), slices.Collect(h.All()))
}

func TestPositionHistory_SnapshotIsACopy(t *testing.T) {
	h := NewPositionHistory()
	require.NoError(t, h.Append(loc(1, 1)))

	snap := h.Snapshot()
	snap[0] = loc(5, 5)

	latest, _ := h.Latest()
	assert.Equal(t, loc(1, 1), latest)
}
