package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

func TestLoad_Default(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 28, c.Len())
	assert.True(t, c.Contains("FUNDIÇÃO"))
	assert.False(t, c.Contains("fundição"))

	list := c.List()
	assert.Equal(t, models.StopPoint("PINT. ABS"), list[0])
	assert.Equal(t, models.StopPoint("PRENSA. COMP."), list[len(list)-1])
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stop_points:\n  - Dock 1\n  - \" Dock 2 \"\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []models.StopPoint{"Dock 1", "Dock 2"}, c.List())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "stop_points: [a"},
		{"empty", "stop_points: []"},
		{"blank entry", "stop_points: [a, ' ']"},
		{"duplicate", "stop_points: [a, b, a]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestList_IsACopy(t *testing.T) {
	c := Default()
	list := c.List()
	list[0] = "changed"
	assert.Equal(t, models.StopPoint("PINT. ABS"), c.List()[0])
}
