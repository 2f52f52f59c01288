package tracking

import (
	"sync"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// ComputeViewport derives the bounding box and focal point from the history.
// It returns false for an empty history.
func ComputeViewport(h *PositionHistory) (models.Viewport, bool) {
	samples, version := h.view()
	return computeViewport(samples, version)
}

func computeViewport(samples []models.Location, version uint64) (models.Viewport, bool) {
	if len(samples) == 0 {
		return models.Viewport{}, false
	}
	first := samples[0]
	box := models.BoundingBox{
		SouthWest: models.Coordinate{Latitude: first.Latitude, Longitude: first.Longitude},
		NorthEast: models.Coordinate{Latitude: first.Latitude, Longitude: first.Longitude},
	}
	for _, s := range samples[1:] {
		box.SouthWest.Latitude = min(box.SouthWest.Latitude, s.Latitude)
		box.SouthWest.Longitude = min(box.SouthWest.Longitude, s.Longitude)
		box.NorthEast.Latitude = max(box.NorthEast.Latitude, s.Latitude)
		box.NorthEast.Longitude = max(box.NorthEast.Longitude, s.Longitude)
	}
	return models.Viewport{
		Bounds:  box,
		Focal:   samples[len(samples)-1],
		Samples: len(samples),
		Version: version,
	}, true
}

// view returns the samples and the version they belong to under one lock
func (h *PositionHistory) view() ([]models.Location, uint64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.samples[:len(h.samples):len(h.samples)], h.version
}

// ViewportCache memoises the viewport of one history. The cached value is
// discarded as soon as the history version moves.
type ViewportCache struct {
	history *PositionHistory

	mu       sync.Mutex
	cached   models.Viewport
	ok       bool
	valid    bool
	version  uint64
	computed int
}

// NewViewportCache creates a cache bound to history
func NewViewportCache(history *PositionHistory) *ViewportCache {
	return &ViewportCache{history: history}
}

// History returns the history the cache is bound to
func (c *ViewportCache) History() *PositionHistory {
	return c.history
}

// Get returns the viewport for the current history version
func (c *ViewportCache) Get() (models.Viewport, bool) {
	samples, version := c.history.view()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && c.version == version {
		return c.cached, c.ok
	}
	c.cached, c.ok = computeViewport(samples, version)
	c.version = version
	c.valid = true
	c.computed++
	return c.cached, c.ok
}

// Computations returns how many times the viewport was recomputed
func (c *ViewportCache) Computations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.computed
}
