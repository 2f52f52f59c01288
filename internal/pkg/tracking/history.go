package tracking

import (
	"fmt"
	"iter"
	"math"
	"sync"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// ValidateCoordinate checks that lat/lng are finite and within geographic range
func ValidateCoordinate(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return fmt.Errorf("%w: non-finite value (%v, %v)", ErrInvalidCoordinate, lat, lng)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidCoordinate, lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidCoordinate, lng)
	}
	return nil
}

// PositionHistory is the append-only sample sequence of one run.
// Samples are kept in arrival order and never modified after being appended.
type PositionHistory struct {
	mu      sync.RWMutex
	samples []models.Location
	version uint64
}

// NewPositionHistory creates an empty history
func NewPositionHistory() *PositionHistory {
	return &PositionHistory{}
}

// Append validates and appends a sample. Invalid samples leave the history unchanged.
func (h *PositionHistory) Append(sample models.Location) error {
	if err := ValidateCoordinate(sample.Latitude, sample.Longitude); err != nil {
		return err
	}
	h.mu.Lock()
	h.samples = append(h.samples, sample)
	h.version++
	h.mu.Unlock()
	return nil
}

// Latest returns the most recent sample, false when the history is empty
func (h *PositionHistory) Latest() (models.Location, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.samples) == 0 {
		return models.Location{}, false
	}
	return h.samples[len(h.samples)-1], true
}

// All returns the samples recorded so far in arrival order.
// Samples appended after the call are not visited; the sequence may be ranged over repeatedly.
func (h *PositionHistory) All() iter.Seq[models.Location] {
	h.mu.RLock()
	snapshot := h.samples[:len(h.samples):len(h.samples)]
	h.mu.RUnlock()
	return func(yield func(models.Location) bool) {
		for _, s := range snapshot {
			if !yield(s) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the samples
func (h *PositionHistory) Snapshot() []models.Location {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]models.Location, len(h.samples))
	copy(out, h.samples)
	return out
}

// Len returns the number of samples
func (h *PositionHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.samples)
}

// Version increases by one on every successful append
func (h *PositionHistory) Version() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.version
}
