package tracking

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// Catalog reports whether a stop point may be used in a route
type Catalog interface {
	Contains(point models.StopPoint) bool
}

// RoutePlanner holds the route an operator is building together with the
// vehicle and starting mileage. The stop sequence never contains duplicates.
// A RoutePlanner is not safe for concurrent use.
type RoutePlanner struct {
	catalog   Catalog
	vehicleID string
	mileage   string
	stops     []models.StopPoint
}

// NewRoutePlanner creates an empty planner. A nil catalog accepts any stop point.
func NewRoutePlanner(catalog Catalog) *RoutePlanner {
	return &RoutePlanner{catalog: catalog}
}

// Append adds a stop point to the end of the route. Surrounding whitespace
// is trimmed and an empty point is ignored.
func (p *RoutePlanner) Append(point models.StopPoint) error {
	point = models.StopPoint(strings.TrimSpace(string(point)))
	if point == "" {
		return nil
	}
	if p.catalog != nil && !p.catalog.Contains(point) {
		return fmt.Errorf("%w: %q", ErrUnknownStopPoint, point)
	}
	if slices.Contains(p.stops, point) {
		return fmt.Errorf("%w: %q", ErrDuplicateStopPoint, point)
	}
	p.stops = append(p.stops, point)
	return nil
}

// RemoveAt removes the stop at index
func (p *RoutePlanner) RemoveAt(index int) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.stops = slices.Delete(p.stops, index, index+1)
	return nil
}

// MoveUp swaps the stop at index with its predecessor. Moving the first stop is a no-op.
func (p *RoutePlanner) MoveUp(index int) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	if index == 0 {
		return nil
	}
	p.stops[index-1], p.stops[index] = p.stops[index], p.stops[index-1]
	return nil
}

// MoveDown swaps the stop at index with its successor. Moving the last stop is a no-op.
func (p *RoutePlanner) MoveDown(index int) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	if index == len(p.stops)-1 {
		return nil
	}
	p.stops[index], p.stops[index+1] = p.stops[index+1], p.stops[index]
	return nil
}

// Move applies MoveUp or MoveDown depending on direction
func (p *RoutePlanner) Move(index int, direction models.MoveDirection) error {
	switch direction {
	case models.MoveUp:
		return p.MoveUp(index)
	case models.MoveDown:
		return p.MoveDown(index)
	default:
		return fmt.Errorf("unknown move direction %q", direction)
	}
}

func (p *RoutePlanner) checkIndex(index int) error {
	if index < 0 || index >= len(p.stops) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(p.stops))
	}
	return nil
}

// SelectVehicle sets the vehicle for the run. An empty id clears the selection.
func (p *RoutePlanner) SelectVehicle(vehicleID string) {
	p.vehicleID = strings.TrimSpace(vehicleID)
}

// SetMileage stores the raw mileage input. It is parsed when the run is submitted.
func (p *RoutePlanner) SetMileage(mileage string) {
	p.mileage = strings.TrimSpace(mileage)
}

// VehicleID returns the selected vehicle
func (p *RoutePlanner) VehicleID() string {
	return p.vehicleID
}

// Mileage returns the raw mileage input
func (p *RoutePlanner) Mileage() string {
	return p.mileage
}

// Stops returns a copy of the route in order
func (p *RoutePlanner) Stops() []models.StopPoint {
	return slices.Clone(p.stops)
}

// Len returns the number of stops in the route
func (p *RoutePlanner) Len() int {
	return len(p.stops)
}

// State reports the planning state of the route
func (p *RoutePlanner) State() models.RouteState {
	switch {
	case p.IsReadyToStart():
		return models.RouteReadyToStart
	case len(p.stops) == 0:
		return models.RouteEmpty
	default:
		return models.RouteBuilding
	}
}

// IsReadyToStart reports whether a vehicle, a numeric mileage and at least one stop are set
func (p *RoutePlanner) IsReadyToStart() bool {
	return len(p.missing()) == 0
}

// Submission returns the validated run tuple or ErrIncompleteRunConfiguration
func (p *RoutePlanner) Submission() (models.RunSubmission, error) {
	if missing := p.missing(); len(missing) > 0 {
		return models.RunSubmission{}, fmt.Errorf("%w: missing %s",
			ErrIncompleteRunConfiguration, strings.Join(missing, ", "))
	}
	mileage, _ := parseMileage(p.mileage)
	return models.RunSubmission{
		VehicleID: p.vehicleID,
		Mileage:   mileage,
		Route:     p.Stops(),
	}, nil
}

// Draft returns the operator-facing view of the planner
func (p *RoutePlanner) Draft() models.RouteDraft {
	return models.RouteDraft{
		VehicleID:  p.vehicleID,
		Mileage:    p.mileage,
		StopPoints: p.Stops(),
		State:      p.State(),
		Ready:      p.IsReadyToStart(),
	}
}

func (p *RoutePlanner) missing() []string {
	var missing []string
	if p.vehicleID == "" {
		missing = append(missing, "vehicle")
	}
	if _, ok := parseMileage(p.mileage); !ok {
		missing = append(missing, "mileage")
	}
	if len(p.stops) == 0 {
		missing = append(missing, "stop points")
	}
	return missing
}

func parseMileage(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}
