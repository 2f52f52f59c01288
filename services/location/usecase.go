package location

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/pkg/tracking"
)

// LocationUC defines the interface for live position tracking
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/fleettrack/services/location LocationUC
type LocationUC interface {
	// Run lifecycle, driven by run.started and run.finished events
	OpenRun(ctx context.Context, event models.RunStartedEvent) error
	CloseRun(ctx context.Context, event models.RunFinishedEvent) error

	// RecordPosition appends a sample from the live feed to its run
	RecordPosition(ctx context.Context, update models.LocationUpdate) error

	// Read side. Runs outside the scope's company and sector are not found.
	GetViewport(ctx context.Context, scope models.Scope, runID string, opts tracking.FrameOptions) (models.MapFrame, bool, error)
	GetTrack(ctx context.Context, scope models.Scope, runID string) (*models.Track, error)
	GetLatest(ctx context.Context, scope models.Scope, runID string) (*models.Location, error)

	// Subscribe streams the run's viewport after every accepted sample. The
	// channel is closed when the run closes or cancel is called.
	Subscribe(scope models.Scope, runID string) (<-chan models.Viewport, func(), error)

	// SubmitPosition validates a sample received over HTTP and forwards it to the feed
	SubmitPosition(ctx context.Context, scope models.Scope, update models.LocationUpdate) error
}
