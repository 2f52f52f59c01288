package runs

import (
	"context"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// RunGW defines the interface for run event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/fleettrack/services/runs RunGW
type RunGW interface {
	PublishRunStarted(ctx context.Context, event models.RunStartedEvent) error
	PublishRunFinished(ctx context.Context, event models.RunFinishedEvent) error
}
