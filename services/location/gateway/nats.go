package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
	natspkg "github.com/piresc/fleettrack/internal/pkg/nats"
	nrpkg "github.com/piresc/fleettrack/internal/pkg/newrelic"
	"github.com/piresc/fleettrack/internal/pkg/retry"
)

// NATSGateway forwards position samples onto the live feed
type NATSGateway struct {
	publisher natspkg.Publisher
	retrier   *retry.Retrier
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(publisher natspkg.Publisher, retrier *retry.Retrier) *NATSGateway {
	return &NATSGateway{
		publisher: publisher,
		retrier:   retrier,
	}
}

// PublishLocationUpdate publishes a sample to location.update
func (g *NATSGateway) PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal location update: %w", err)
	}

	subject := constants.SubjectLocationUpdate
	err = g.retrier.Execute(ctx, func(ctx context.Context) error {
		return nrpkg.WithPublishSegment(ctx, subject, func() error {
			return g.publisher.Publish(ctx, subject, data)
		})
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to publish location update",
			logger.String("run_id", update.RunID),
			logger.Err(err))
		return fmt.Errorf("failed to publish location update: %w", err)
	}

	logger.DebugCtx(ctx, "Published location update",
		logger.String("run_id", update.RunID),
		logger.String("vehicle_id", update.VehicleID))
	return nil
}
