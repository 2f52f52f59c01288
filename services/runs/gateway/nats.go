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

// NATSGateway publishes run lifecycle events to JetStream
type NATSGateway struct {
	publisher natspkg.Publisher
	retrier   *retry.Retrier
}

// NewNATSGateway creates a new NATS gateway. Publishing is retried with
// exponential backoff through retrier.
func NewNATSGateway(publisher natspkg.Publisher, retrier *retry.Retrier) *NATSGateway {
	return &NATSGateway{
		publisher: publisher,
		retrier:   retrier,
	}
}

// PublishRunStarted announces a new run so tracking can open its position history
func (g *NATSGateway) PublishRunStarted(ctx context.Context, event models.RunStartedEvent) error {
	return g.publish(ctx, constants.SubjectRunStarted, event.RunID, event)
}

// PublishRunFinished announces the end of a run
func (g *NATSGateway) PublishRunFinished(ctx context.Context, event models.RunFinishedEvent) error {
	return g.publish(ctx, constants.SubjectRunFinished, event.RunID, event)
}

func (g *NATSGateway) publish(ctx context.Context, subject, runID string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}

	err = g.retrier.Execute(ctx, func(ctx context.Context) error {
		return nrpkg.WithPublishSegment(ctx, subject, func() error {
			return g.publisher.Publish(ctx, subject, data)
		})
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to publish run event",
			logger.String("subject", subject),
			logger.String("run_id", runID),
			logger.Err(err))
		return fmt.Errorf("failed to publish %s event: %w", subject, err)
	}

	logger.InfoCtx(ctx, "Published run event",
		logger.String("subject", subject),
		logger.String("run_id", runID))
	return nil
}
