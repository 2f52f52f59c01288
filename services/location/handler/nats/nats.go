package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
	natspkg "github.com/piresc/fleettrack/internal/pkg/nats"
	nrpkg "github.com/piresc/fleettrack/internal/pkg/newrelic"
	"github.com/piresc/fleettrack/internal/pkg/tracking"
	"github.com/piresc/fleettrack/services/location"
)

// LocationHandler consumes run lifecycle events and the live position feed
type LocationHandler struct {
	locationUC location.LocationUC
	natsClient *natspkg.Client
	nrApp      *newrelic.Application
}

// NewLocationHandler creates a new location NATS handler
func NewLocationHandler(
	locationUC location.LocationUC,
	client *natspkg.Client,
	nrApp *newrelic.Application,
) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		natsClient: client,
		nrApp:      nrApp,
	}
}

// InitNATSConsumers creates the durable consumers of the location service and
// starts consuming them
func (h *LocationHandler) InitNATSConsumers(ctx context.Context) error {
	logger.Info("Initializing JetStream consumers for location service")

	consumerConfigs := natspkg.DefaultConsumerConfigs()
	consumers := []struct {
		name    string
		handler natspkg.JetStreamMessageHandler
	}{
		{constants.ConsumerRunStartedLocation, h.handleRunStartedJS},
		{constants.ConsumerRunFinishedLocation, h.handleRunFinishedJS},
		{constants.ConsumerLocationUpdate, h.handleLocationUpdateJS},
	}

	for _, c := range consumers {
		cfg := consumerConfigs[c.name]
		logger.Info("Creating consumer for location service",
			logger.String("stream", cfg.StreamName),
			logger.String("consumer", cfg.ConsumerName),
			logger.String("filter_subject", cfg.FilterSubject))

		if err := h.natsClient.CreateConsumer(ctx, cfg); err != nil {
			logger.Error("Failed to create consumer for location service",
				logger.String("consumer", cfg.ConsumerName),
				logger.Err(err))
			return fmt.Errorf("failed to create %s consumer: %w", cfg.ConsumerName, err)
		}

		if err := h.natsClient.ConsumeMessages(cfg.StreamName, cfg.ConsumerName, c.handler); err != nil {
			logger.Error("Failed to start consuming for location service",
				logger.String("consumer", cfg.ConsumerName),
				logger.Err(err))
			return fmt.Errorf("failed to start consuming %s: %w", cfg.ConsumerName, err)
		}
	}

	logger.Info("Successfully initialized JetStream consumers for location service")
	return nil
}

// startTransaction opens a background New Relic transaction for msg
func (h *LocationHandler) startTransaction(name string, msg jetstream.Msg) (context.Context, *newrelic.Transaction) {
	txn := h.nrApp.StartTransaction(name)
	nrpkg.AddTransactionAttribute(txn, "message.subject", msg.Subject())
	nrpkg.AddTransactionAttribute(txn, "message.size", len(msg.Data()))
	nrpkg.AddTransactionAttribute(txn, "service", "location")
	return newrelic.NewContext(context.Background(), txn), txn
}

func (h *LocationHandler) handleRunStartedJS(msg jetstream.Msg) error {
	ctx, txn := h.startTransaction("NATS.Location.HandleRunStarted", msg)
	defer txn.End()

	if err := h.handleRunStarted(ctx, msg.Data()); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.ErrorCtx(ctx, "Error handling run started event", logger.Err(err))
		return err
	}
	return nil
}

func (h *LocationHandler) handleRunFinishedJS(msg jetstream.Msg) error {
	ctx, txn := h.startTransaction("NATS.Location.HandleRunFinished", msg)
	defer txn.End()

	if err := h.handleRunFinished(ctx, msg.Data()); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.ErrorCtx(ctx, "Error handling run finished event", logger.Err(err))
		return err
	}
	return nil
}

func (h *LocationHandler) handleLocationUpdateJS(msg jetstream.Msg) error {
	ctx, txn := h.startTransaction("NATS.Location.HandleLocationUpdate", msg)
	defer txn.End()

	if err := h.handleLocationUpdate(ctx, msg.Data()); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.ErrorCtx(ctx, "Error handling location update", logger.Err(err))
		return err
	}
	return nil
}

// Undecodable payloads are acked and dropped

func (h *LocationHandler) handleRunStarted(ctx context.Context, data []byte) error {
	var event models.RunStartedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.ErrorCtx(ctx, "Dropping malformed run started event", logger.Err(err))
		return nil
	}
	return h.locationUC.OpenRun(ctx, event)
}

func (h *LocationHandler) handleRunFinished(ctx context.Context, data []byte) error {
	var event models.RunFinishedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.ErrorCtx(ctx, "Dropping malformed run finished event", logger.Err(err))
		return nil
	}
	return h.locationUC.CloseRun(ctx, event)
}

func (h *LocationHandler) handleLocationUpdate(ctx context.Context, data []byte) error {
	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		logger.ErrorCtx(ctx, "Dropping malformed location update", logger.Err(err))
		return nil
	}

	err := h.locationUC.RecordPosition(ctx, update)
	switch {
	case errors.Is(err, tracking.ErrInvalidCoordinate):
		// rejected sample, the run continues
		return nil
	case errors.Is(err, models.ErrRunNotActive):
		logger.DebugCtx(ctx, "Dropping sample of finished run", logger.String("run_id", update.RunID))
		return nil
	}
	return err
}
