package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	natspkg "github.com/piresc/fleettrack/internal/pkg/nats"
	"github.com/piresc/fleettrack/internal/pkg/tracking"
	wspkg "github.com/piresc/fleettrack/internal/pkg/websocket"
	"github.com/piresc/fleettrack/services/location"
	httpHandler "github.com/piresc/fleettrack/services/location/handler/http"
	natsHandler "github.com/piresc/fleettrack/services/location/handler/nats"
	wsHandler "github.com/piresc/fleettrack/services/location/handler/websocket"
)

// Handler combines all handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
	locationNATS *natsHandler.LocationHandler
	viewportWS   *wsHandler.ViewportHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	locationUC location.LocationUC,
	natsClient *natspkg.Client,
	frame tracking.FrameOptions,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC, frame),
		locationNATS: natsHandler.NewLocationHandler(locationUC, natsClient, nrApp),
		viewportWS:   wsHandler.NewViewportHandler(locationUC, wspkg.NewManager(), frame),
	}
}

// RegisterRoutes registers the read routes on api and position ingestion on
// ingest, which is expected to carry a rate limiter
func (h *Handler) RegisterRoutes(api *echo.Group, ingest *echo.Group) {
	runs := api.Group("/runs/:id")
	runs.GET("/viewport", h.locationHTTP.GetViewport)
	runs.GET("/track", h.locationHTTP.GetTrack)
	runs.GET("/latest", h.locationHTTP.GetLatest)

	ingest.POST("/runs/:id/positions", h.locationHTTP.SubmitPosition)
}

// RegisterWebSocketRoutes registers the live viewport stream
func (h *Handler) RegisterWebSocketRoutes(ws *echo.Group) {
	ws.GET("/runs/:id", h.viewportWS.HandleViewport)
}

// InitNATSConsumers starts the run lifecycle and position feed consumers
func (h *Handler) InitNATSConsumers(ctx context.Context) error {
	return h.locationNATS.InitNATSConsumers(ctx)
}
