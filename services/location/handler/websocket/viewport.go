package websocket

import (
	"context"
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/middleware"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/pkg/tracking"
	wspkg "github.com/piresc/fleettrack/internal/pkg/websocket"
	"github.com/piresc/fleettrack/internal/utils"
	"github.com/piresc/fleettrack/services/location"
)

// ViewportHandler streams the live map frame of a run to websocket viewers
type ViewportHandler struct {
	locationUC location.LocationUC
	manager    *wspkg.Manager
	frame      tracking.FrameOptions
}

// NewViewportHandler creates a new viewport websocket handler
func NewViewportHandler(locationUC location.LocationUC, manager *wspkg.Manager, frame tracking.FrameOptions) *ViewportHandler {
	return &ViewportHandler{
		locationUC: locationUC,
		manager:    manager,
		frame:      frame,
	}
}

type runEnded struct {
	RunID string `json:"run_id"`
}

type waiting struct {
	Status string `json:"status"`
}

// HandleViewport upgrades the connection and pushes a frame after every
// accepted sample until the run ends or the viewer disconnects
func (h *ViewportHandler) HandleViewport(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	runID := c.Param("id")
	ctx := c.Request().Context()

	// restores the run if needed and rejects unknown runs before upgrading
	if _, _, err := h.locationUC.GetViewport(ctx, scope, runID, h.frame); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return h.manager.HandleConnection(c, scope.UserID, runID, func(client *wspkg.Client) error {
		return h.stream(ctx, client, scope, runID)
	})
}

func (h *ViewportHandler) stream(ctx context.Context, client *wspkg.Client, scope models.Scope, runID string) error {
	updates, cancel, err := h.locationUC.Subscribe(scope, runID)
	if err != nil {
		return client.SendError(constants.ErrorRunNotFound, err.Error())
	}
	defer cancel()

	if err := h.sendCurrent(ctx, client, scope, runID); err != nil {
		return err
	}

	done := make(chan struct{})
	go h.readLoop(ctx, client, done)

	for {
		select {
		case v, ok := <-updates:
			if !ok {
				return client.Send(constants.EventRunEnded, runEnded{RunID: runID})
			}
			if err := client.Send(constants.EventViewport, tracking.FitFrame(v, h.frame)); err != nil {
				logger.DebugCtx(ctx, "Viewport push failed",
					logger.String("run_id", runID),
					logger.Err(err))
				return nil
			}
		case <-done:
			return nil
		}
	}
}

func (h *ViewportHandler) sendCurrent(ctx context.Context, client *wspkg.Client, scope models.Scope, runID string) error {
	frame, ok, err := h.locationUC.GetViewport(ctx, scope, runID, h.frame)
	if err != nil {
		return client.SendError(constants.ErrorInternalError, "viewport unavailable")
	}
	if !ok {
		return client.Send(constants.EventWaiting, waiting{Status: "waiting"})
	}
	return client.Send(constants.EventViewport, frame)
}

// readLoop answers pings until the viewer goes away, then closes done
func (h *ViewportHandler) readLoop(ctx context.Context, client *wspkg.Client, done chan<- struct{}) {
	defer close(done)
	for {
		_, data, err := client.Conn.ReadMessage()
		if err != nil {
			logger.DebugCtx(ctx, "WebSocket viewer disconnected",
				logger.String("topic", client.Topic),
				logger.Err(err))
			return
		}

		var msg models.WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			_ = client.SendError(constants.ErrorInvalidFormat, "invalid message format")
			continue
		}

		switch msg.Event {
		case constants.EventPing:
			_ = client.Send(constants.EventPong, nil)
		default:
			_ = client.SendError(constants.ErrorInvalidMessage, "unsupported event "+msg.Event)
		}
	}
}
