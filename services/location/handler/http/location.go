package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/middleware"
	"github.com/piresc/fleettrack/internal/pkg/models"
	nrpkg "github.com/piresc/fleettrack/internal/pkg/newrelic"
	"github.com/piresc/fleettrack/internal/pkg/tracking"
	"github.com/piresc/fleettrack/internal/utils"
	"github.com/piresc/fleettrack/services/location"
)

// LocationHandler handles HTTP requests for run positions and viewports
type LocationHandler struct {
	locationUC location.LocationUC
	frame      tracking.FrameOptions
}

// NewLocationHandler creates a new location HTTP handler. frame is the
// display policy used when a request does not override it.
func NewLocationHandler(locationUC location.LocationUC, frame tracking.FrameOptions) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		frame:      frame,
	}
}

type positionRequest struct {
	VehicleID string     `json:"vehicle_id"`
	Latitude  *float64   `json:"latitude"`
	Longitude *float64   `json:"longitude"`
	Timestamp *time.Time `json:"timestamp"`
}

type waitingResponse struct {
	Status string `json:"status"`
}

// GetViewport returns the map frame of a run
func (h *LocationHandler) GetViewport(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	opts, err := h.frameOptions(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	frame, ok, err := h.locationUC.GetViewport(c.Request().Context(), scope, c.Param("id"), opts)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	if !ok {
		return utils.SuccessResponse(c, http.StatusOK, "Waiting for positions", waitingResponse{Status: "waiting"})
	}
	return utils.SuccessResponse(c, http.StatusOK, "Viewport retrieved", frame)
}

// GetTrack returns the full track of a run
func (h *LocationHandler) GetTrack(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	track, err := h.locationUC.GetTrack(c.Request().Context(), scope, c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Track retrieved", track)
}

// GetLatest returns the latest position of a run
func (h *LocationHandler) GetLatest(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	latest, err := h.locationUC.GetLatest(c.Request().Context(), scope, c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Latest position retrieved", latest)
}

// SubmitPosition accepts a position sample for a run
func (h *LocationHandler) SubmitPosition(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Location.SubmitPosition")

	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	var req positionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.Latitude == nil || req.Longitude == nil {
		return utils.BadRequestResponse(c, "latitude and longitude are required")
	}

	runID := c.Param("id")
	middleware.SetRunID(c, runID)

	update := models.LocationUpdate{
		RunID:     runID,
		VehicleID: req.VehicleID,
		Location: models.Location{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		},
	}
	if req.Timestamp != nil {
		update.Location.Timestamp = req.Timestamp.UTC()
	}

	if err := h.locationUC.SubmitPosition(c.Request().Context(), scope, update); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.WarnCtx(c.Request().Context(), "Position rejected",
			logger.String("run_id", runID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Position accepted", nil)
}

// frameOptions applies the width, height and padding query parameters to
// the default display policy
func (h *LocationHandler) frameOptions(c echo.Context) (tracking.FrameOptions, error) {
	opts := h.frame
	params := []struct {
		name   string
		target *int
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"padding", &opts.Padding},
	}
	for _, p := range params {
		raw := c.QueryParam(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return opts, fmt.Errorf("invalid %s", p.name)
		}
		*p.target = v
	}
	return opts, nil
}
