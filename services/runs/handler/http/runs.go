package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/middleware"
	"github.com/piresc/fleettrack/internal/pkg/models"
	nrpkg "github.com/piresc/fleettrack/internal/pkg/newrelic"
	"github.com/piresc/fleettrack/internal/utils"
	"github.com/piresc/fleettrack/services/runs"
)

// RunsHandler handles HTTP requests for route drafts and runs
type RunsHandler struct {
	runUC runs.RunUC
}

// NewRunsHandler creates a new runs HTTP handler
func NewRunsHandler(runUC runs.RunUC) *RunsHandler {
	return &RunsHandler{runUC: runUC}
}

type selectVehicleRequest struct {
	VehicleID string `json:"vehicle_id"`
}

// mileage is accepted as a JSON number or string and kept as typed
type setMileageRequest struct {
	Mileage json.RawMessage `json:"mileage"`
}

func (r setMileageRequest) raw() string {
	var s string
	if err := json.Unmarshal(r.Mileage, &s); err == nil {
		return s
	}
	return string(r.Mileage)
}

type addStopRequest struct {
	StopPoint models.StopPoint `json:"stop_point"`
}

type moveStopRequest struct {
	Direction models.MoveDirection `json:"direction"`
}

// ListStopPoints returns the stop-point catalog
func (h *RunsHandler) ListStopPoints(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Stop points retrieved", h.runUC.ListStopPoints(c.Request().Context()))
}

// GetDraft returns the operator's route draft
func (h *RunsHandler) GetDraft(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Draft retrieved", h.runUC.GetDraft(c.Request().Context(), scope))
}

// ResetDraft discards the operator's route draft
func (h *RunsHandler) ResetDraft(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Draft reset", h.runUC.ResetDraft(c.Request().Context(), scope))
}

// SelectVehicle sets the draft's vehicle
func (h *RunsHandler) SelectVehicle(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	var req selectVehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	draft, err := h.runUC.SelectVehicle(c.Request().Context(), scope, req.VehicleID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle selected", draft)
}

// SetMileage stores the draft's starting mileage
func (h *RunsHandler) SetMileage(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	var req setMileageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	draft := h.runUC.SetMileage(c.Request().Context(), scope, req.raw())
	return utils.SuccessResponse(c, http.StatusOK, "Mileage set", draft)
}

// AddStop appends a stop point to the draft route
func (h *RunsHandler) AddStop(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	var req addStopRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	draft, err := h.runUC.AddStop(c.Request().Context(), scope, req.StopPoint)
	if err != nil {
		logger.DebugCtx(c.Request().Context(), "Stop point rejected",
			logger.String("stop_point", string(req.StopPoint)),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stop point added", draft)
}

// RemoveStop removes the stop at the :index path parameter
func (h *RunsHandler) RemoveStop(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return utils.BadRequestResponse(c, "Index must be an integer")
	}

	draft, err := h.runUC.RemoveStop(c.Request().Context(), scope, index)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stop point removed", draft)
}

// MoveStop swaps the stop at :index with its neighbour
func (h *RunsHandler) MoveStop(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return utils.BadRequestResponse(c, "Index must be an integer")
	}

	var req moveStopRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	direction := models.MoveDirection(strings.ToLower(string(req.Direction)))
	if direction != models.MoveUp && direction != models.MoveDown {
		return utils.BadRequestResponse(c, "Direction must be up or down")
	}

	draft, err := h.runUC.MoveStop(c.Request().Context(), scope, index, direction)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stop point moved", draft)
}

// StartRun submits the operator's draft as a new run
func (h *RunsHandler) StartRun(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Runs.StartRun")

	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	run, err := h.runUC.StartRun(c.Request().Context(), scope)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.WarnCtx(c.Request().Context(), "Run start refused",
			logger.String("operator_id", scope.UserID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	middleware.SetRunID(c, run.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "Run started", run)
}

// FinishRun ends the run at :id
func (h *RunsHandler) FinishRun(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Runs.FinishRun")

	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	runID := c.Param("id")
	middleware.SetRunID(c, runID)

	run, err := h.runUC.FinishRun(c.Request().Context(), scope, runID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Run finished", run)
}

// GetRun returns the run at :id
func (h *RunsHandler) GetRun(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	run, err := h.runUC.GetRun(c.Request().Context(), scope, c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Run retrieved", run)
}
