package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/middleware"
	"github.com/piresc/fleettrack/internal/pkg/models"
	nrpkg "github.com/piresc/fleettrack/internal/pkg/newrelic"
	"github.com/piresc/fleettrack/internal/utils"
	"github.com/piresc/fleettrack/services/fleet"
)

// FleetHandler handles HTTP requests for vehicles and refuels
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet HTTP handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{fleetUC: fleetUC}
}

// ListVehicles lists the trucks of the operator's company sector
func (h *FleetHandler) ListVehicles(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Fleet.ListVehicles")

	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	vehicles, err := h.fleetUC.ListVehicles(c.Request().Context(), scope)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.ErrorCtx(c.Request().Context(), "Failed to list vehicles", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved", vehicles)
}

// GetVehicle returns one truck
func (h *FleetHandler) GetVehicle(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Fleet.GetVehicle")

	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	vehicle, err := h.fleetUC.GetVehicle(c.Request().Context(), scope, c.Param("id"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle retrieved", vehicle)
}

// RegisterRefuel stores a refuel made by the operator
func (h *FleetHandler) RegisterRefuel(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Fleet.RegisterRefuel")

	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	var req models.RefuelRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	refuel, err := h.fleetUC.RegisterRefuel(c.Request().Context(), scope, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.WarnCtx(c.Request().Context(), "Refuel rejected",
			logger.String("vehicle_id", req.VehicleID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Refuel registered", refuel)
}

// ListRefuels lists refuels, optionally filtered by the vehicle_id query parameter
func (h *FleetHandler) ListRefuels(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Fleet.ListRefuels")

	scope, ok := middleware.GetScope(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	refuels, err := h.fleetUC.ListRefuels(c.Request().Context(), scope, c.QueryParam("vehicle_id"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Refuels retrieved", refuels)
}
