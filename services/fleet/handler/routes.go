package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/fleettrack/services/fleet"
	httpHandler "github.com/piresc/fleettrack/services/fleet/handler/http"
)

// Handler combines all handlers for the fleet service
type Handler struct {
	fleetHTTP *httpHandler.FleetHandler
}

// NewHandler creates a new combined handler
func NewHandler(fleetUC fleet.FleetUC) *Handler {
	return &Handler{
		fleetHTTP: httpHandler.NewFleetHandler(fleetUC),
	}
}

// RegisterRoutes registers the vehicle and refuel routes on an authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	vehicles := api.Group("/vehicles")
	vehicles.GET("", h.fleetHTTP.ListVehicles)
	vehicles.GET("/:id", h.fleetHTTP.GetVehicle)

	refuels := api.Group("/refuels")
	refuels.POST("", h.fleetHTTP.RegisterRefuel)
	refuels.GET("", h.fleetHTTP.ListRefuels)
}
