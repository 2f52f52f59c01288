package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/fleettrack/services/runs"
	httpHandler "github.com/piresc/fleettrack/services/runs/handler/http"
)

// Handler combines all handlers for the runs service
type Handler struct {
	runsHTTP *httpHandler.RunsHandler
}

// NewHandler creates a new combined handler
func NewHandler(runUC runs.RunUC) *Handler {
	return &Handler{
		runsHTTP: httpHandler.NewRunsHandler(runUC),
	}
}

// RegisterRoutes registers the draft and run routes on an authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/stop-points", h.runsHTTP.ListStopPoints)

	draft := api.Group("/runs/draft")
	draft.GET("", h.runsHTTP.GetDraft)
	draft.DELETE("", h.runsHTTP.ResetDraft)
	draft.PUT("/vehicle", h.runsHTTP.SelectVehicle)
	draft.PUT("/mileage", h.runsHTTP.SetMileage)
	draft.POST("/stops", h.runsHTTP.AddStop)
	draft.DELETE("/stops/:index", h.runsHTTP.RemoveStop)
	draft.POST("/stops/:index/move", h.runsHTTP.MoveStop)

	runsGroup := api.Group("/runs")
	runsGroup.POST("", h.runsHTTP.StartRun)
	runsGroup.GET("/:id", h.runsHTTP.GetRun)
	runsGroup.POST("/:id/finish", h.runsHTTP.FinishRun)
}
