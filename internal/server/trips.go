package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/voyago/tripagent/internal/trip"
)

// Planner is what the handlers need from the pipeline.
type Planner interface {
	Run(ctx context.Context, req trip.Request) (*trip.State, error)
}

// TripsHandler serves the plan endpoint for both the JSON API and the form UI.
type TripsHandler struct {
	Planner Planner
	Timeout time.Duration
}

func (h *TripsHandler) Register(g *echo.Group) {
	g.POST("/plan", h.plan)
}

func (h *TripsHandler) plan(c echo.Context) error {
	var body PlanRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := body.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	st, err := h.Planner.Run(ctx, body.ToTripRequest())
	if err != nil {
		// completion failures surface as a server error with detail
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, PlanResponse{FinalResult: st.FinalTrip})
}
