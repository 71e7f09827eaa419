package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-segment-reservation/internal/repository"
)

// RouteHandler exposes the ordered stop sequence of scheduled runs. The
// data is provisioned by schedule management and read-only here, which is
// why these endpoints sit behind the response cache.
type RouteHandler struct {
	RunRepo   *repository.RunRepo
	RouteRepo *repository.RouteRepo
}

// NewRouteHandler constructs a RouteHandler with the provided
// repositories. All dependencies must be non-nil.
func NewRouteHandler(runRepo *repository.RunRepo, routeRepo *repository.RouteRepo) *RouteHandler {
	if runRepo == nil || routeRepo == nil {
		panic("nil repository passed to NewRouteHandler")
	}
	return &RouteHandler{RunRepo: runRepo, RouteRepo: routeRepo}
}

// stopView is the JSON shape of one route stop in browse responses.
type stopView struct {
	StationID   uint64  `json:"station_id"`
	StationCode string  `json:"station_code"`
	RouteOrder  int     `json:"route_order"`
	ArrivesAt   *string `json:"arrives_at"`
	DepartsAt   *string `json:"departs_at"`
}

// GetRunStops handles GET /v1/runs/:id/stops. It returns the run's full
// stop sequence in route order, with RFC3339 times; the first stop has no
// arrival and the last no departure. Responds 404 when the run does not
// exist.
func (h *RouteHandler) GetRunStops(c echo.Context) error {
	runID := pathID(c, "id")
	if runID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid run id"})
	}
	ctx := c.Request().Context()
	run, err := h.RunRepo.GetByID(ctx, runID)
	if err != nil {
		return writeEngineError(c, err)
	}
	stops, err := h.RouteRepo.FullSequence(ctx, runID)
	if err != nil {
		return writeEngineError(c, err)
	}
	views := make([]stopView, 0, len(stops))
	for _, s := range stops {
		views = append(views, stopView{
			StationID:   s.StationID,
			StationCode: s.StationCode,
			RouteOrder:  s.RouteOrder,
			ArrivesAt:   isoTime(s.ArrivesAt),
			DepartsAt:   isoTime(s.DepartsAt),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"run_id":      run.ID,
		"travel_date": run.TravelDate.UTC().Format("2006-01-02"),
		"status":      run.Status,
		"stops":       views,
	})
}

func isoTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	iso := t.UTC().Format(time.RFC3339)
	return &iso
}
