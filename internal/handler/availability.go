package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-segment-reservation/internal/model"
	"github.com/iliyamo/railway-segment-reservation/internal/repository"
	"github.com/iliyamo/railway-segment-reservation/internal/service"
)

// AvailabilityHandler exposes seat quotes for a station range on a run.
// Responses always reflect the occupancy table at call time; this route
// is deliberately kept out of the response cache.
type AvailabilityHandler struct {
	RunRepo *repository.RunRepo
	Booking *service.SegmentBookingService
}

// NewAvailabilityHandler constructs an AvailabilityHandler. All
// dependencies must be non-nil.
func NewAvailabilityHandler(runRepo *repository.RunRepo, booking *service.SegmentBookingService) *AvailabilityHandler {
	if runRepo == nil || booking == nil {
		panic("nil dependency passed to NewAvailabilityHandler")
	}
	return &AvailabilityHandler{RunRepo: runRepo, Booking: booking}
}

// GetAvailability handles GET /v1/runs/:id/availability. Query
// parameters: from and to are station codes (required), class optionally
// restricts to one travel class, passengers caps the number of seats
// returned (default 1). The response carries the priced candidates and a
// partial flag when fewer seats qualified than passengers requested.
func (h *AvailabilityHandler) GetAvailability(c echo.Context) error {
	runID := pathID(c, "id")
	if runID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid run id"})
	}
	from := strings.TrimSpace(c.QueryParam("from"))
	to := strings.TrimSpace(c.QueryParam("to"))
	if from == "" || to == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "from and to station codes are required"})
	}
	class := normalizeClass(c.QueryParam("class"))
	passengers := 1
	if p := c.QueryParam("passengers"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "passengers must be a positive integer"})
		}
		passengers = n
	}

	ctx := c.Request().Context()
	// Verify the run exists and is still bookable before quoting.
	run, err := h.RunRepo.GetByID(ctx, runID)
	if err != nil {
		return writeEngineError(c, err)
	}
	if run.Status != model.RunScheduled {
		return c.JSON(http.StatusConflict, echo.Map{"error": "run is not open for booking"})
	}

	quote, err := h.Booking.Quote(ctx, runID, from, to, class, passengers)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"run_id":          runID,
		"from":            from,
		"to":              to,
		"boarding_order":  quote.BoardingOrder,
		"alighting_order": quote.AlightingOrder,
		"seats":           quote.Seats,
		"partial":         quote.Partial,
	})
}

// normalizeClass upper-cases the requested class so URL parameters like
// "economy" match the stored enumeration. Unknown values are passed
// through: the seat query simply matches nothing and the fare fallback
// never sees them.
func normalizeClass(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
