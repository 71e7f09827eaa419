package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-segment-reservation/internal/service"
)

// BookingHandler exposes the segment booking lifecycle: confirming a
// quoted seat for a station range and cancelling it again. Both routes
// sit behind identity verification; the wider booking transaction
// (passenger records, payment, invoicing) is owned by the calling
// orchestration system, this service only manages occupancy.
type BookingHandler struct {
	Booking *service.SegmentBookingService
}

// NewBookingHandler constructs a BookingHandler. The booking service must
// be non-nil.
func NewBookingHandler(booking *service.SegmentBookingService) *BookingHandler {
	if booking == nil {
		panic("nil booking service passed to NewBookingHandler")
	}
	return &BookingHandler{Booking: booking}
}

// BookSegment handles POST /v1/bookings/:id/segments. The path id is the
// booking reference assigned by the orchestration layer; the body names
// the run, seat and station range. On success it returns 201 with the
// written interval and fare. A lost race for the seat returns 409 and
// the caller must re-quote.
func (h *BookingHandler) BookSegment(c echo.Context) error {
	bookingID := pathID(c, "id")
	if bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var body struct {
		RunID  uint64 `json:"run_id"`
		SeatID uint64 `json:"seat_id"`
		From   string `json:"from"`
		To     string `json:"to"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.From = strings.TrimSpace(body.From)
	body.To = strings.TrimSpace(body.To)
	if body.RunID == 0 || body.SeatID == 0 || body.From == "" || body.To == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "run_id, seat_id, from and to are required"})
	}

	conf, err := h.Booking.BookSegment(c.Request().Context(), bookingID, body.RunID, body.SeatID, body.From, body.To)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"booking_id":  bookingID,
		"interval":    conf.Interval,
		"class":       conf.Class,
		"amount":      conf.Amount,
		"seat_status": conf.SeatStatus,
	})
}

// CancelSegment handles DELETE /v1/bookings/:id/segments. run_id and
// seat_id arrive as query parameters. The operation is idempotent:
// cancelling a combination with no matching interval returns 200 with
// released = 0.
func (h *BookingHandler) CancelSegment(c echo.Context) error {
	bookingID := pathID(c, "id")
	if bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	runID := queryID(c, "run_id")
	seatID := queryID(c, "seat_id")
	if runID == 0 || seatID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "run_id and seat_id are required"})
	}

	released, err := h.Booking.CancelSegment(c.Request().Context(), bookingID, seatID, runID)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"booking_id": bookingID,
		"released":   released,
	})
}
