package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-segment-reservation/internal/repository"
)

// pathID parses a positive uint64 path parameter, returning 0 when the
// value is missing or malformed.
func pathID(c echo.Context, name string) uint64 {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// queryID parses a positive uint64 query parameter, returning 0 when the
// value is missing or malformed.
func queryID(c echo.Context, name string) uint64 {
	id, err := strconv.ParseUint(c.QueryParam(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// writeEngineError maps engine sentinel errors onto the HTTP taxonomy:
// caller errors (unknown station, wrong direction) are 400/422 and must
// not be retried, losing the seat race is 409 and means "re-quote",
// missing runs/seats are 404, and anything else is a storage failure
// surfaced as 500 — never masked as "no seats available".
func writeEngineError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrStationNotOnRoute):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "station not on route"})
	case errors.Is(err, repository.ErrInvalidRoute):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "alighting stop must come after boarding stop"})
	case errors.Is(err, repository.ErrSeatNoLongerAvailable):
		return c.JSON(http.StatusConflict, echo.Map{"error": "seat no longer available, request a new quote"})
	case errors.Is(err, repository.ErrRunNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "scheduled run not found"})
	case errors.Is(err, repository.ErrSeatNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
}
