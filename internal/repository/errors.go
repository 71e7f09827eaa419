// Package repository defines error types that are reused across multiple
// repositories and by the service layer. These sentinel values allow
// higher layers such as handlers to distinguish between different failure
// scenarios: caller mistakes (a station that is not on the requested
// route, an alighting stop that is not after the boarding stop) must be
// rejected without retry, while losing the race for a seat tells the
// caller to re-quote rather than retry the same seat.
package repository

import "errors"

// ErrRunNotFound is returned when a scheduled run lookup yields no rows.
var ErrRunNotFound = errors.New("scheduled run not found")

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// ErrStationNotOnRoute is returned when a station code does not appear in
// the stop sequence of the requested run. This is a caller error, not a
// transient failure; handlers translate it into an HTTP 400 response.
var ErrStationNotOnRoute = errors.New("station not on route")

// ErrInvalidRoute is returned when the alighting stop is not strictly
// after the boarding stop on the run, covering both "wrong direction"
// and "same station" requests. Handlers translate it into HTTP 422.
var ErrInvalidRoute = errors.New("alighting stop must come after boarding stop")

// ErrSeatNoLongerAvailable is returned when the reserve-time overlap
// re-check finds the requested range already taken. The caller must
// re-quote; retrying the same seat will fail again. Handlers translate
// it into HTTP 409.
var ErrSeatNoLongerAvailable = errors.New("seat no longer available for the requested range")
