package service

import (
	"context"

	"github.com/iliyamo/railway-segment-reservation/internal/model"
)

// SeatStatusReconciler recomputes the cached status of a seat from the
// authoritative interval set after every booking or cancellation. A seat
// is fully consumed when no contiguous sub-range of the route remains
// sellable, i.e. every boarding/alighting pair a future passenger could
// request is blocked by an existing interval.
type SeatStatusReconciler struct {
	routes    RouteReader
	seats     SeatReader
	status    SeatStatusWriter
	intervals IntervalStore
}

// NewSeatStatusReconciler constructs a SeatStatusReconciler. All
// dependencies must be non-nil.
func NewSeatStatusReconciler(routes RouteReader, seats SeatReader, status SeatStatusWriter, intervals IntervalStore) *SeatStatusReconciler {
	if routes == nil || seats == nil || status == nil || intervals == nil {
		panic("nil dependency passed to NewSeatStatusReconciler")
	}
	return &SeatStatusReconciler{routes: routes, seats: seats, status: status, intervals: intervals}
}

// Reconcile recomputes and writes the cached status of the seat for the
// run and returns the status it settled on. Blocked seats are left
// untouched: blocking is operational state this reconciler never
// overrides.
//
// Every candidate range [i, j) with 0 <= i < j <= N-1 over the run's N
// stops is enumerated; if all of them overlap an existing interval the
// seat becomes BOOKED, otherwise AVAILABLE. The intervals are loaded once
// and tested in memory, so the enumeration costs N*(N-1)/2 overlap tests
// against a handful of intervals. Routes are short (single-digit to low
// double-digit stops); for much longer routes a merged-interval sweep
// over the booked set would answer "any free sub-range" in O(M log M).
func (r *SeatStatusReconciler) Reconcile(ctx context.Context, seatID, runID uint64) (string, error) {
	seat, err := r.seats.GetByID(ctx, seatID)
	if err != nil {
		return "", err
	}
	if seat.Status == model.SeatBlocked {
		return model.SeatBlocked, nil
	}

	stops, err := r.routes.StopCount(ctx, runID)
	if err != nil {
		return "", err
	}
	intervals, err := r.intervals.IntervalsForSeat(ctx, seatID, runID)
	if err != nil {
		return "", err
	}

	status := model.SeatBooked
	if freeRangeExists(stops, intervals) {
		status = model.SeatAvailable
	}
	if err := r.status.UpdateStatus(ctx, seatID, status); err != nil {
		return "", err
	}
	return status, nil
}

// freeRangeExists reports whether any bookable range [i, j) over a route
// of n stops is left uncovered by the intervals. Boarding at the final
// stop is impossible, so j never exceeds n-1.
func freeRangeExists(n int, intervals []model.OccupancyInterval) bool {
	for i := 0; i < n-1; i++ {
		for j := i + 1; j <= n-1; j++ {
			if rangeIsFree(i, j, intervals) {
				return true
			}
		}
	}
	return false
}

func rangeIsFree(start, end int, intervals []model.OccupancyInterval) bool {
	for _, iv := range intervals {
		if iv.Covers(start, end) {
			return false
		}
	}
	return true
}
