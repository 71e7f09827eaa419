package service

import (
	"context"

	"github.com/iliyamo/railway-segment-reservation/internal/model"
	"github.com/iliyamo/railway-segment-reservation/internal/repository"
)

// CandidateSeat is one seat that can legally be sold for a requested
// station range, annotated with its class and the fare for that range.
type CandidateSeat struct {
	SeatID     uint64 `json:"seat_id"`
	CoachID    uint64 `json:"coach_id"`
	SeatNumber uint32 `json:"seat_number"`
	Class      string `json:"class"`
	Price      int64  `json:"price"`
}

// AvailabilityChecker answers "which seats are free for this station
// range on this run". It resolves station codes to route orders and
// filters the run's seat universe against the interval store.
type AvailabilityChecker struct {
	routes    RouteReader
	seats     SeatReader
	intervals IntervalStore
}

// NewAvailabilityChecker constructs an AvailabilityChecker. All
// dependencies must be non-nil.
func NewAvailabilityChecker(routes RouteReader, seats SeatReader, intervals IntervalStore) *AvailabilityChecker {
	if routes == nil || seats == nil || intervals == nil {
		panic("nil dependency passed to NewAvailabilityChecker")
	}
	return &AvailabilityChecker{routes: routes, seats: seats, intervals: intervals}
}

// ResolveRange maps boarding and alighting station codes to route orders
// on the run. Returns ErrStationNotOnRoute when either code is absent
// from the stop sequence and ErrInvalidRoute when the alighting stop is
// not strictly after the boarding stop (wrong direction, or boarding and
// alighting at the same station).
func (a *AvailabilityChecker) ResolveRange(ctx context.Context, runID uint64, boardingCode, alightingCode string) (int, int, error) {
	startOrder, err := a.routes.StationOrder(ctx, runID, boardingCode)
	if err != nil {
		return 0, 0, err
	}
	endOrder, err := a.routes.StationOrder(ctx, runID, alightingCode)
	if err != nil {
		return 0, 0, err
	}
	if startOrder >= endOrder {
		return 0, 0, repository.ErrInvalidRoute
	}
	return startOrder, endOrder, nil
}

// FindAvailableSeats returns every seat of the run (optionally restricted
// to a class) whose occupancy leaves the half-open range [boarding,
// alighting) free. Blocked seats are excluded outright. A seat whose
// cached status is BOOKED is still re-checked against the interval store:
// the cache means "no sub-range left at some point in the past", not
// "unavailable for this particular range", and the two can legitimately
// differ after cancellations. Prices are filled in by the caller.
func (a *AvailabilityChecker) FindAvailableSeats(ctx context.Context, runID uint64, boardingCode, alightingCode, class string) ([]CandidateSeat, error) {
	startOrder, endOrder, err := a.ResolveRange(ctx, runID, boardingCode, alightingCode)
	if err != nil {
		return nil, err
	}
	seats, err := a.seats.GetByRun(ctx, runID, class)
	if err != nil {
		return nil, err
	}
	candidates := make([]CandidateSeat, 0, len(seats))
	for _, s := range seats {
		if s.Status == model.SeatBlocked {
			continue
		}
		free, err := a.intervals.IsRangeFree(ctx, s.ID, runID, startOrder, endOrder)
		if err != nil {
			return nil, err
		}
		if !free {
			continue
		}
		candidates = append(candidates, CandidateSeat{
			SeatID:     s.ID,
			CoachID:    s.CoachID,
			SeatNumber: s.SeatNumber,
			Class:      s.Class,
		})
	}
	return candidates, nil
}
