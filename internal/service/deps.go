// Package service implements the segment seat-availability engine: fare
// computation, availability checks over station ranges, the booking and
// cancellation lifecycle and the seat status reconciler. Every component
// receives its storage accessors as constructor arguments so tests can
// substitute in-memory implementations for the MySQL repositories.
package service

import (
	"context"

	"github.com/iliyamo/railway-segment-reservation/internal/model"
	"github.com/iliyamo/railway-segment-reservation/internal/queue"
)

// RouteReader resolves station codes against the ordered stop sequence of
// a scheduled run. Implemented by repository.RouteRepo.
type RouteReader interface {
	StationOrder(ctx context.Context, runID uint64, stationCode string) (int, error)
	FullSequence(ctx context.Context, runID uint64) ([]model.RouteStop, error)
	StopCount(ctx context.Context, runID uint64) (int, error)
}

// SeatReader enumerates the seat universe of a run and looks up single
// seats. Implemented by repository.SeatRepo.
type SeatReader interface {
	GetByRun(ctx context.Context, runID uint64, class string) ([]model.PhysicalSeat, error)
	GetByID(ctx context.Context, id uint64) (*model.PhysicalSeat, error)
}

// SeatStatusWriter writes the cached seat status. Only the reconciler
// holds one; booking logic never touches the cache directly.
type SeatStatusWriter interface {
	UpdateStatus(ctx context.Context, seatID uint64, status string) error
}

// IntervalStore is the authoritative occupancy record per seat per run.
// Reserve must be atomic: insert the interval iff no overlapping interval
// exists, under whatever locking the implementation provides. Implemented
// by repository.OccupancyRepo (row locks) and by the in-memory store used
// in tests (mutex).
type IntervalStore interface {
	IsRangeFree(ctx context.Context, seatID, runID uint64, startOrder, endOrder int) (bool, error)
	Reserve(ctx context.Context, seatID, runID uint64, startOrder, endOrder int, bookingID uint64) (*model.OccupancyInterval, error)
	Release(ctx context.Context, bookingID, seatID, runID uint64) (int64, error)
	IntervalsForSeat(ctx context.Context, seatID, runID uint64) ([]model.OccupancyInterval, error)
}

// EventPublisher pushes booking lifecycle events to the message broker.
// Publishing is best effort; the booking flow logs and continues when the
// broker is unreachable.
type EventPublisher interface {
	SegmentBooked(ctx context.Context, ev queue.SegmentBookedEvent) error
	SegmentCancelled(ctx context.Context, ev queue.SegmentCancelledEvent) error
}
