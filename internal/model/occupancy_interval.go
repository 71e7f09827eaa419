package model

import "time"

// OccupancyInterval is the authoritative record of one partial sale of a
// seat: the seat is occupied from the stop at BoardingOrder up to but not
// including the stop at AlightingOrder.  Ranges are half-open so that a
// passenger alighting at a station and another boarding at the same
// station never conflict.  Invariant enforced by the store: no two
// intervals for the same seat and run may overlap.  This struct
// corresponds to a row in the `occupancy_intervals` table.
//
// Fields:
//  ID             – primary key identifier.
//  SeatID         – seat the interval occupies.
//  RunID          – scheduled run the sale applies to.
//  BoardingOrder  – route order where the passenger boards (inclusive).
//  AlightingOrder – route order where the passenger alights (exclusive).
//  BookingID      – owning booking reference.
//  CreatedAt      – creation timestamp.
type OccupancyInterval struct {
	ID             uint64    // occupancy_intervals.id
	SeatID         uint64    // occupancy_intervals.seat_id
	RunID          uint64    // occupancy_intervals.run_id
	BoardingOrder  int       // occupancy_intervals.boarding_order
	AlightingOrder int       // occupancy_intervals.alighting_order
	BookingID      uint64    // occupancy_intervals.booking_id
	CreatedAt      time.Time // occupancy_intervals.created_at
}

// Covers reports whether the interval occupies any part of the half-open
// range [start, end).
func (iv OccupancyInterval) Covers(start, end int) bool {
	return RangesOverlap(iv.BoardingOrder, iv.AlightingOrder, start, end)
}

// RangesOverlap is the single overlap rule used everywhere in the engine:
// two half-open ranges [aStart, aEnd) and [bStart, bEnd) conflict iff
// aStart < bEnd && bStart < aEnd.  Adjacent ranges share a boundary stop
// and do not overlap.
func RangesOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
