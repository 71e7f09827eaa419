package model

import "time"

// Seat class values.  These are the only classes the fare table knows;
// anything else is priced at the Economy rate.
const (
	ClassExecutive = "EXECUTIVE"
	ClassBusiness  = "BUSINESS"
	ClassEconomy   = "ECONOMY"
)

// Seat status values.  Status is a derived cache of the occupancy
// interval set, recomputed by the reconciler after every booking or
// cancellation.  BLOCKED is set operationally (damaged seat, crew
// reservation) and is never touched by the reconciler.
const (
	SeatAvailable = "AVAILABLE"
	SeatBooked    = "BOOKED"
	SeatBlocked   = "BLOCKED"
)

// Coach represents one carriage assigned to a scheduled run.  Coaches
// group seats of one class.  This struct corresponds to a row in the
// `coaches` table.
//
// Fields:
//  ID        – primary key identifier.
//  RunID     – scheduled run the coach is assigned to.
//  Code      – coach code printed on the carriage (e.g. "EX1", "C3").
//  Class     – travel class of every seat in the coach.
//  CreatedAt – creation timestamp.
type Coach struct {
	ID        uint64    // coaches.id
	RunID     uint64    // coaches.run_id
	Code      string    // coaches.code
	Class     string    // coaches.class
	CreatedAt time.Time // coaches.created_at
}

// PhysicalSeat is one sellable seat slot of one coach, valid for the
// lifetime of the coach assignment to a run.  A physical seat can be
// sold to multiple passengers for non-overlapping station ranges; the
// occupancy_intervals table is the source of truth for that, Status is
// only a cache.  This struct corresponds to a row in the `seats` table.
//
// Fields:
//  ID         – primary key identifier.
//  CoachID    – coach this seat belongs to.
//  SeatNumber – seat number within the coach (1-based).
//  Class      – travel class, denormalized from the coach.
//  Status     – cached availability (AVAILABLE, BOOKED, BLOCKED).
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type PhysicalSeat struct {
	ID         uint64    // seats.id
	CoachID    uint64    // seats.coach_id
	SeatNumber uint32    // seats.seat_number
	Class      string    // seats.class
	Status     string    // seats.status
	CreatedAt  time.Time // seats.created_at
	UpdatedAt  time.Time // seats.updated_at
}
