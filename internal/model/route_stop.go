package model

import "time"

// RouteStop is one entry in the ordered stop sequence of a scheduled run.
// For a given run the RouteOrder values form a contiguous 0-based range
// with no gaps or duplicates; this ordering is the sole authority for
// whether station A is reachable before station B on the run.  This
// struct corresponds to a row in the `route_stops` table.
//
// Fields:
//  ID          – primary key identifier.
//  RunID       – scheduled run this stop belongs to.
//  StationID   – station at this position.
//  StationCode – denormalized station code for request resolution.
//  RouteOrder  – 0-based position within the run, strictly increasing.
//  ArrivesAt   – scheduled arrival time (nil for the first stop).
//  DepartsAt   – scheduled departure time (nil for the last stop).
type RouteStop struct {
	ID          uint64     // route_stops.id
	RunID       uint64     // route_stops.run_id
	StationID   uint64     // route_stops.station_id
	StationCode string     // stations.code (joined)
	RouteOrder  int        // route_stops.route_order
	ArrivesAt   *time.Time // route_stops.arrives_at (nullable)
	DepartsAt   *time.Time // route_stops.departs_at (nullable)
}
