package model

import "time"

// Run status values.  A run is created as SCHEDULED by schedule
// management and may later be CANCELLED or COMPLETED; the reservation
// engine treats the row as read-only in every state.
const (
	RunScheduled = "SCHEDULED"
	RunCancelled = "CANCELLED"
	RunCompleted = "COMPLETED"
)

// ScheduledRun represents one train operating on one calendar date.
// Runs are provisioned by schedule management before any booking is
// possible.  This struct corresponds to a row in the `scheduled_runs`
// table.
//
// Fields:
//  ID         – primary key identifier.
//  TrainID    – reference to the operating train.
//  TravelDate – calendar date of the journey.
//  Status     – lifecycle status (SCHEDULED, CANCELLED, COMPLETED).
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type ScheduledRun struct {
	ID         uint64    // scheduled_runs.id
	TrainID    uint64    // scheduled_runs.train_id
	TravelDate time.Time // scheduled_runs.travel_date
	Status     string    // scheduled_runs.status
	CreatedAt  time.Time // scheduled_runs.created_at
	UpdatedAt  time.Time // scheduled_runs.updated_at
}
