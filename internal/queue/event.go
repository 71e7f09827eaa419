// Package queue defines message payloads exchanged over the message broker.
package queue

// SegmentBookedEvent is published when a segment booking is confirmed and
// the occupancy interval has been written. It contains enough information
// for downstream consumers to log, notify, or trigger invoicing without
// querying the primary database.
type SegmentBookedEvent struct {
	BookingID      uint64 `json:"booking_id"`
	RunID          uint64 `json:"run_id"`
	SeatID         uint64 `json:"seat_id"`
	BoardingCode   string `json:"boarding_code"`
	AlightingCode  string `json:"alighting_code"`
	BoardingOrder  int    `json:"boarding_order"`
	AlightingOrder int    `json:"alighting_order"`
	Class          string `json:"class"`
	Amount         int64  `json:"amount"`
	SeatStatus     string `json:"seat_status"`
	BookedAt       string `json:"booked_at"`
}

// SegmentCancelledEvent is published when a booking's intervals for a
// seat and run are released. Released is the number of intervals removed;
// zero means the cancellation was a no-op replay.
type SegmentCancelledEvent struct {
	BookingID   uint64 `json:"booking_id"`
	RunID       uint64 `json:"run_id"`
	SeatID      uint64 `json:"seat_id"`
	Released    int64  `json:"released"`
	SeatStatus  string `json:"seat_status"`
	CancelledAt string `json:"cancelled_at"`
}
