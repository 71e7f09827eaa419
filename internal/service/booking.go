package service

import (
	"context"
	"log"
	"time"

	"github.com/iliyamo/railway-segment-reservation/internal/model"
	"github.com/iliyamo/railway-segment-reservation/internal/queue"
)

// QuoteResult is the outcome of a quote: up to the requested number of
// priced candidate seats. Partial is set when fewer seats qualified than
// passengers asked for; the caller decides whether a partial offer is
// acceptable. Seats are never fabricated: an empty list with Partial set
// means the quote is aborted.
type QuoteResult struct {
	Seats          []CandidateSeat `json:"seats"`
	Partial        bool            `json:"partial"`
	BoardingOrder  int             `json:"boarding_order"`
	AlightingOrder int             `json:"alighting_order"`
}

// BookingConfirmation is returned by BookSegment: the interval that was
// written, the seat's class and fare for the booked range, and the seat
// status the reconciler settled on afterwards.
type BookingConfirmation struct {
	Interval   model.OccupancyInterval `json:"interval"`
	Class      string                  `json:"class"`
	Amount     int64                   `json:"amount"`
	SeatStatus string                  `json:"seat_status"`
}

// SegmentBookingService orchestrates the booking lifecycle: quoting
// candidate seats for a station range, confirming a segment sale by
// writing its occupancy interval, and releasing intervals on
// cancellation. After every confirmed write it triggers the reconciler so
// the cached seat status keeps tracking the interval set.
type SegmentBookingService struct {
	checker    *AvailabilityChecker
	seats      SeatReader
	intervals  IntervalStore
	reconciler *SeatStatusReconciler
	events     EventPublisher // optional; nil disables event publishing
}

// NewSegmentBookingService constructs a SegmentBookingService. The event
// publisher may be nil when no broker is configured; everything else must
// be non-nil.
func NewSegmentBookingService(checker *AvailabilityChecker, seats SeatReader, intervals IntervalStore, reconciler *SeatStatusReconciler, events EventPublisher) *SegmentBookingService {
	if checker == nil || seats == nil || intervals == nil || reconciler == nil {
		panic("nil dependency passed to NewSegmentBookingService")
	}
	return &SegmentBookingService{
		checker:    checker,
		seats:      seats,
		intervals:  intervals,
		reconciler: reconciler,
		events:     events,
	}
}

// Quote returns up to passengerCount available seats for the requested
// range, each priced for its own class. When fewer seats qualify the
// result carries the partial flag so the caller can offer a reduced
// booking instead of failing outright.
func (s *SegmentBookingService) Quote(ctx context.Context, runID uint64, boardingCode, alightingCode, class string, passengerCount int) (*QuoteResult, error) {
	if passengerCount < 1 {
		passengerCount = 1
	}
	startOrder, endOrder, err := s.checker.ResolveRange(ctx, runID, boardingCode, alightingCode)
	if err != nil {
		return nil, err
	}
	candidates, err := s.checker.FindAvailableSeats(ctx, runID, boardingCode, alightingCode, class)
	if err != nil {
		return nil, err
	}
	partial := len(candidates) < passengerCount
	if len(candidates) > passengerCount {
		candidates = candidates[:passengerCount]
	}
	for i := range candidates {
		candidates[i].Price = PriceFor(candidates[i].Class, startOrder, endOrder)
	}
	return &QuoteResult{
		Seats:          candidates,
		Partial:        partial,
		BoardingOrder:  startOrder,
		AlightingOrder: endOrder,
	}, nil
}

// BookSegment confirms the sale of one seat over the requested range for
// the given booking. Station orders are resolved fresh and the range is
// re-validated by the store's atomic reserve, so a quote that has gone
// stale fails here with ErrSeatNoLongerAvailable and the caller must
// re-quote (retrying the same seat would lose again). On success the
// written interval and its fare are returned and the seat's cached
// status is reconciled.
func (s *SegmentBookingService) BookSegment(ctx context.Context, bookingID, runID, seatID uint64, boardingCode, alightingCode string) (*BookingConfirmation, error) {
	startOrder, endOrder, err := s.checker.ResolveRange(ctx, runID, boardingCode, alightingCode)
	if err != nil {
		return nil, err
	}
	seat, err := s.seats.GetByID(ctx, seatID)
	if err != nil {
		return nil, err
	}

	interval, err := s.intervals.Reserve(ctx, seatID, runID, startOrder, endOrder, bookingID)
	if err != nil {
		return nil, err
	}

	status, err := s.reconciler.Reconcile(ctx, seatID, runID)
	if err != nil {
		return nil, err
	}

	amount := PriceFor(seat.Class, startOrder, endOrder)
	conf := &BookingConfirmation{
		Interval:   *interval,
		Class:      seat.Class,
		Amount:     amount,
		SeatStatus: status,
	}

	if s.events != nil {
		ev := queue.SegmentBookedEvent{
			BookingID:      bookingID,
			RunID:          runID,
			SeatID:         seatID,
			BoardingCode:   boardingCode,
			AlightingCode:  alightingCode,
			BoardingOrder:  startOrder,
			AlightingOrder: endOrder,
			Class:          seat.Class,
			Amount:         amount,
			SeatStatus:     status,
			BookedAt:       time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.events.SegmentBooked(ctx, ev); err != nil {
			log.Printf("booking: publish segment.booked failed: %v", err)
		}
	}
	return conf, nil
}

// CancelSegment releases every interval the booking holds on the seat for
// the run and reconciles the seat status. Cancelling a combination with
// no matching interval is a no-op, not an error, so replays always
// succeed.
func (s *SegmentBookingService) CancelSegment(ctx context.Context, bookingID, seatID, runID uint64) (int64, error) {
	released, err := s.intervals.Release(ctx, bookingID, seatID, runID)
	if err != nil {
		return 0, err
	}
	status, err := s.reconciler.Reconcile(ctx, seatID, runID)
	if err != nil {
		return released, err
	}

	if s.events != nil {
		ev := queue.SegmentCancelledEvent{
			BookingID:   bookingID,
			RunID:       runID,
			SeatID:      seatID,
			Released:    released,
			SeatStatus:  status,
			CancelledAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.events.SegmentCancelled(ctx, ev); err != nil {
			log.Printf("booking: publish segment.cancelled failed: %v", err)
		}
	}
	return released, nil
}

