package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/iliyamo/railway-segment-reservation/internal/model"
	"github.com/iliyamo/railway-segment-reservation/internal/queue"
	"github.com/iliyamo/railway-segment-reservation/internal/repository"
)

func economySeat(id uint64) model.PhysicalSeat {
	return model.PhysicalSeat{ID: id, CoachID: 1, SeatNumber: uint32(id), Class: model.ClassEconomy, Status: model.SeatAvailable}
}

func TestBookSegmentConfirmsAndPrices(t *testing.T) {
	booking, _, _, _, _ := newEngine(1, fourStops, economySeat(1))

	conf, err := booking.BookSegment(context.Background(), 100, 1, 1, "AMS", "ARN")
	if err != nil {
		t.Fatalf("BookSegment: %v", err)
	}
	if conf.Interval.BoardingOrder != 0 || conf.Interval.AlightingOrder != 2 {
		t.Errorf("interval = [%d, %d), want [0, 2)", conf.Interval.BoardingOrder, conf.Interval.AlightingOrder)
	}
	if conf.Amount != 300_000 {
		t.Errorf("fare = %d, want 300000 (economy, two segments)", conf.Amount)
	}
	if conf.SeatStatus != model.SeatAvailable {
		t.Errorf("seat status = %q, want AVAILABLE (tail range still free)", conf.SeatStatus)
	}
}

func TestBookSegmentRejectsOverlap(t *testing.T) {
	booking, _, _, _, _ := newEngine(1, fourStops, economySeat(1))
	ctx := context.Background()

	if _, err := booking.BookSegment(ctx, 100, 1, 1, "AMS", "ARN"); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	// [1, 3) overlaps [0, 2); the seat was already sold for UTR-ARN.
	if _, err := booking.BookSegment(ctx, 101, 1, 1, "UTR", "NIJ"); !errors.Is(err, repository.ErrSeatNoLongerAvailable) {
		t.Fatalf("overlapping booking: got %v, want ErrSeatNoLongerAvailable", err)
	}
	// The adjacent tail [2, 3) is still sellable.
	if _, err := booking.BookSegment(ctx, 102, 1, 1, "ARN", "NIJ"); err != nil {
		t.Fatalf("adjacent booking: %v", err)
	}
}

func TestCancelReinstatesAvailability(t *testing.T) {
	booking, checker, _, _, _ := newEngine(1, fourStops, economySeat(1))
	ctx := context.Background()

	if _, err := booking.BookSegment(ctx, 100, 1, 1, "AMS", "NIJ"); err != nil {
		t.Fatalf("BookSegment: %v", err)
	}
	seats, err := checker.FindAvailableSeats(ctx, 1, "AMS", "UTR", "")
	if err != nil {
		t.Fatalf("FindAvailableSeats: %v", err)
	}
	if len(seats) != 0 {
		t.Fatalf("fully booked seat must not be offered, got %+v", seats)
	}

	released, err := booking.CancelSegment(ctx, 100, 1, 1)
	if err != nil {
		t.Fatalf("CancelSegment: %v", err)
	}
	if released != 1 {
		t.Errorf("released = %d, want 1", released)
	}

	seats, err = checker.FindAvailableSeats(ctx, 1, "AMS", "UTR", "")
	if err != nil {
		t.Fatalf("FindAvailableSeats after cancel: %v", err)
	}
	if len(seats) != 1 {
		t.Errorf("cancelled seat must be offered again, got %+v", seats)
	}

	// Replaying the cancellation is a no-op, not an error.
	released, err = booking.CancelSegment(ctx, 100, 1, 1)
	if err != nil {
		t.Fatalf("replayed CancelSegment: %v", err)
	}
	if released != 0 {
		t.Errorf("replayed release = %d, want 0", released)
	}
}

func TestQuotePartialAndPricing(t *testing.T) {
	booking, _, _, _, _ := newEngine(1, fourStops,
		economySeat(1),
		model.PhysicalSeat{ID: 2, CoachID: 2, SeatNumber: 1, Class: model.ClassExecutive, Status: model.SeatAvailable},
	)
	ctx := context.Background()

	// Two seats free, three passengers: partial quote.
	q, err := booking.Quote(ctx, 1, "AMS", "NIJ", "", 3)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if !q.Partial {
		t.Errorf("expected partial quote for 3 passengers over 2 seats")
	}
	if len(q.Seats) != 2 {
		t.Fatalf("quoted seats = %d, want 2", len(q.Seats))
	}
	for _, s := range q.Seats {
		want := PriceFor(s.Class, q.BoardingOrder, q.AlightingOrder)
		if s.Price != want {
			t.Errorf("seat %d price = %d, want %d", s.SeatID, s.Price, want)
		}
	}

	// One passenger: the quote is capped, not partial.
	q, err = booking.Quote(ctx, 1, "AMS", "UTR", "", 1)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.Partial || len(q.Seats) != 1 {
		t.Errorf("capped quote: partial=%v seats=%d, want false/1", q.Partial, len(q.Seats))
	}
}

// Full lifecycle over a four-stop run: a segment sale must hide the seat
// from overlapping quotes only, and adjacent ranges stay sellable.
func TestQuoteReflectsSegmentSales(t *testing.T) {
	booking, _, _, _, _ := newEngine(1, fourStops, economySeat(1))
	ctx := context.Background()

	if _, err := booking.BookSegment(ctx, 100, 1, 1, "AMS", "ARN"); err != nil {
		t.Fatalf("BookSegment: %v", err)
	}

	q, err := booking.Quote(ctx, 1, "UTR", "NIJ", "", 1)
	if err != nil {
		t.Fatalf("Quote UTR-NIJ: %v", err)
	}
	if len(q.Seats) != 0 || !q.Partial {
		t.Errorf("overlapping quote must exclude the sold seat, got %+v", q.Seats)
	}

	q, err = booking.Quote(ctx, 1, "ARN", "NIJ", "", 1)
	if err != nil {
		t.Fatalf("Quote ARN-NIJ: %v", err)
	}
	if len(q.Seats) != 1 {
		t.Errorf("adjacent quote must include the seat, got %+v", q.Seats)
	}
}

type recordingPublisher struct {
	mu        sync.Mutex
	booked    []queue.SegmentBookedEvent
	cancelled []queue.SegmentCancelledEvent
}

func (r *recordingPublisher) SegmentBooked(_ context.Context, ev queue.SegmentBookedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.booked = append(r.booked, ev)
	return nil
}

func (r *recordingPublisher) SegmentCancelled(_ context.Context, ev queue.SegmentCancelledEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled = append(r.cancelled, ev)
	return nil
}

func TestBookingEventsArePublished(t *testing.T) {
	routes := &fakeRoutes{stops: map[uint64][]string{1: fourStops}}
	seatStore := newFakeSeats(economySeat(1))
	intervals := newMemIntervals()
	checker := NewAvailabilityChecker(routes, seatStore, intervals)
	reconciler := NewSeatStatusReconciler(routes, seatStore, seatStore, intervals)
	rec := &recordingPublisher{}
	booking := NewSegmentBookingService(checker, seatStore, intervals, reconciler, rec)
	ctx := context.Background()

	if _, err := booking.BookSegment(ctx, 100, 1, 1, "AMS", "UTR"); err != nil {
		t.Fatalf("BookSegment: %v", err)
	}
	if len(rec.booked) != 1 {
		t.Fatalf("booked events = %d, want 1", len(rec.booked))
	}
	ev := rec.booked[0]
	if ev.BookingID != 100 || ev.SeatID != 1 || ev.BoardingCode != "AMS" || ev.Amount != 150_000 {
		t.Errorf("unexpected booked event %+v", ev)
	}

	if _, err := booking.CancelSegment(ctx, 100, 1, 1); err != nil {
		t.Fatalf("CancelSegment: %v", err)
	}
	if len(rec.cancelled) != 1 {
		t.Fatalf("cancelled events = %d, want 1", len(rec.cancelled))
	}
	if rec.cancelled[0].Released != 1 {
		t.Errorf("cancelled event released = %d, want 1", rec.cancelled[0].Released)
	}
}

func TestConcurrentBookingSingleWinner(t *testing.T) {
	booking, _, _, _, _ := newEngine(1, fourStops, economySeat(1))

	const attempts = 16
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(bookingID uint64) {
			defer wg.Done()
			_, err := booking.BookSegment(context.Background(), bookingID, 1, 1, "AMS", "NIJ")
			errs <- err
		}(uint64(200 + i))
	}
	wg.Wait()
	close(errs)

	var won, lost int
	for err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, repository.ErrSeatNoLongerAvailable):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if won != 1 || lost != attempts-1 {
		t.Errorf("winners = %d, losers = %d, want 1/%d", won, lost, attempts-1)
	}
}
