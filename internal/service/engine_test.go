package service

// In-memory implementations of the engine's storage interfaces. They
// stand in for the MySQL repositories so the booking flow, availability
// filtering and reconciliation can be exercised without a database. The
// interval store guards its check-and-insert with a mutex, matching the
// atomicity contract of the real store.

import (
	"context"
	"sync"

	"github.com/iliyamo/railway-segment-reservation/internal/model"
	"github.com/iliyamo/railway-segment-reservation/internal/repository"
)

type fakeRoutes struct {
	stops map[uint64][]string // runID -> station codes in route order
}

func (f *fakeRoutes) StationOrder(_ context.Context, runID uint64, code string) (int, error) {
	for i, c := range f.stops[runID] {
		if c == code {
			return i, nil
		}
	}
	return 0, repository.ErrStationNotOnRoute
}

func (f *fakeRoutes) FullSequence(_ context.Context, runID uint64) ([]model.RouteStop, error) {
	var seq []model.RouteStop
	for i, c := range f.stops[runID] {
		seq = append(seq, model.RouteStop{RunID: runID, StationCode: c, RouteOrder: i})
	}
	return seq, nil
}

func (f *fakeRoutes) StopCount(_ context.Context, runID uint64) (int, error) {
	return len(f.stops[runID]), nil
}

type fakeSeats struct {
	mu    sync.Mutex
	seats map[uint64]*model.PhysicalSeat
	order []uint64 // deterministic enumeration order
}

func newFakeSeats(seats ...model.PhysicalSeat) *fakeSeats {
	f := &fakeSeats{seats: make(map[uint64]*model.PhysicalSeat)}
	for i := range seats {
		s := seats[i]
		f.seats[s.ID] = &s
		f.order = append(f.order, s.ID)
	}
	return f
}

func (f *fakeSeats) GetByRun(_ context.Context, _ uint64, class string) ([]model.PhysicalSeat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.PhysicalSeat
	for _, id := range f.order {
		s := f.seats[id]
		if class != "" && s.Class != class {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSeats) GetByID(_ context.Context, id uint64) (*model.PhysicalSeat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.seats[id]
	if !ok {
		return nil, repository.ErrSeatNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSeats) UpdateStatus(_ context.Context, id uint64, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.seats[id]; ok && s.Status != model.SeatBlocked {
		s.Status = status
	}
	return nil
}

type seatRunKey struct {
	seatID uint64
	runID  uint64
}

type memIntervals struct {
	mu     sync.Mutex
	nextID uint64
	data   map[seatRunKey][]model.OccupancyInterval
}

func newMemIntervals() *memIntervals {
	return &memIntervals{data: make(map[seatRunKey][]model.OccupancyInterval)}
}

func (m *memIntervals) isFreeLocked(k seatRunKey, start, end int) bool {
	for _, iv := range m.data[k] {
		if iv.Covers(start, end) {
			return false
		}
	}
	return true
}

func (m *memIntervals) IsRangeFree(_ context.Context, seatID, runID uint64, start, end int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isFreeLocked(seatRunKey{seatID, runID}, start, end), nil
}

func (m *memIntervals) Reserve(_ context.Context, seatID, runID uint64, start, end int, bookingID uint64) (*model.OccupancyInterval, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := seatRunKey{seatID, runID}
	if !m.isFreeLocked(k, start, end) {
		return nil, repository.ErrSeatNoLongerAvailable
	}
	m.nextID++
	iv := model.OccupancyInterval{
		ID:             m.nextID,
		SeatID:         seatID,
		RunID:          runID,
		BoardingOrder:  start,
		AlightingOrder: end,
		BookingID:      bookingID,
	}
	m.data[k] = append(m.data[k], iv)
	return &iv, nil
}

func (m *memIntervals) Release(_ context.Context, bookingID, seatID, runID uint64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := seatRunKey{seatID, runID}
	var kept []model.OccupancyInterval
	var released int64
	for _, iv := range m.data[k] {
		if iv.BookingID == bookingID {
			released++
			continue
		}
		kept = append(kept, iv)
	}
	m.data[k] = kept
	return released, nil
}

func (m *memIntervals) IntervalsForSeat(_ context.Context, seatID, runID uint64) ([]model.OccupancyInterval, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.OccupancyInterval, len(m.data[seatRunKey{seatID, runID}]))
	copy(out, m.data[seatRunKey{seatID, runID}])
	return out, nil
}

// newEngine builds a fully wired engine over the fakes: a run with the
// given stop codes and seats, no event publisher.
func newEngine(runID uint64, stops []string, seats ...model.PhysicalSeat) (*SegmentBookingService, *AvailabilityChecker, *SeatStatusReconciler, *memIntervals, *fakeSeats) {
	routes := &fakeRoutes{stops: map[uint64][]string{runID: stops}}
	seatStore := newFakeSeats(seats...)
	intervals := newMemIntervals()
	checker := NewAvailabilityChecker(routes, seatStore, intervals)
	reconciler := NewSeatStatusReconciler(routes, seatStore, seatStore, intervals)
	booking := NewSegmentBookingService(checker, seatStore, intervals, reconciler, nil)
	return booking, checker, reconciler, intervals, seatStore
}
