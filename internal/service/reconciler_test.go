package service

import (
	"context"
	"testing"

	"github.com/iliyamo/railway-segment-reservation/internal/model"
)

func TestReconcileMarksSeatBookedWhenNoRangeLeft(t *testing.T) {
	_, _, reconciler, intervals, seatStore := newEngine(1, fourStops, economySeat(1))
	ctx := context.Background()

	// [0, 2) alone still leaves [2, 3) sellable.
	if _, err := intervals.Reserve(ctx, 1, 1, 0, 2, 100); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	status, err := reconciler.Reconcile(ctx, 1, 1)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if status != model.SeatAvailable {
		t.Errorf("status = %q, want AVAILABLE while [2,3) is free", status)
	}

	// Adding [2, 3) consumes the whole route: every pair (i, j) with
	// 0 <= i < j <= 3 now hits one of the two intervals.
	if _, err := intervals.Reserve(ctx, 1, 1, 2, 3, 101); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	status, err = reconciler.Reconcile(ctx, 1, 1)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if status != model.SeatBooked {
		t.Errorf("status = %q, want BOOKED with no free sub-range", status)
	}
	seat, err := seatStore.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if seat.Status != model.SeatBooked {
		t.Errorf("persisted status = %q, want BOOKED", seat.Status)
	}
}

func TestReconcileAfterRelease(t *testing.T) {
	_, _, reconciler, intervals, seatStore := newEngine(1, fourStops, economySeat(1))
	ctx := context.Background()

	if _, err := intervals.Reserve(ctx, 1, 1, 0, 3, 100); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if status, err := reconciler.Reconcile(ctx, 1, 1); err != nil || status != model.SeatBooked {
		t.Fatalf("Reconcile after full-route sale: status=%q err=%v", status, err)
	}

	if _, err := intervals.Release(ctx, 100, 1, 1); err != nil {
		t.Fatalf("Release: %v", err)
	}
	status, err := reconciler.Reconcile(ctx, 1, 1)
	if err != nil {
		t.Fatalf("Reconcile after release: %v", err)
	}
	if status != model.SeatAvailable {
		t.Errorf("status = %q, want AVAILABLE after release", status)
	}
	seat, _ := seatStore.GetByID(ctx, 1)
	if seat.Status != model.SeatAvailable {
		t.Errorf("persisted status = %q, want AVAILABLE", seat.Status)
	}
}

func TestReconcileLeavesBlockedSeatsAlone(t *testing.T) {
	_, _, reconciler, _, seatStore := newEngine(1, fourStops,
		model.PhysicalSeat{ID: 1, CoachID: 1, SeatNumber: 1, Class: model.ClassEconomy, Status: model.SeatBlocked},
	)

	status, err := reconciler.Reconcile(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if status != model.SeatBlocked {
		t.Errorf("status = %q, want BLOCKED", status)
	}
	seat, _ := seatStore.GetByID(context.Background(), 1)
	if seat.Status != model.SeatBlocked {
		t.Errorf("blocked seat status was rewritten to %q", seat.Status)
	}
}

func TestFreeRangeExists(t *testing.T) {
	cases := []struct {
		name      string
		stops     int
		intervals []model.OccupancyInterval
		want      bool
	}{
		{"no intervals", 4, nil, true},
		{"head sold, tail free", 4, []model.OccupancyInterval{{BoardingOrder: 0, AlightingOrder: 2}}, true},
		{"full route sold", 4, []model.OccupancyInterval{
			{BoardingOrder: 0, AlightingOrder: 2},
			{BoardingOrder: 2, AlightingOrder: 3},
		}, false},
		{"single interval covering everything", 4, []model.OccupancyInterval{{BoardingOrder: 0, AlightingOrder: 3}}, false},
		{"two-stop run sold", 2, []model.OccupancyInterval{{BoardingOrder: 0, AlightingOrder: 1}}, false},
		{"two-stop run free", 2, nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := freeRangeExists(tc.stops, tc.intervals); got != tc.want {
				t.Errorf("freeRangeExists(%d, %v) = %v, want %v", tc.stops, tc.intervals, got, tc.want)
			}
		})
	}
}
