package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/railway-segment-reservation/internal/database"
	"github.com/iliyamo/railway-segment-reservation/internal/model"
)

// OccupancyRepo is the interval occupancy store: it records, per physical
// seat per scheduled run, which station-index ranges are already sold.
// Intervals are the source of truth for availability; the cached seat
// status is derived from them by the reconciler.
//
// Reserve is the only write path for new intervals and runs as a single
// transaction that locks the seat's existing intervals before the overlap
// re-check and insert. Two concurrent reserves for the same seat and run
// therefore serialize on the row locks and the loser gets
// ErrSeatNoLongerAvailable instead of a double sale.
type OccupancyRepo struct {
	db *sql.DB
}

// NewOccupancyRepo returns a new OccupancyRepo bound to the provided database.
func NewOccupancyRepo(db *sql.DB) *OccupancyRepo { return &OccupancyRepo{db: db} }

// overlapCond is the half-open interval overlap test [a,b) vs [c,d):
// a < d AND c < b. Adjacent intervals (alight at C, board at C) do not
// match.
const overlapCond = `boarding_order < ? AND ? < alighting_order`

// IsRangeFree reports whether no existing interval for this seat and run
// overlaps the half-open range [startOrder, endOrder).
func (r *OccupancyRepo) IsRangeFree(ctx context.Context, seatID, runID uint64, startOrder, endOrder int) (bool, error) {
	if startOrder >= endOrder {
		return false, fmt.Errorf("occupancy: invalid range [%d,%d)", startOrder, endOrder)
	}
	const q = `SELECT COUNT(*) FROM occupancy_intervals
	           WHERE seat_id = ? AND run_id = ? AND ` + overlapCond
	var n int
	if err := r.db.QueryRowContext(ctx, q, seatID, runID, endOrder, startOrder).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

// Reserve inserts a new occupancy interval for the seat, run and range,
// owned by the given booking. The overlap re-check and the insert happen
// inside one transaction: existing intervals of the seat+run are read
// FOR UPDATE, so a concurrent Reserve on the same seat blocks until this
// one commits and then sees the new interval. Returns
// ErrSeatNoLongerAvailable when the range is already taken.
func (r *OccupancyRepo) Reserve(ctx context.Context, seatID, runID uint64, startOrder, endOrder int, bookingID uint64) (*model.OccupancyInterval, error) {
	if startOrder >= endOrder {
		return nil, fmt.Errorf("occupancy: invalid range [%d,%d)", startOrder, endOrder)
	}
	var iv *model.OccupancyInterval
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		const lockQ = `SELECT COUNT(*) FROM occupancy_intervals
		               WHERE seat_id = ? AND run_id = ? AND ` + overlapCond + `
		               FOR UPDATE`
		var conflicts int
		if err := tx.QueryRowContext(ctx, lockQ, seatID, runID, endOrder, startOrder).Scan(&conflicts); err != nil {
			return err
		}
		if conflicts > 0 {
			return ErrSeatNoLongerAvailable
		}

		const ins = `INSERT INTO occupancy_intervals (seat_id, run_id, boarding_order, alighting_order, booking_id)
		             VALUES (?, ?, ?, ?, ?)`
		res, err := tx.ExecContext(ctx, ins, seatID, runID, startOrder, endOrder, bookingID)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		iv = &model.OccupancyInterval{
			ID:             uint64(id),
			SeatID:         seatID,
			RunID:          runID,
			BoardingOrder:  startOrder,
			AlightingOrder: endOrder,
			BookingID:      bookingID,
		}
		const sel = `SELECT created_at FROM occupancy_intervals WHERE id = ?`
		return tx.QueryRowContext(ctx, sel, iv.ID).Scan(&iv.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return iv, nil
}

// Release deletes all intervals owned by the booking for this seat and
// run and returns how many were removed. Releasing a combination with no
// matching interval is not an error; cancellation is idempotent.
func (r *OccupancyRepo) Release(ctx context.Context, bookingID, seatID, runID uint64) (int64, error) {
	const q = `DELETE FROM occupancy_intervals
	           WHERE booking_id = ? AND seat_id = ? AND run_id = ?`
	res, err := r.db.ExecContext(ctx, q, bookingID, seatID, runID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

// IntervalsForSeat retrieves every interval recorded for the seat on the
// run, ordered by boarding order. The reconciler loads these once and
// evaluates all candidate ranges in memory instead of issuing one overlap
// query per range.
func (r *OccupancyRepo) IntervalsForSeat(ctx context.Context, seatID, runID uint64) ([]model.OccupancyInterval, error) {
	const q = `SELECT id, seat_id, run_id, boarding_order, alighting_order, booking_id, created_at
	           FROM occupancy_intervals
	           WHERE seat_id = ? AND run_id = ?
	           ORDER BY boarding_order`
	rows, err := r.db.QueryContext(ctx, q, seatID, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OccupancyInterval
	for rows.Next() {
		var iv model.OccupancyInterval
		if err := rows.Scan(
			&iv.ID, &iv.SeatID, &iv.RunID, &iv.BoardingOrder,
			&iv.AlightingOrder, &iv.BookingID, &iv.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
