package repository // repository defines data access for physical seats

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/railway-segment-reservation/internal/model"
)

// SeatRepo provides methods to work with physical seats. Seats and their
// coach assignments are provisioned by schedule management; the only
// column this service ever writes is the cached status, and only through
// UpdateStatus (called exclusively by the reconciler, never ad hoc from
// booking logic).
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// GetByRun retrieves all seats belonging to coaches assigned to the run,
// ordered by coach code then seat number. When class is non-empty the
// result is restricted to that travel class.
func (r *SeatRepo) GetByRun(ctx context.Context, runID uint64, class string) ([]model.PhysicalSeat, error) {
	q := `SELECT s.id, s.coach_id, s.seat_number, s.class, s.status, s.created_at, s.updated_at
	      FROM seats s
	      JOIN coaches c ON c.id = s.coach_id
	      WHERE c.run_id = ?`
	args := []interface{}{runID}
	if class != "" {
		q += ` AND s.class = ?`
		args = append(args, class)
	}
	q += ` ORDER BY c.code, s.seat_number`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PhysicalSeat
	for rows.Next() {
		var s model.PhysicalSeat
		if err := rows.Scan(
			&s.ID, &s.CoachID, &s.SeatNumber, &s.Class,
			&s.Status, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a seat by its id.
func (r *SeatRepo) GetByID(ctx context.Context, id uint64) (*model.PhysicalSeat, error) {
	const q = `SELECT id, coach_id, seat_number, class, status, created_at, updated_at
	           FROM seats WHERE id = ?`
	var s model.PhysicalSeat
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.CoachID, &s.SeatNumber, &s.Class, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}

// UpdateStatus writes the cached availability status of a seat. BLOCKED
// rows are left untouched: blocking is an operational decision that the
// reconciler must never override.
func (r *SeatRepo) UpdateStatus(ctx context.Context, seatID uint64, status string) error {
	const q = `UPDATE seats
	           SET status = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND status <> ?`
	res, err := r.db.ExecContext(ctx, q, status, seatID, model.SeatBlocked)
	if err != nil {
		return err
	}
	// Zero rows affected is fine here: the seat is blocked, or the
	// status already matches.
	_, _ = res.RowsAffected()
	return nil
}
