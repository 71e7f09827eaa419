package repository // repository provides read access to scheduled runs

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/railway-segment-reservation/internal/model"
)

// RunRepo reads scheduled runs. Runs are created and transitioned by the
// schedule-planning system; the reservation engine only verifies their
// existence and status before quoting or booking.
type RunRepo struct {
	db *sql.DB
}

// NewRunRepo constructs a RunRepo with the given DB handle.
func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

// DB exposes the underlying handle so callers can open transactions that
// span multiple repositories.
func (r *RunRepo) DB() *sql.DB { return r.db }

// GetByID retrieves a run by its id. Returns ErrRunNotFound when no such
// run exists.
func (r *RunRepo) GetByID(ctx context.Context, id uint64) (*model.ScheduledRun, error) {
	const q = `SELECT id, train_id, travel_date, status, created_at, updated_at
	           FROM scheduled_runs WHERE id = ?`
	var run model.ScheduledRun
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&run.ID, &run.TrainID, &run.TravelDate, &run.Status, &run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}
	return &run, nil
}
