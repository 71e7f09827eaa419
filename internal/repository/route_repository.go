package repository // repository defines data access for route stop sequences

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel comparisons

	"github.com/iliyamo/railway-segment-reservation/internal/model"
)

// RouteRepo provides read access to the ordered stop sequence of a
// scheduled run. The route_stops table is written only by schedule
// management; every method here is a plain read and results always
// reflect the table at call time (no caching layer in between).
type RouteRepo struct {
	db *sql.DB
}

// NewRouteRepo constructs a RouteRepo with the given DB handle.
func NewRouteRepo(db *sql.DB) *RouteRepo {
	return &RouteRepo{db: db}
}

// StationOrder resolves a station code to its 0-based route order on the
// given run. Returns ErrStationNotOnRoute when the code does not appear
// in the run's stop sequence.
func (r *RouteRepo) StationOrder(ctx context.Context, runID uint64, stationCode string) (int, error) {
	const q = `SELECT rs.route_order
	           FROM route_stops rs
	           JOIN stations st ON st.id = rs.station_id
	           WHERE rs.run_id = ? AND st.code = ?`
	var order int
	err := r.db.QueryRowContext(ctx, q, runID, stationCode).Scan(&order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrStationNotOnRoute
		}
		return 0, err
	}
	return order, nil
}

// FullSequence retrieves all stops of a run ordered by route_order. The
// station code is joined in so callers can render the sequence without a
// second lookup.
func (r *RouteRepo) FullSequence(ctx context.Context, runID uint64) ([]model.RouteStop, error) {
	const q = `SELECT rs.id, rs.run_id, rs.station_id, st.code, rs.route_order, rs.arrives_at, rs.departs_at
	           FROM route_stops rs
	           JOIN stations st ON st.id = rs.station_id
	           WHERE rs.run_id = ?
	           ORDER BY rs.route_order`
	rows, err := r.db.QueryContext(ctx, q, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.RouteStop
	for rows.Next() {
		var s model.RouteStop
		var arrives, departs sql.NullTime
		if err := rows.Scan(
			&s.ID, &s.RunID, &s.StationID, &s.StationCode, &s.RouteOrder,
			&arrives, &departs,
		); err != nil {
			return nil, err
		}
		if arrives.Valid {
			t := arrives.Time
			s.ArrivesAt = &t
		}
		if departs.Valid {
			t := departs.Time
			s.DepartsAt = &t
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// StopCount returns the number of stops on a run. The reconciler uses
// this to bound its range enumeration.
func (r *RouteRepo) StopCount(ctx context.Context, runID uint64) (int, error) {
	const q = `SELECT COUNT(*) FROM route_stops WHERE run_id = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, runID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
