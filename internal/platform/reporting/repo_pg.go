package reporting

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casetrack/casetrack/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) db.Querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) CountRequests(ctx context.Context) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM service_request`).Scan(&n)
	return n, err
}

func (r *repoPG) CountOpenCritical(ctx context.Context) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM service_request
		WHERE status <> 'Closed' AND priority = 'Critical'`).Scan(&n)
	return n, err
}

func (r *repoPG) CountStale(ctx context.Context, cutoff time.Time) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM service_request s
		WHERE s.status <> 'Closed'
		AND NOT EXISTS (
			SELECT 1 FROM follow_up f
			WHERE f.request_id = s.id AND f.activity_date >= $1
		)`, cutoff).Scan(&n)
	return n, err
}

func (r *repoPG) FollowUpTotals(ctx context.Context) (int, int, error) {
	var completed, total int
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE outcome = 'Completed'), COUNT(*)
		FROM follow_up`).Scan(&completed, &total)
	return completed, total, err
}

func (r *repoPG) DemandByRegion(ctx context.Context) ([]RegionDemand, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT r.name, COUNT(s.id)
		FROM region r
		LEFT JOIN service_request s ON s.region_id = r.id
		GROUP BY r.name
		ORDER BY COUNT(s.id) DESC, r.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RegionDemand
	for rows.Next() {
		var d RegionDemand
		if err := rows.Scan(&d.Region, &d.Requests); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *repoPG) FollowUpCountsByStaff(ctx context.Context) ([]StaffWorkload, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT st.name, COUNT(f.id)
		FROM staff st
		LEFT JOIN follow_up f ON f.staff_id = st.id
		GROUP BY st.name
		ORDER BY COUNT(f.id) DESC, st.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []StaffWorkload
	for rows.Next() {
		var w StaffWorkload
		if err := rows.Scan(&w.Staff, &w.FollowUps); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}
