package followup

import (
	"context"

	"github.com/google/uuid"
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

const followUpCols = `f.id, f.request_id, f.staff_id, s.name, f.notes, f.outcome, f.activity_date, f.created_at`

func (r *repoPG) Create(ctx context.Context, f *FollowUp) error {
	f.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO follow_up (id, request_id, staff_id, notes, outcome, activity_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		f.ID, f.RequestID, f.StaffID, f.Notes, f.Outcome, f.ActivityDate).
		Scan(&f.CreatedAt)
}

func (r *repoPG) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*FollowUp, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+followUpCols+`
		FROM follow_up f
		JOIN staff s ON s.id = f.staff_id
		WHERE f.request_id = $1
		ORDER BY f.activity_date DESC`, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*FollowUp
	for rows.Next() {
		var f FollowUp
		if err := rows.Scan(&f.ID, &f.RequestID, &f.StaffID, &f.StaffName,
			&f.Notes, &f.Outcome, &f.ActivityDate, &f.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &f)
	}
	return items, rows.Err()
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*FollowUp, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM follow_up`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+followUpCols+`
		FROM follow_up f
		JOIN staff s ON s.id = f.staff_id
		ORDER BY f.activity_date DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*FollowUp
	for rows.Next() {
		var f FollowUp
		if err := rows.Scan(&f.ID, &f.RequestID, &f.StaffID, &f.StaffName,
			&f.Notes, &f.Outcome, &f.ActivityDate, &f.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &f)
	}
	return items, total, rows.Err()
}

func (r *repoPG) DeleteByRequest(ctx context.Context, requestID uuid.UUID) (int64, error) {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM follow_up WHERE request_id = $1`, requestID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
