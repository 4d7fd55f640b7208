package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

const requestCols = `s.id, s.region_id, r.name, s.request_type, s.status, s.priority, s.description, s.created_at`

func (r *repoPG) scan(row pgx.Row) (*ServiceRequest, error) {
	var sr ServiceRequest
	err := row.Scan(&sr.ID, &sr.RegionID, &sr.RegionName, &sr.RequestType,
		&sr.Status, &sr.Priority, &sr.Description, &sr.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &sr, err
}

func (r *repoPG) Create(ctx context.Context, sr *ServiceRequest) error {
	sr.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO service_request (id, region_id, request_type, status, priority, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		sr.ID, sr.RegionID, sr.RequestType, sr.Status, sr.Priority, sr.Description).
		Scan(&sr.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*ServiceRequest, error) {
	return r.scan(r.conn(ctx).QueryRow(ctx, `
		SELECT `+requestCols+`
		FROM service_request s
		JOIN region r ON r.id = s.region_id
		WHERE s.id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, f Filter, limit, offset int) ([]*ServiceRequest, int, error) {
	where := ` WHERE 1=1`
	var args []interface{}
	idx := 1

	if f.Status != "" {
		where += fmt.Sprintf(` AND s.status = $%d`, idx)
		args = append(args, f.Status)
		idx++
	}
	if f.RegionID != uuid.Nil {
		where += fmt.Sprintf(` AND s.region_id = $%d`, idx)
		args = append(args, f.RegionID)
		idx++
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM service_request s`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + requestCols + `
		FROM service_request s
		JOIN region r ON r.id = s.region_id` + where +
		fmt.Sprintf(` ORDER BY s.created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*ServiceRequest
	for rows.Next() {
		var sr ServiceRequest
		if err := rows.Scan(&sr.ID, &sr.RegionID, &sr.RegionName, &sr.RequestType,
			&sr.Status, &sr.Priority, &sr.Description, &sr.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &sr)
	}
	return items, total, rows.Err()
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.conn(ctx).Exec(ctx, `UPDATE service_request SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM service_request WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
