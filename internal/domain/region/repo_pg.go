package region

import (
	"context"
	"errors"

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

const regionCols = `id, name, created_at`

func (r *repoPG) scan(row pgx.Row) (*Region, error) {
	var reg Region
	err := row.Scan(&reg.ID, &reg.Name, &reg.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &reg, err
}

func (r *repoPG) Create(ctx context.Context, reg *Region) error {
	reg.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO region (id, name) VALUES ($1, $2)
		RETURNING created_at`,
		reg.ID, reg.Name).Scan(&reg.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Region, error) {
	return r.scan(r.conn(ctx).QueryRow(ctx, `SELECT `+regionCols+` FROM region WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, reg *Region) error {
	tag, err := r.conn(ctx).Exec(ctx, `UPDATE region SET name = $2 WHERE id = $1`, reg.ID, reg.Name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM region WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Region, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM region`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+regionCols+` FROM region ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Region
	for rows.Next() {
		var reg Region
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &reg)
	}
	return items, total, rows.Err()
}
