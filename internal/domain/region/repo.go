package region

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an operation targets a region that does not exist.
var ErrNotFound = errors.New("region not found")

type Repository interface {
	Create(ctx context.Context, r *Region) error
	GetByID(ctx context.Context, id uuid.UUID) (*Region, error)
	Update(ctx context.Context, r *Region) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Region, int, error)
}
