package request

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an operation targets a request that does not
// exist. Zero-rows-affected updates and deletes report it explicitly rather
// than silently succeeding.
var ErrNotFound = errors.New("service request not found")

// Filter narrows List results. Zero values mean no filtering.
type Filter struct {
	Status   string
	RegionID uuid.UUID
}

type Repository interface {
	Create(ctx context.Context, sr *ServiceRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceRequest, error)
	List(ctx context.Context, f Filter, limit, offset int) ([]*ServiceRequest, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
