package followup

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, f *FollowUp) error
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*FollowUp, error)
	List(ctx context.Context, limit, offset int) ([]*FollowUp, int, error)
	// DeleteByRequest removes every follow-up for a request and returns the
	// number of rows removed. Used by the request cascade delete.
	DeleteByRequest(ctx context.Context, requestID uuid.UUID) (int64, error)
}
