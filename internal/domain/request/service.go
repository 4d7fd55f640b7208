package request

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/casetrack/casetrack/internal/domain/region"
	"github.com/casetrack/casetrack/internal/platform/db"
)

// ErrUnknownRegion is returned when intake references a region that does not
// resolve to a known identity.
var ErrUnknownRegion = errors.New("unknown region")

// RegionDirectory resolves region identities at intake time. Satisfied by
// region.Repository.
type RegionDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*region.Region, error)
}

// FollowUpPurger removes all follow-ups for a request. Satisfied by the
// follow-up repository; used by the cascade delete.
type FollowUpPurger interface {
	DeleteByRequest(ctx context.Context, requestID uuid.UUID) (int64, error)
}

type Service struct {
	repo      Repository
	regions   RegionDirectory
	followups FollowUpPurger
	tx        db.Transactor
}

func NewService(repo Repository, regions RegionDirectory, followups FollowUpPurger, tx db.Transactor) *Service {
	return &Service{repo: repo, regions: regions, followups: followups, tx: tx}
}

// Create records a new service request. Status is always initialized to Open
// regardless of what the caller supplies, and the region must exist.
func (s *Service) Create(ctx context.Context, sr *ServiceRequest) error {
	sr.RequestType = strings.TrimSpace(sr.RequestType)
	if sr.RequestType == "" {
		return fmt.Errorf("request_type is required")
	}
	if sr.RegionID == uuid.Nil {
		return fmt.Errorf("region_id is required")
	}
	if sr.Priority == "" {
		sr.Priority = PriorityMedium
	}
	if !ValidPriority(sr.Priority) {
		return fmt.Errorf("priority must be one of: %s", strings.Join(Priorities, ", "))
	}

	reg, err := s.regions.GetByID(ctx, sr.RegionID)
	if err != nil {
		if errors.Is(err, region.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownRegion, sr.RegionID)
		}
		return fmt.Errorf("resolve region: %w", err)
	}

	sr.Status = StatusOpen
	if err := s.repo.Create(ctx, sr); err != nil {
		return err
	}
	sr.RegionName = reg.Name
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ServiceRequest, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns service requests joined with their region name, newest first.
func (s *Service) List(ctx context.Context, f Filter, limit, offset int) ([]*ServiceRequest, int, error) {
	if f.Status != "" && !ValidStatus(f.Status) {
		return nil, 0, fmt.Errorf("status must be one of: %s", strings.Join(Statuses, ", "))
	}
	return s.repo.List(ctx, f, limit, offset)
}

// UpdateStatus sets the request's status. Any known status is accepted at any
// time. Updating a nonexistent request returns ErrNotFound.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !ValidStatus(status) {
		return fmt.Errorf("status must be one of: %s", strings.Join(Statuses, ", "))
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Delete removes a request and all of its follow-ups in a single transaction,
// child rows first so the foreign key holds throughout.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.followups.DeleteByRequest(ctx, id); err != nil {
			return fmt.Errorf("delete follow-ups: %w", err)
		}
		return s.repo.Delete(ctx, id)
	})
}
