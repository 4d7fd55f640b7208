package followup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Log records a follow-up against a service request. The activity date
// defaults to now but the caller may set any date, past or future.
func (s *Service) Log(ctx context.Context, f *FollowUp) error {
	if f.RequestID == uuid.Nil {
		return fmt.Errorf("request_id is required")
	}
	if f.StaffID == uuid.Nil {
		return fmt.Errorf("staff_id is required")
	}
	if f.Outcome == "" {
		f.Outcome = OutcomePending
	}
	if !ValidOutcome(f.Outcome) {
		return fmt.Errorf("outcome must be one of: %s", strings.Join(Outcomes, ", "))
	}
	if f.ActivityDate.IsZero() {
		f.ActivityDate = time.Now()
	}
	return s.repo.Create(ctx, f)
}

func (s *Service) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*FollowUp, error) {
	return s.repo.ListByRequest(ctx, requestID)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*FollowUp, int, error) {
	return s.repo.List(ctx, limit, offset)
}
