// Package reporting computes the derived metrics shown on the dashboard:
// headline counts, demand grouped by region, and per-staff workload.
package reporting

import (
	"context"
	"math"
	"time"
)

// OverloadThreshold is the follow-up count above which a staff member is
// flagged as overloaded.
const OverloadThreshold = 10

// DefaultStaleWindowDays is how far back a follow-up must exist for an open
// request not to count as stale.
const DefaultStaleWindowDays = 7

// DashboardMetrics holds the headline numbers for the dashboard.
type DashboardMetrics struct {
	TotalRequests         int     `json:"total_requests"`
	OpenCriticalCount     int     `json:"open_critical_count"`
	StaleCaseCount        int     `json:"stale_case_count"`
	ResolutionRatePercent float64 `json:"resolution_rate_percent"`
}

// RegionDemand is the request count for one region. Regions with zero
// requests are included.
type RegionDemand struct {
	Region   string `json:"region"`
	Requests int    `json:"requests"`
}

// StaffWorkload is the follow-up count for one staff member.
type StaffWorkload struct {
	Staff      string `json:"staff"`
	FollowUps  int    `json:"follow_ups"`
	Overloaded bool   `json:"overloaded"`
}

// Repository supplies the raw counts the metrics are derived from.
type Repository interface {
	CountRequests(ctx context.Context) (int, error)
	CountOpenCritical(ctx context.Context) (int, error)
	// CountStale counts non-Closed requests with no follow-up whose
	// activity date falls on or after the cutoff.
	CountStale(ctx context.Context, cutoff time.Time) (int, error)
	FollowUpTotals(ctx context.Context) (completed, total int, err error)
	DemandByRegion(ctx context.Context) ([]RegionDemand, error)
	FollowUpCountsByStaff(ctx context.Context) ([]StaffWorkload, error)
}

type Service struct {
	repo            Repository
	staleWindowDays int
	now             func() time.Time
}

func NewService(repo Repository, staleWindowDays int) *Service {
	if staleWindowDays <= 0 {
		staleWindowDays = DefaultStaleWindowDays
	}
	return &Service{repo: repo, staleWindowDays: staleWindowDays, now: time.Now}
}

// Dashboard computes the headline metrics.
func (s *Service) Dashboard(ctx context.Context) (*DashboardMetrics, error) {
	total, err := s.repo.CountRequests(ctx)
	if err != nil {
		return nil, err
	}
	openCritical, err := s.repo.CountOpenCritical(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := s.now().AddDate(0, 0, -s.staleWindowDays)
	stale, err := s.repo.CountStale(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	completed, followUps, err := s.repo.FollowUpTotals(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardMetrics{
		TotalRequests:         total,
		OpenCriticalCount:     openCritical,
		StaleCaseCount:        stale,
		ResolutionRatePercent: ResolutionRate(completed, followUps),
	}, nil
}

// ResolutionRate returns 100 * completed / total rounded to one decimal
// place, and 0 when there are no follow-ups at all.
func ResolutionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

func (s *Service) DemandByRegion(ctx context.Context) ([]RegionDemand, error) {
	return s.repo.DemandByRegion(ctx)
}

// StaffWorkloads returns follow-up counts per staff member with the overload
// flag applied.
func (s *Service) StaffWorkloads(ctx context.Context) ([]StaffWorkload, error) {
	items, err := s.repo.FollowUpCountsByStaff(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Overloaded = items[i].FollowUps > OverloadThreshold
	}
	return items, nil
}
