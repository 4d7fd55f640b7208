package export

import (
	"context"
	"fmt"
	"time"

	"github.com/casetrack/casetrack/internal/platform/db"
)

// Repository builds export views from the case tables.
type Repository struct {
	q db.Querier
}

func NewRepository(q db.Querier) *Repository {
	return &Repository{q: q}
}

// Requests returns the service-request view with the region name resolved.
func (r *Repository) Requests(ctx context.Context) (*View, error) {
	rows, err := r.q.Query(ctx, `
		SELECT s.id, r.name, s.request_type, s.status, s.priority,
		       COALESCE(s.description, ''), s.created_at
		FROM service_request s
		JOIN region r ON r.id = s.region_id
		ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query request export: %w", err)
	}
	defer rows.Close()

	view := &View{
		Columns: []string{"id", "region", "request_type", "status", "priority", "description", "created_at"},
	}
	for rows.Next() {
		var id, regionName, reqType, status, priority, description string
		var createdAt time.Time
		if err := rows.Scan(&id, &regionName, &reqType, &status, &priority, &description, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		view.Rows = append(view.Rows, []string{
			id, regionName, reqType, status, priority, description,
			createdAt.UTC().Format(time.RFC3339),
		})
	}
	return view, rows.Err()
}

// FollowUps returns the follow-up view with the request type and staff name
// resolved.
func (r *Repository) FollowUps(ctx context.Context) (*View, error) {
	rows, err := r.q.Query(ctx, `
		SELECT f.id, s.request_type, st.name, COALESCE(f.notes, ''), f.outcome,
		       f.activity_date, f.created_at
		FROM follow_up f
		JOIN service_request s ON s.id = f.request_id
		JOIN staff st ON st.id = f.staff_id
		ORDER BY f.activity_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query follow-up export: %w", err)
	}
	defer rows.Close()

	view := &View{
		Columns: []string{"id", "request_type", "staff", "notes", "outcome", "activity_date", "created_at"},
	}
	for rows.Next() {
		var id, reqType, staffName, notes, outcome string
		var activityDate, createdAt time.Time
		if err := rows.Scan(&id, &reqType, &staffName, &notes, &outcome, &activityDate, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan follow-up row: %w", err)
		}
		view.Rows = append(view.Rows, []string{
			id, reqType, staffName, notes, outcome,
			activityDate.UTC().Format("2006-01-02"),
			createdAt.UTC().Format(time.RFC3339),
		})
	}
	return view, rows.Err()
}
