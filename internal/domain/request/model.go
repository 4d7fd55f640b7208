package request

import (
	"time"

	"github.com/google/uuid"
)

// Request statuses. Any status may be set at any time; there is no
// transition graph.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusClosed     = "Closed"
)

// Statuses lists the accepted statuses in lifecycle order.
var Statuses = []string{StatusOpen, StatusInProgress, StatusClosed}

// ValidStatus reports whether s is a known request status.
func ValidStatus(s string) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Request priorities.
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// Priorities lists the accepted priorities from least to most urgent.
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// ValidPriority reports whether p is a known request priority.
func ValidPriority(p string) bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// ServiceRequest is an intake case. RegionName is populated on reads joined
// with the region table and is never written directly.
type ServiceRequest struct {
	ID          uuid.UUID `db:"id" json:"id"`
	RegionID    uuid.UUID `db:"region_id" json:"region_id"`
	RegionName  string    `db:"region_name" json:"region_name,omitempty"`
	RequestType string    `db:"request_type" json:"request_type"`
	Status      string    `db:"status" json:"status"`
	Priority    string    `db:"priority" json:"priority"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
