package followup

import (
	"time"

	"github.com/google/uuid"
)

// Follow-up outcomes.
const (
	OutcomePending   = "Pending"
	OutcomeCompleted = "Completed"
	OutcomeFailed    = "Failed"
)

// Outcomes lists the accepted follow-up outcomes.
var Outcomes = []string{OutcomePending, OutcomeCompleted, OutcomeFailed}

// ValidOutcome reports whether o is a known outcome.
func ValidOutcome(o string) bool {
	for _, known := range Outcomes {
		if o == known {
			return true
		}
	}
	return false
}

// FollowUp records an action a staff member took on a service request. It is
// append-only: never updated or deleted individually, only removed when its
// parent request is deleted. ActivityDate is caller-settable and may be
// backdated or future-dated. StaffName is populated on joined reads.
type FollowUp struct {
	ID           uuid.UUID `db:"id" json:"id"`
	RequestID    uuid.UUID `db:"request_id" json:"request_id"`
	StaffID      uuid.UUID `db:"staff_id" json:"staff_id"`
	StaffName    string    `db:"staff_name" json:"staff_name,omitempty"`
	Notes        string    `db:"notes" json:"notes"`
	Outcome      string    `db:"outcome" json:"outcome"`
	ActivityDate time.Time `db:"activity_date" json:"activity_date"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
