package staff

import (
	"time"

	"github.com/google/uuid"
)

// Staff roles.
const (
	RoleCaseManager = "Case Manager"
	RoleVolunteer   = "Volunteer"
	RoleAdmin       = "Admin"
	RoleIntern      = "Intern"
)

// Roles lists the accepted staff roles in display order.
var Roles = []string{RoleCaseManager, RoleVolunteer, RoleAdmin, RoleIntern}

// ValidRole reports whether r is a known staff role.
func ValidRole(r string) bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Member is a registered staff member. Follow-ups reference the member who
// logged them.
type Member struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
