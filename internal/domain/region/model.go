package region

import (
	"time"

	"github.com/google/uuid"
)

// Region is a static reference entity maintained by administrators. Service
// requests point at exactly one region.
type Region struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
