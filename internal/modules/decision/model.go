package decision

import (
	"time"

	"github.com/google/uuid"
)

// Decision is a single recorded decision. Outcome and Success stay null
// until the owner fills them in after the fact.
type Decision struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Outcome   *string   `json:"outcome"`
	Success   *bool     `json:"success"`
	Category  string    `json:"category"`
	Owner     string    `json:"owner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
