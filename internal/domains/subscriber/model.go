package subscriber

import (
	"time"

	"github.com/google/uuid"
)

// Status is the subscriber lifecycle state. There is no deletion path:
// unsubscribing is a soft state change, never a row removal.
type Status string

const (
	StatusActive       Status = "active"
	StatusUnsubscribed Status = "unsubscribed"
)

// Subscriber is one newsletter recipient, keyed by email. Exactly one row
// exists per distinct email (unique constraint in the store); ID and
// CreatedAt are assigned once at first subscription and never change,
// including across unsubscribe/resubscribe cycles.
type Subscriber struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Subscriber) IsActive() bool {
	return s.Status == StatusActive
}
