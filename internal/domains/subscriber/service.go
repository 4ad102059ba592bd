package subscriber

import "context"

// Service applies subscriber lifecycle transitions. All three operations are
// idempotent from the caller's point of view.
type Service interface {
	Subscribe(ctx context.Context, email string) (*Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	ListActive(ctx context.Context) ([]Subscriber, error)
}
