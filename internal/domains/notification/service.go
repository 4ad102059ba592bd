package notification

import "context"

// Service broadcasts a new-post notification to every active subscriber.
//
// Delivery is best-effort and at-most-once: dispatches run concurrently, a
// failed recipient never aborts the others, and no retry is attempted. The
// returned Summary is the only record of the outcome.
type Service interface {
	NotifyNewPost(ctx context.Context, req NotifyRequest) (Summary, error)
}
