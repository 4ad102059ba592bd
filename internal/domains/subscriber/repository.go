package subscriber

import "context"

// Repository is the persistence contract for subscriber records.
type Repository interface {
	// Upsert creates or reactivates the record for email in a single atomic
	// statement and returns the resulting row:
	//   - unseen email: new row, status active, created_at = updated_at = now
	//   - existing unsubscribed row: status flips to active, updated_at = now,
	//     id/email/created_at untouched
	//   - existing active row: returned unchanged, updated_at not bumped
	Upsert(ctx context.Context, email string) (*Subscriber, error)

	// Unsubscribe marks the record for email as unsubscribed. An unknown or
	// already-unsubscribed email is a silent no-op.
	Unsubscribe(ctx context.Context, email string) error

	// ListActive returns every record with status active, in no particular
	// order.
	ListActive(ctx context.Context) ([]Subscriber, error)
}
