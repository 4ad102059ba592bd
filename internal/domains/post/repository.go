package post

import "context"

// Repository is the read-side contract over the posts table.
type Repository interface {
	// ListPublished returns published posts ordered by created_at descending.
	ListPublished(ctx context.Context, limit, offset int) ([]Post, error)

	// GetPublishedBySlug returns one published post, or ErrPostNotFound.
	GetPublishedBySlug(ctx context.Context, slug string) (*Post, error)
}
