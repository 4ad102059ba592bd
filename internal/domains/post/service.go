package post

import "context"

// Service is the read-only post feed: paginated listing, detail by slug, and
// the recent window used for the RSS output. No operation mutates anything.
type Service interface {
	// ListPublished returns page `page` (1-based) of published posts,
	// `limit` per page, newest first. Fewer than `limit` results means the
	// caller has reached the last page.
	ListPublished(ctx context.Context, page, limit int) ([]FeedItem, error)

	// GetBySlug returns one published post with its markdown body rendered
	// to HTML.
	GetBySlug(ctx context.Context, slug string) (*Detail, error)

	// Recent returns the newest published posts for the RSS feed.
	Recent(ctx context.Context, limit int) ([]FeedItem, error)
}
