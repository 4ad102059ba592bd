package post

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// Upper bound on the page size to keep the worst-case query cost sane.
	MaxLimit = 100
)

// NormalizePage clamps caller-supplied pagination: page and limit floor at
// their defaults, limit is capped so a single request cannot scan the whole
// table.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// FeedItem is the listing shape: everything on the card, minus the full
// markdown body.
type FeedItem struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	AuthorName  string    `json:"authorName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Detail is the single-post shape, with the markdown body rendered to HTML.
type Detail struct {
	FeedItem
	Content     string `json:"content"`
	ContentHTML string `json:"contentHtml"`
}

func toFeedItem(p Post) FeedItem {
	return FeedItem{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		AuthorName:  p.AuthorName,
		CreatedAt:   p.CreatedAt,
	}
}

// ToFeedItems maps posts to their listing shape.
func ToFeedItems(posts []Post) []FeedItem {
	items := make([]FeedItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, toFeedItem(p))
	}
	return items
}

// ToDetail maps a post plus its rendered body to the detail shape.
func ToDetail(p Post, contentHTML string) Detail {
	return Detail{
		FeedItem:    toFeedItem(p),
		Content:     p.Content,
		ContentHTML: contentHTML,
	}
}
