package post

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Post is a blog article. Posts are authored by the publishing side of the
// site; this API only reads them, for the feed, the detail page and the RSS
// output.
type Post struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Image       string    `json:"image"`
	AuthorName  string    `json:"authorName"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
