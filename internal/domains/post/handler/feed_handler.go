package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"

	"blogsite-backend/pkg/logger"
)

// Feed handles GET /feed.xml with the 20 most recent published posts.
func (h *PostHandler) Feed(c *gin.Context) {
	posts, err := h.service.Recent(c.Request.Context(), 20)
	if err != nil {
		logger.Error("RSS feed failed", err)
		c.String(http.StatusInternalServerError, "Failed to generate RSS")
		return
	}

	feed := &feeds.Feed{
		Title:       "Blog",
		Link:        &feeds.Link{Href: h.siteURL},
		Description: "Latest posts",
		Created:     time.Now(),
	}

	for _, p := range posts {
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       p.Title,
			Link:        &feeds.Link{Href: h.siteURL + "/posts/" + p.Slug},
			Description: p.Description,
			Author:      &feeds.Author{Name: p.AuthorName},
			Created:     p.CreatedAt,
		})
	}

	c.Header("Content-Type", "application/xml")
	if err := feed.WriteRss(c.Writer); err != nil {
		logger.Error("RSS write failed", err)
	}
}
