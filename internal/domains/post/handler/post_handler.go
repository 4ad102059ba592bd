package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogsite-backend/internal/domains/post"
	"blogsite-backend/internal/shared/response"
	"blogsite-backend/pkg/logger"
)

type PostHandler struct {
	service post.Service
	siteURL string
}

func NewPostHandler(service post.Service, siteURL string) *PostHandler {
	return &PostHandler{service: service, siteURL: siteURL}
}

// List handles GET /api/posts?page=&limit=. The response echoes page and
// limit so the infinite-scroll client can detect the last page (fewer than
// `limit` items).
func (h *PostHandler) List(c *gin.Context) {
	page, limit := post.NormalizePage(
		queryInt(c, "page", post.DefaultPage),
		queryInt(c, "limit", post.DefaultLimit),
	)

	posts, err := h.service.ListPublished(c.Request.Context(), page, limit)
	if err != nil {
		logger.Error("List posts failed", err)
		response.InternalServerError(c, "Failed to fetch posts")
		return
	}

	response.OKWith(c, gin.H{
		"data":  posts,
		"page":  page,
		"limit": limit,
	})
}

// GetBySlug handles GET /api/posts/:slug.
func (h *PostHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	detail, err := h.service.GetBySlug(c.Request.Context(), slug)
	if errors.Is(err, post.ErrPostNotFound) {
		response.NotFound(c, "Post not found")
		return
	}
	if err != nil {
		logger.Error("Get post failed", err)
		response.InternalServerError(c, "Failed to fetch post")
		return
	}

	response.OKWith(c, gin.H{"data": detail})
}

func queryInt(c *gin.Context, key string, defaultValue int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return defaultValue
	}
	return value
}
