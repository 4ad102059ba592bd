package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"blogsite-backend/internal/domains/post"
	"blogsite-backend/pkg/cache"
	"blogsite-backend/pkg/logger"
)

type postService struct {
	repo     post.Repository
	cache    cache.Cache
	cacheTTL time.Duration
	markdown goldmark.Markdown
}

func NewPostService(repo post.Repository, c cache.Cache, cacheTTL time.Duration) post.Service {
	return &postService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
	}
}

// ListPublished serves one feed page, newest first. Pages are cached briefly
// in Redis; a cache failure degrades to the database and is only logged.
func (s *postService) ListPublished(ctx context.Context, page, limit int) ([]post.FeedItem, error) {
	page, limit = post.NormalizePage(page, limit)

	key := fmt.Sprintf("posts:feed:p%d:l%d", page, limit)

	var cached []post.FeedItem
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Feed cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
	if found {
		return cached, nil
	}

	posts, err := s.repo.ListPublished(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list published: %w", err)
	}

	items := post.ToFeedItems(posts)

	if err := s.cache.Set(ctx, key, items, s.cacheTTL); err != nil {
		logger.Warn("Feed cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}

	return items, nil
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*post.Detail, error) {
	p, err := s.repo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(p.Content), &buf); err != nil {
		return nil, fmt.Errorf("render post %q: %w", slug, err)
	}

	detail := post.ToDetail(*p, buf.String())
	return &detail, nil
}

func (s *postService) Recent(ctx context.Context, limit int) ([]post.FeedItem, error) {
	return s.ListPublished(ctx, 1, limit)
}
