package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsite-backend/internal/domains/post"
)

type fakeService struct {
	items    []post.FeedItem
	detail   *post.Detail
	err      error
	gotPage  int
	gotLimit int
}

func (f *fakeService) ListPublished(ctx context.Context, page, limit int) ([]post.FeedItem, error) {
	f.gotPage = page
	f.gotLimit = limit
	return f.items, f.err
}

func (f *fakeService) GetBySlug(ctx context.Context, slug string) (*post.Detail, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.detail == nil || f.detail.Slug != slug {
		return nil, post.ErrPostNotFound
	}
	return f.detail, nil
}

func (f *fakeService) Recent(ctx context.Context, limit int) ([]post.FeedItem, error) {
	return f.items, f.err
}

func setupRouter(svc post.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPostHandler(svc, "https://blog.example.com")

	r := gin.New()
	r.GET("/api/posts", h.List)
	r.GET("/api/posts/:slug", h.GetBySlug)
	r.GET("/feed.xml", h.Feed)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func feedItems(n int) []post.FeedItem {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	items := make([]post.FeedItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, post.FeedItem{
			ID:         uuid.New(),
			Slug:       fmt.Sprintf("post-%d", i),
			Title:      fmt.Sprintf("Post %d", i),
			AuthorName: "Ann",
			CreatedAt:  base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return items
}

func TestListPosts_EchoesPageAndLimit(t *testing.T) {
	svc := &fakeService{items: feedItems(3)}
	r := setupRouter(svc)

	w := doGet(t, r, "/api/posts?page=2&limit=5")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, float64(0), body["code"])
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(5), body["limit"])
	assert.Len(t, body["data"], 3)
	assert.Equal(t, 2, svc.gotPage)
	assert.Equal(t, 5, svc.gotLimit)
}

func TestListPosts_DefaultsAndClamping(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  float64
		wantLimit float64
	}{
		{name: "no params", query: "", wantPage: 1, wantLimit: 10},
		{name: "garbage params", query: "?page=abc&limit=xyz", wantPage: 1, wantLimit: 10},
		{name: "limit above ceiling", query: "?page=1&limit=9999", wantPage: 1, wantLimit: 100},
		{name: "zero page", query: "?page=0&limit=10", wantPage: 1, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			r := setupRouter(svc)

			w := doGet(t, r, "/api/posts"+tt.query)

			require.Equal(t, http.StatusOK, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			// The echoed values match what was actually queried, so the
			// infinite-scroll client can compare len(data) against them.
			assert.Equal(t, tt.wantPage, body["page"])
			assert.Equal(t, tt.wantLimit, body["limit"])
		})
	}
}

func TestGetPostBySlug_Found(t *testing.T) {
	detail := &post.Detail{
		FeedItem:    post.FeedItem{ID: uuid.New(), Slug: "hello-world", Title: "Hello World"},
		Content:     "# Hello",
		ContentHTML: "<h1>Hello</h1>",
	}
	r := setupRouter(&fakeService{detail: detail})

	w := doGet(t, r, "/api/posts/hello-world")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "hello-world", data["slug"])
	assert.Equal(t, "<h1>Hello</h1>", data["contentHtml"])
}

func TestGetPostBySlug_NotFound(t *testing.T) {
	r := setupRouter(&fakeService{})

	w := doGet(t, r, "/api/posts/missing")

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["code"])
}

func TestFeed_WritesRSS(t *testing.T) {
	r := setupRouter(&fakeService{items: feedItems(2)})

	w := doGet(t, r, "/feed.xml")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<rss")
	assert.Contains(t, w.Body.String(), "Post 0")
	assert.Contains(t, w.Body.String(), "https://blog.example.com/posts/post-0")
}
