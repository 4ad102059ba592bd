package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsite-backend/internal/domains/subscriber"
)

type fakeService struct {
	subscribed   []string
	unsubscribed []string
	err          error
}

func (f *fakeService) Subscribe(ctx context.Context, email string) (*subscriber.Subscriber, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.subscribed = append(f.subscribed, email)
	return &subscriber.Subscriber{Email: email, Status: subscriber.StatusActive}, nil
}

func (f *fakeService) Unsubscribe(ctx context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	f.unsubscribed = append(f.unsubscribed, email)
	return nil
}

func (f *fakeService) ListActive(ctx context.Context) ([]subscriber.Subscriber, error) {
	return nil, nil
}

func setupRouter(svc subscriber.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSubscriberHandler(svc)

	r := gin.New()
	r.POST("/api/subscribe", h.Subscribe)
	r.POST("/api/unsubscribe", h.Unsubscribe)
	return r
}

func doPost(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestSubscribe_Success(t *testing.T) {
	svc := &fakeService{}
	r := setupRouter(svc)

	w, body := doPost(t, r, "/api/subscribe", `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["code"])
	assert.Contains(t, body["message"], "Successfully subscribed")
	assert.Equal(t, []string{"a@x.com"}, svc.subscribed)
}

func TestSubscribe_MissingEmail(t *testing.T) {
	svc := &fakeService{}
	r := setupRouter(svc)

	w, body := doPost(t, r, "/api/subscribe", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(1), body["code"])
	assert.Contains(t, body["message"], "Email is required")
	assert.Empty(t, svc.subscribed, "validation failures never reach the store")
}

func TestSubscribe_MalformedBody(t *testing.T) {
	r := setupRouter(&fakeService{})

	w, body := doPost(t, r, "/api/subscribe", `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(1), body["code"])
}

func TestSubscribe_InvalidEmailFormat(t *testing.T) {
	svc := &fakeService{}
	r := setupRouter(svc)

	w, body := doPost(t, r, "/api/subscribe", `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["message"], "Invalid email format")
	assert.Empty(t, svc.subscribed)
}

func TestSubscribe_StorageFailure(t *testing.T) {
	svc := &fakeService{err: errors.New("connection refused")}
	r := setupRouter(svc)

	w, body := doPost(t, r, "/api/subscribe", `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, float64(1), body["code"])
	// The caller gets a generic message; the detail stays in the logs.
	assert.NotContains(t, body["message"], "connection refused")
}

func TestUnsubscribe_Success(t *testing.T) {
	svc := &fakeService{}
	r := setupRouter(svc)

	w, body := doPost(t, r, "/api/unsubscribe", `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["code"])
	assert.Contains(t, body["message"], "Successfully unsubscribed")
	assert.Equal(t, []string{"a@x.com"}, svc.unsubscribed)
}

func TestUnsubscribe_UnknownEmailLooksIdentical(t *testing.T) {
	// The handler cannot tell a known email apart from an unknown one; both
	// produce the same success envelope, so the endpoint leaks nothing.
	svc := &fakeService{}
	r := setupRouter(svc)

	_, known := doPost(t, r, "/api/unsubscribe", `{"email":"a@x.com"}`)
	_, unknown := doPost(t, r, "/api/unsubscribe", `{"email":"nobody@x.com"}`)

	assert.Equal(t, known["code"], unknown["code"])
	assert.Equal(t, known["message"], unknown["message"])
}

func TestUnsubscribe_MissingEmail(t *testing.T) {
	r := setupRouter(&fakeService{})

	w, body := doPost(t, r, "/api/unsubscribe", `{"email":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(1), body["code"])
}
