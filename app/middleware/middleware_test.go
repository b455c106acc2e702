package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shramana263/neighbourlink/app/repositories/mock"
	"github.com/shramana263/neighbourlink/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRecoverer(t *testing.T) {
	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, req)

	assert.Equal(t, http.StatusInternalServerError, rw.Code)
}

func TestContentTypeJSON(t *testing.T) {
	handler := ContentTypeJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/posts", nil)
	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, req)
	assert.Equal(t, "application/json", rw.Header().Get("Content-Type"))

	req = httptest.NewRequest("GET", "/healthz", nil)
	rw = httptest.NewRecorder()
	handler.ServeHTTP(rw, req)
	assert.Empty(t, rw.Header().Get("Content-Type"))
}

func TestRequireAuth(t *testing.T) {
	auth := services.NewAuthService(mock.NewUserRepository(), mock.NewSessionRepository(), time.Hour)
	user, token, err := auth.Register(services.RegisterInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	var gotUserID string
	handler := RequireAuth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = CurrentUser(r).ID
		w.WriteHeader(http.StatusOK)
	}))

	// Missing token.
	req := httptest.NewRequest("GET", "/api/posts", nil)
	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, req)
	assert.Equal(t, http.StatusUnauthorized, rw.Code)

	// Header token.
	req = httptest.NewRequest("GET", "/api/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rw = httptest.NewRecorder()
	handler.ServeHTTP(rw, req)
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Equal(t, user.ID, gotUserID)

	// Query token, as websocket clients send it.
	req = httptest.NewRequest("GET", "/ws?token="+token, nil)
	rw = httptest.NewRecorder()
	handler.ServeHTTP(rw, req)
	assert.Equal(t, http.StatusOK, rw.Code)
}

func TestRateLimit(t *testing.T) {
	rl := NewIPRateLimiter(rate.Limit(1), 1)
	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/api/posts", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, req)
	assert.Equal(t, http.StatusOK, rw.Code)

	rw = httptest.NewRecorder()
	handler.ServeHTTP(rw, req)
	assert.Equal(t, http.StatusTooManyRequests, rw.Code)

	// A different IP has its own bucket.
	other := httptest.NewRequest("POST", "/api/posts", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	rw = httptest.NewRecorder()
	handler.ServeHTTP(rw, other)
	assert.Equal(t, http.StatusOK, rw.Code)
}
