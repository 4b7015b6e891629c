package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter_AllowsUpToCapacity(t *testing.T) {

	limiter := NewRateLimiter(3, time.Minute)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	if limiter.Allow("10.0.0.1") {
		t.Errorf("request over capacity should be rejected")
	}
}

func TestRateLimiter_TracksClientsIndependently(t *testing.T) {

	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	if !limiter.Allow("10.0.0.1") {
		t.Fatalf("first client should be allowed")
	}

	if !limiter.Allow("10.0.0.2") {
		t.Errorf("second client should have its own bucket")
	}

	if limiter.Allow("10.0.0.1") {
		t.Errorf("first client should be exhausted")
	}
}

func TestRateLimiter_RefillsAfterWindow(t *testing.T) {

	limiter := NewRateLimiter(1, 20*time.Millisecond)
	defer limiter.Stop()

	if !limiter.Allow("10.0.0.1") {
		t.Fatalf("first request should be allowed")
	}

	if limiter.Allow("10.0.0.1") {
		t.Fatalf("second request should be rejected")
	}

	time.Sleep(30 * time.Millisecond)

	if !limiter.Allow("10.0.0.1") {
		t.Errorf("request after the refill window should be allowed")
	}
}

func TestRateLimitMiddleware_RejectsOverLimit(t *testing.T) {

	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(limiter, next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bond-deposit", nil)
	req.RemoteAddr = "10.0.0.1:54321"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}
