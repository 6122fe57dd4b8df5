package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRateLimitedRouter(rps float64, burst int) *gin.Engine {
	r := gin.New()
	rl := NewRateLimiter(rps, burst)
	r.GET("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	r := newRateLimitedRouter(1, 3)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, expected 200", i+1, w.Code)
		}
	}
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	r := newRateLimitedRouter(0.001, 2)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, expected 200", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, expected 429 after burst exhausted", w.Code)
	}
}

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)

	if !rl.getLimiter("10.0.0.1").Allow() {
		t.Fatal("first request from 10.0.0.1 should pass")
	}
	if rl.getLimiter("10.0.0.1").Allow() {
		t.Error("second request from 10.0.0.1 should be limited")
	}
	if !rl.getLimiter("10.0.0.2").Allow() {
		t.Error("a different IP gets its own bucket")
	}
}
