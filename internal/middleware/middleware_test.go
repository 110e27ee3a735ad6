package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 200 {
		t.Fatalf("code=%d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != 200 || w.Body.String() != "pong" {
		t.Fatalf("code=%d body=%q", w.Code, w.Body.String())
	}
}

type stubErr struct{}

func (stubErr) Error() string { return "boom" }

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) { _ = c.Error(stubErr{}) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestErrorHandler_NoErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) { c.String(204, "") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 204 {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// isolate global state and shrink the limit for the test
	oldClients, oldLimit := clients, limit
	clients = make(map[string]*client)
	limit = 3
	t.Cleanup(func() { clients, limit = oldClients, oldLimit })

	r := gin.New()
	r.Use(RateLimiter())
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != 200 {
			t.Fatalf("request %d: code=%d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("want 429 got %d", w.Code)
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	oldClients, oldLimit, oldWindow := clients, limit, window
	clients = make(map[string]*client)
	limit = 1
	window = 10 * time.Millisecond
	t.Cleanup(func() { clients, limit, window = oldClients, oldLimit, oldWindow })

	r := gin.New()
	r.Use(RateLimiter())
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 200 {
		t.Fatalf("first request: code=%d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: want 429 got %d", w.Code)
	}

	time.Sleep(20 * time.Millisecond)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 200 {
		t.Fatalf("after window reset: code=%d", w.Code)
	}
}
