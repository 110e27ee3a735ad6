package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sppulse/sppulse/internal/domain/models"
)

func TestNewRouter_RoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&mockSummarySvc{resp: &models.Summary{}}, &mockGainsSvc{})
	r := NewRouter(h)

	// summary route exists
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("summary route: want 200 got %d", w.Code)
	}

	// gains route exists and validates input
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/gains", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("gains route: want 400 got %d", w.Code)
	}

	// request id middleware wired
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}

	// unknown route
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown route: want 404 got %d", w.Code)
	}
}
