package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/tracking_backend/config"
	"github.com/mmdatafocus/tracking_backend/fixtures"
	"github.com/mmdatafocus/tracking_backend/middlewares"
	"github.com/mmdatafocus/tracking_backend/store"
	"github.com/mmdatafocus/tracking_backend/tracking"
)

func newTestServer(t *testing.T, settings config.Settings) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := tracking.NewService(store.New(), fixtures.NewGenerator(1, fixtures.DefaultBaseDate), 100)
	if _, err := svc.Regenerate(context.Background(), 3); err != nil {
		t.Fatal(err)
	}
	return newRouter(settings, svc, config.GetLogger())
}

func TestRouter_NotFound(t *testing.T) {
	h := newTestServer(t, config.Settings{})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w.Body.String() != `{"error":"route not found"}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestRouter_CorrelationId(t *testing.T) {
	h := newTestServer(t, config.Settings{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middlewares.CorrelationHeader, "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get(middlewares.CorrelationHeader); got != "abc-123" {
		t.Fatalf("expected correlation id to be echoed, got %q", got)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(middlewares.CorrelationHeader) == "" {
		t.Fatalf("expected a generated correlation id")
	}
}

func TestRouter_CorsAllowsAnyOriginOutsideProduction(t *testing.T) {
	h := newTestServer(t, config.Settings{})
	req := httptest.NewRequest(http.MethodGet, "/get_data", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}

func TestRouter_CorsAllowlistInProduction(t *testing.T) {
	h := newTestServer(t, config.Settings{Production: true, AllowedOrigins: []string{"https://app.example.com"}})

	req := httptest.NewRequest(http.MethodGet, "/get_data", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("expected allowlisted origin, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/get_data", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign origin, got %d", w.Code)
	}
}
