package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/adapter/fetcher"
	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/adapter/parser"
	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/adapter/renderer"
	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/domain"
	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/usecase"
)

type stubBuilder struct {
	body []byte
	err  error
}

func (s *stubBuilder) BuildFeed(ctx context.Context) ([]byte, error) {
	return s.body, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandler_GetFeed_Success(t *testing.T) {
	handler := NewHandler(discardLogger(), &stubBuilder{body: []byte("<rss/>")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.getFeed(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "<rss/>", rec.Body.String())
}
func TestHandler_GetFeed_FetchErrorIsBadGateway(t *testing.T) {
	err := &domain.FetchError{URL: "https://www.iraqinews.com/rss/", Status: 500}
	handler := NewHandler(discardLogger(), &stubBuilder{err: err})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.getFeed(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<rss")
}
func TestHandler_GetFeed_ParseErrorIsBadGateway(t *testing.T) {
	err := &domain.ParseError{Err: errors.New("bad xml")}
	handler := NewHandler(discardLogger(), &stubBuilder{err: err})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.getFeed(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
func TestHandler_GetFeed_UnknownErrorIsInternal(t *testing.T) {
	handler := NewHandler(discardLogger(), &stubBuilder{err: errors.New("boom")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.getFeed(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
func TestHandler_GetFeed_MethodNotAllowed(t *testing.T) {
	handler := NewHandler(discardLogger(), &stubBuilder{body: []byte("<rss/>")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	handler.getFeed(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
func TestServer_UnknownPathNotFound(t *testing.T) {
	router := NewServer(discardLogger(), NewHandler(discardLogger(), &stubBuilder{}), 30, 5)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
func TestServer_HealthCheck(t *testing.T) {
	router := NewServer(discardLogger(), NewHandler(discardLogger(), &stubBuilder{}), 30, 5)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
func TestServer_RateLimitExceeded(t *testing.T) {
	router := NewServer(discardLogger(), NewHandler(discardLogger(), &stubBuilder{body: []byte("<rss/>")}), 30, 1)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	router.ServeHTTP(first, req)

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.RemoteAddr = "10.0.0.1:12346"
	router.ServeHTTP(second, req2)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
func TestServer_RateLimitUsesForwardedFor(t *testing.T) {
	router := NewServer(discardLogger(), NewHandler(discardLogger(), &stubBuilder{body: []byte("<rss/>")}), 30, 1)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:1000"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	router.ServeHTTP(first, req)

	// Другой реальный клиент за тем же прокси лимитируется отдельно.
	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.RemoteAddr = "127.0.0.1:1000"
	req2.Header.Set("X-Forwarded-For", "203.0.113.8")
	router.ServeHTTP(second, req2)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
}

// Сценарии с реальным конвейером против тестового источника.

func newPipelineServer(t *testing.T, upstreamURL, prefix string, timeout time.Duration) http.Handler {
	t.Helper()
	log := discardLogger()
	uc := usecase.NewProxyFeedUseCase(
		fetcher.NewHTTPFetcher(timeout, log),
		parser.NewRSSParser(log),
		renderer.NewRSSRenderer(log),
		log,
		upstreamURL,
		prefix,
	)
	return NewServer(log, NewHandler(log, uc), 1000, 1000)
}

func TestServer_Pipeline_FiltersUpstreamFeed(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
		<rss version="2.0">
		<channel>
		<title>Iraqi News</title>
		<link>https://www.iraqinews.com</link>
		<description>Latest news</description>
		<item>
		<title>Iraq story</title>
		<link>https://www.iraqinews.com/iraq/a</link>
		</item>
		<item>
		<title>World story</title>
		<link>https://www.iraqinews.com/world/b</link>
		</item>
		</channel>
		</rss>`))
	}))
	defer upstream.Close()

	router := newPipelineServer(t, upstream.URL, "https://www.iraqinews.com/iraq/", 5*time.Second)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "https://www.iraqinews.com/iraq/a")
	assert.NotContains(t, body, "https://www.iraqinews.com/world/b")
}
func TestServer_Pipeline_UpstreamTimeoutIsBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer upstream.Close()

	router := newPipelineServer(t, upstream.URL, "", 50*time.Millisecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<rss")
}
func TestServer_Pipeline_MalformedUpstreamIsBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("definitely not xml"))
	}))
	defer upstream.Close()

	router := newPipelineServer(t, upstream.URL, "", 5*time.Second)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
