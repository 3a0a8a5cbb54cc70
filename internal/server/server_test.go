package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/page"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type testServer struct {
	*Server
	visits *analytics.Store
}

func newTestServer(t *testing.T, withAnalytics bool) *testServer {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Mode = "test"
	cfg.ImagesDir = t.TempDir()
	cfg.AdminToken = "test-token"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ImagesDir, "profile.jpg"), []byte("jpeg"), 0o644))

	renderer, err := page.New(content.Default(), motion.DefaultTheme())
	require.NoError(t, err)

	var visits *analytics.Store
	if withAnalytics {
		visits, err = analytics.Open(filepath.Join(t.TempDir(), "visits.db"), discard)
		require.NoError(t, err)
		t.Cleanup(func() { visits.Close() })
	}

	return &testServer{Server: New(cfg, renderer, visits, discard), visits: visits}
}

func (ts *testServer) get(t *testing.T, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, req)
	return rec
}

func TestPage(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.get(t, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.True(t, doc.Find("#mobile-menu").HasClass("hidden"))
	assert.Equal(t, 5, doc.Find("[data-nav=desktop] a").Length())
}

func TestPage_MenuOpenAndRevealAll(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.get(t, "/?menu=open&reveal=all", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	menu := doc.Find("#mobile-menu")
	assert.False(t, menu.HasClass("hidden"))
	assert.Equal(t, 5, menu.Find("a").Length())

	assert.True(t, doc.Find("section#about").HasClass("is-revealed"))
	style, _ := doc.Find("section#about .skill-fill").First().Attr("style")
	assert.True(t, strings.HasPrefix(style, "width: 95%;"), style)
}

func TestPage_SeenTargets(t *testing.T) {
	ts := newTestServer(t, false)

	tests := []struct {
		name  string
		query string
	}{
		{"comma separated", "/?seen=about,%20experience-1"},
		{"repeated", "/?seen=about&seen=experience-1&seen="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.get(t, tt.query, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			doc, err := goquery.NewDocumentFromReader(rec.Body)
			require.NoError(t, err)

			assert.True(t, doc.Find("section#about").HasClass("is-revealed"))
			assert.False(t, doc.Find("section#services").HasClass("is-revealed"))
			assert.False(t, doc.Find("section#projects").HasClass("is-revealed"))
			assert.False(t, doc.Find("#experience-0").HasClass("is-revealed"))
			assert.True(t, doc.Find("#experience-1").HasClass("is-revealed"))
		})
	}
}

func TestStylesheet(t *testing.T) {
	rec := newTestServer(t, false).get(t, "/motion.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "@keyframes glow-spin")
}

func TestStaticAndImages(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.get(t, "/static/site.js", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "IntersectionObserver")

	rec = ts.get(t, "/images/profile.jpg", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg", rec.Body.String())
}

func TestContentAPI(t *testing.T) {
	rec := newTestServer(t, false).get(t, "/api/content", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got content.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, content.Default(), got)
}

func TestHealthz(t *testing.T) {
	rec := newTestServer(t, false).get(t, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAdmin_DisabledWithoutAnalytics(t *testing.T) {
	rec := newTestServer(t, false).get(t, "/admin/api/stats", http.Header{"Authorization": {"Bearer test-token"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdmin_Stats(t *testing.T) {
	ts := newTestServer(t, true)

	ts.get(t, "/", nil)
	ts.get(t, "/", http.Header{"Dnt": {"1"}})
	ts.get(t, "/motion.css", nil)
	ts.visits.Wait()

	rec := ts.get(t, "/admin/api/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.get(t, "/admin/api/stats", http.Header{"Authorization": {"Bearer wrong"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.get(t, "/admin/api/stats", http.Header{"Authorization": {"Bearer test-token"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var stats analytics.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalVisits)
	assert.Equal(t, []analytics.PathCount{{Path: "/", Views: 1}}, stats.TopPaths)

	rec = ts.get(t, "/admin/export/stats", http.Header{"Authorization": {"Bearer test-token"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "portfolio-stats.json")
}

func TestAdmin_Cleanup(t *testing.T) {
	ts := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodPost, "/admin/privacy/cleanup", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed":0}`, rec.Body.String())
}

func TestRun_StopsWhenContextDone(t *testing.T) {
	ts := newTestServer(t, true)
	ts.cfg.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- ts.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
