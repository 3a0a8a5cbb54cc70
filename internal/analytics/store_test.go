package analytics

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(filepath.Join(t.TempDir(), "data", "visits.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHashIP(t *testing.T) {
	s := newTestStore(t)

	h := s.HashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, s.HashIP("203.0.113.7"))
	assert.NotEqual(t, h, s.HashIP("203.0.113.8"))
	assert.NotContains(t, h, "203")
}

func TestRecordAndStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Record(ctx, "10.0.0.1", "ua-1", "/"))
	require.NoError(t, s.Record(ctx, "10.0.0.1", "ua-1", "/"))
	require.NoError(t, s.Record(ctx, "10.0.0.2", "ua-2", "/"))

	s.now = func() time.Time { return now.Add(-3 * 24 * time.Hour) }
	require.NoError(t, s.Record(ctx, "10.0.0.3", "ua-3", "/cv"))

	s.now = func() time.Time { return now }
	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalVisits)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(3), stats.VisitsToday)
	assert.Equal(t, int64(4), stats.VisitsThisWeek)
	assert.Equal(t, []PathCount{{Path: "/", Views: 3}, {Path: "/cv", Views: 1}}, stats.TopPaths)
	require.Len(t, stats.RecentVisits, 4)
	assert.Equal(t, "/", stats.RecentVisits[0].Path)
	oldest := stats.RecentVisits[len(stats.RecentVisits)-1]
	assert.Equal(t, "/cv", oldest.Path)
	assert.Equal(t, s.HashIP("10.0.0.3"), oldest.HashedIP)
}

func TestCleanup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now.Add(-400 * 24 * time.Hour) }
	require.NoError(t, s.Record(ctx, "10.0.0.1", "ua", "/"))
	s.now = func() time.Time { return now }
	require.NoError(t, s.Record(ctx, "10.0.0.2", "ua", "/"))

	n, err := s.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalVisits)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestStore(t)

	r := gin.New()
	r.Use(s.Middleware())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/", ok)
	r.GET("/static/site.js", ok)
	r.GET("/admin/api/stats", ok)
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	do := func(path string, dnt bool) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if dnt {
			req.Header.Set("DNT", "1")
		}
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	do("/", false)
	do("/", true)
	do("/static/site.js", false)
	do("/admin/api/stats", false)
	do("/missing", false)
	s.Wait()

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalVisits)
	assert.Equal(t, []PathCount{{Path: "/", Views: 1}}, stats.TopPaths)
}
