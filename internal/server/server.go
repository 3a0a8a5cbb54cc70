// Package server serves the portfolio page over HTTP with gin.
package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/page"
)

const (
	revealParam   = "reveal"
	revealAll     = "all"
	seenParam     = "seen"
	shutdownWait  = 10 * time.Second
	sweepInterval = 24 * time.Hour
)

// Server wires the renderer and the optional analytics store to routes.
type Server struct {
	cfg      *config.Config
	renderer *page.Renderer
	visits   *analytics.Store
	log      *slog.Logger
	engine   *gin.Engine
}

// New builds the gin engine. visits may be nil to disable analytics.
func New(cfg *config.Config, renderer *page.Renderer, visits *analytics.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(cfg.Mode)

	s := &Server{
		cfg:      cfg,
		renderer: renderer,
		visits:   visits,
		log:      logger,
		engine:   gin.New(),
	}
	s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("portfolio server listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if s.visits != nil {
		g.Go(func() error {
			s.sweepVisits(gCtx, sweepInterval)
			return nil
		})
	}
	return g.Wait()
}

// sweepVisits drops visits past the retention window once at start and then
// every interval until ctx is done.
func (s *Server) sweepVisits(ctx context.Context, interval time.Duration) {
	retention := s.cfg.Analytics.Retention()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		removed, err := s.visits.Cleanup(ctx, retention)
		if err != nil && ctx.Err() == nil {
			s.log.Warn("visit retention sweep failed", "error", err)
		} else if removed > 0 {
			s.log.Info("expired visits removed", "count", removed)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) routes() {
	r := s.engine
	r.Use(gin.Recovery(), s.requestLogger())
	if s.visits != nil {
		r.Use(s.visits.Middleware())
	}
	r.SetHTMLTemplate(s.renderer.Template())

	r.StaticFS("/static", http.FS(page.StaticFS()))
	r.Static("/images", s.cfg.ImagesDir)

	// Home page route
	r.GET("/", s.handlePage)
	r.GET("/motion.css", s.handleStylesheet)

	r.GET("/api/content", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.renderer.Content())
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.adminRoutes()
}

func (s *Server) handlePage(c *gin.Context) {
	req := page.Request{
		Menu:      nav.FromQuery(c.Request.URL.Query()),
		Seen:      seenTargets(c.QueryArray(seenParam)),
		RevealAll: c.Query(revealParam) == revealAll,
	}
	c.HTML(http.StatusOK, page.PageTemplate, s.renderer.View(req))
}

// seenTargets accepts both repeated and comma-separated seen parameters.
func seenTargets(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func (s *Server) handleStylesheet(c *gin.Context) {
	var sb strings.Builder
	if err := s.renderer.Stylesheet(&sb); err != nil {
		s.log.Error("rendering stylesheet", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render stylesheet"})
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(sb.String()))
}

// requestLogger logs every request through slog with a request id.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Header("X-Request-ID", id)

		c.Next()

		s.log.Info("request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
		for _, err := range c.Errors {
			s.log.Error("request error", "id", id, "error", err.Err)
		}
	}
}

// adminAuth checks the bearer token in constant time.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.AdminToken)) != 1 {
			s.log.Warn("rejected admin request", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) adminRoutes() {
	if s.visits == nil || s.cfg.AdminToken == "" {
		return
	}

	admin := s.engine.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.visits.Stats(c.Request.Context())
		if err != nil {
			s.log.Error("loading admin stats", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Statistics export for backups or analysis
	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.visits.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := s.visits.Cleanup(c.Request.Context(), s.cfg.Analytics.Retention())
		if err != nil {
			s.log.Error("privacy cleanup", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})
}
