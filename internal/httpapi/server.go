// Package httpapi exposes UUID generation and inspection over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jvs-project/uuidgen/pkg/logging"
	"github.com/jvs-project/uuidgen/pkg/metrics"
	"github.com/jvs-project/uuidgen/pkg/uuid"
)

const shutdownTimeout = 5 * time.Second

// Server wires the gin router to an http.Server.
type Server struct {
	addr    string
	logger  *logging.Logger
	metrics *metrics.Registry
	router  *gin.Engine

	newID func() (uuid.UUID, error)
}

// NewServer builds the router. A nil logger falls back to the global logger;
// a nil registry disables metrics and the /metrics route.
func NewServer(addr string, logger *logging.Logger, reg *metrics.Registry) *Server {
	if logger == nil {
		logger = logging.Global()
	}
	s := &Server{
		addr:    addr,
		logger:  logger.WithFields(map[string]any{"component": "httpapi"}),
		metrics: reg,
		newID:   uuid.New,
	}
	s.router = s.setupRoutes()
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	v1 := r.Group("/v1")
	{
		v1.GET("/uuids", s.generate)
		v1.GET("/uuids/:id", s.inspect)
		v1.POST("/uuids/compare", s.compare)
	}
	return r
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http api listening", map[string]any{"addr": s.addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	s.logger.Info("http api stopped")
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request", map[string]any{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
	}
}
