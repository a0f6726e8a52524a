// Package server provides the HTTP front-end for batch extraction.
// It is a thin adapter: requests are staged to disk, handed to the batch
// runner, and the resulting records are streamed back as a spreadsheet.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"acordier/expense-extract/internal/config"
	"acordier/expense-extract/internal/extractor"
	"acordier/expense-extract/internal/logging"
)

// Server is the HTTP server adapter around the batch extraction pipeline.
type Server struct {
	config     *config.Config
	httpServer *http.Server
	router     *gin.Engine
	logger     logging.Logger
}

// NewServer creates the HTTP server wired to the given batch runner.
func NewServer(cfg *config.Config, batch *extractor.BatchRunner, logger logging.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.MaxMultipartMemory = cfg.Server.MaxUploadSize

	s := &Server{
		config: cfg,
		router: router,
		logger: logger,
	}

	router.Use(gin.Recovery())
	router.Use(s.loggingMiddleware())

	handlers := NewHandlers(batch, logger)

	router.GET("/healthz", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/extract", handlers.Extract)
	}

	return s
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		s.logger.Info("HTTP request",
			logging.Field{Key: "method", Value: method},
			logging.Field{Key: "path", Value: path},
			logging.Field{Key: "status", Value: c.Writer.Status()},
			logging.Field{Key: "latency", Value: time.Since(start).String()},
			logging.Field{Key: "client_ip", Value: c.ClientIP()})
	}
}

// Start runs the HTTP server until the context is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.config.Server.Address,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.logger.Info("Starting HTTP server",
		logging.Field{Key: "address", Value: s.config.Server.Address})

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("HTTP server shutdown requested")
		return s.Stop()
	case err := <-errCh:
		s.logger.WithError(err).Error("HTTP server error")
		return err
	}
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.WithError(err).Error("HTTP server shutdown error")
		return err
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

// Router returns the underlying gin router (for testing).
func (s *Server) Router() *gin.Engine {
	return s.router
}
