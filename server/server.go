package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Server is the HTTP front of the catalog: one query endpoint, one
// ingestion endpoint and the health pair.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	logger *slog.Logger
}

// NewServer builds the router around the given handlers.
func NewServer(handlers *Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	v1 := engine.Group("/v1")
	RegisterRoutes(v1, handlers)

	return &Server{
		engine: engine,
		logger: logger,
	}
}

// RegisterRoutes registers the /v1/assessments endpoints on a router group.
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	assessments := rg.Group("/assessments")
	{
		assessments.POST("/query", handlers.HandleQuery)
		assessments.POST("", handlers.HandleIngest)
		assessments.GET("/health", handlers.HandleHealth)
		assessments.GET("/ready", handlers.HandleReady)
	}
}

// Engine exposes the underlying router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts serving on addr and blocks until Shutdown or failure.
func (s *Server) Run(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("http server listening", "addr", addr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
