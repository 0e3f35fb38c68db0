// Package api exposes the operational HTTP surface: health, pipeline
// status, and manual reprocessing. The pipeline itself has no HTTP
// dependency; this server only observes and nudges it.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/docfold/docfold/pkg/database"
	"github.com/docfold/docfold/pkg/queue"
	"github.com/docfold/docfold/pkg/services"
	"github.com/docfold/docfold/pkg/version"
	"github.com/gin-gonic/gin"
)

// Server is the ops HTTP server.
type Server struct {
	db           *database.Client
	docs         *services.DocumentService
	files        *services.FileService
	orchestrator *queue.Orchestrator
	httpServer   *http.Server
}

// NewServer creates the ops server.
func NewServer(db *database.Client, docs *services.DocumentService, files *services.FileService, orchestrator *queue.Orchestrator) *Server {
	return &Server{
		db:           db,
		docs:         docs,
		files:        files,
		orchestrator: orchestrator,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", s.health)

	v1 := router.Group("/api/v1")
	v1.GET("/status", s.status)
	v1.POST("/documents/:id/reprocess", s.reprocessDocument)

	return router
}

// Start serves HTTP on addr until Stop is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("API server: %w", err)
	}
	return nil
}

// Stop shuts the HTTP server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// health handles GET /health. Only the database is checked; external
// providers are excluded so their outages do not get this process
// restarted.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}

// status handles GET /api/v1/status: row counts by status plus the number
// of flows this instance currently owns.
func (s *Server) status(c *gin.Context) {
	ctx := c.Request.Context()

	docCounts, err := s.docs.StatusCounts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	fileCounts, err := s.files.StatusCounts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documents": docCounts,
		"files":     fileCounts,
		"in_flight": s.orchestrator.InFlight(),
	})
}

// reprocessDocument handles POST /api/v1/documents/:id/reprocess: reset a
// document for a fresh run from its resume point. The actual work happens
// on the next orchestrator tick.
func (s *Server) reprocessDocument(c *gin.Context) {
	id := c.Param("id")

	doc, err := s.docs.Reprocess(c.Request.Context(), id)
	if err != nil {
		switch {
		case services.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case services.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"document_id": doc.ID,
		"status":      doc.Status,
	})
}
