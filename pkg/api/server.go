// Package api exposes the orchestrator's HTTP surface: health, session and
// action inspection, operation snapshots, cancellation, and a manual
// trigger endpoint.
package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quantforge/strategist/ent"
	"github.com/quantforge/strategist/pkg/database"
	"github.com/quantforge/strategist/pkg/ops"
	"github.com/quantforge/strategist/pkg/trigger"
	"github.com/quantforge/strategist/pkg/version"
)

// SessionReader reads sessions. Implemented by services.SessionService.
type SessionReader interface {
	GetSession(ctx context.Context, id int) (*ent.ResearchSession, error)
	GetActiveSession(ctx context.Context) (*ent.ResearchSession, error)
	ListSessions(ctx context.Context, limit, offset int) ([]*ent.ResearchSession, error)
}

// ActionReader reads the tool-call audit log. Implemented by
// services.ActionService.
type ActionReader interface {
	ListActions(ctx context.Context, sessionID int) ([]*ent.AgentAction, error)
}

// Coordinator is the reconciler surface the API drives. Implemented by
// trigger.Reconciler.
type Coordinator interface {
	CheckAndTrigger(ctx context.Context) (trigger.TickResult, error)
	CancelSession(ctx context.Context, sessionID int, reason string) (trigger.CancelSessionResult, error)
}

// Server is the HTTP API server.
type Server struct {
	db          *sql.DB
	sessions    SessionReader
	actions     ActionReader
	registry    *ops.Registry
	coordinator Coordinator
}

// NewServer creates an API server. db may be nil, in which case the health
// endpoint skips the database check.
func NewServer(db *sql.DB, sessions SessionReader, actions ActionReader, registry *ops.Registry, coordinator Coordinator) *Server {
	return &Server{
		db:          db,
		sessions:    sessions,
		actions:     actions,
		registry:    registry,
		coordinator: coordinator,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", s.health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", s.health)
		v1.GET("/sessions", s.listSessions)
		v1.GET("/sessions/active", s.getActiveSession)
		v1.GET("/sessions/:id", s.getSession)
		v1.GET("/sessions/:id/actions", s.listSessionActions)
		v1.POST("/sessions/:id/cancel", s.cancelSession)
		v1.GET("/operations", s.listOperations)
		v1.GET("/operations/:id", s.getOperation)
		v1.POST("/trigger", s.manualTrigger)
	}

	return router
}

func (s *Server) health(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": version.Full()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"version":  version.Full(),
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
