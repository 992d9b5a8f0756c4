package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quantforge/strategist/pkg/services"
)

// listSessions handles GET /api/v1/sessions.
func (s *Server) listSessions(c *gin.Context) {
	limit := 50
	offset := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	sessions, err := s.sessions.ListSessions(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// getActiveSession handles GET /api/v1/sessions/active.
func (s *Server) getActiveSession(c *gin.Context) {
	session, err := s.sessions.GetActiveSession(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": true, "session": session})
}

// getSession handles GET /api/v1/sessions/:id.
func (s *Server) getSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	session, err := s.sessions.GetSession(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// listSessionActions handles GET /api/v1/sessions/:id/actions.
func (s *Server) listSessionActions(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if _, err := s.sessions.GetSession(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	actions, err := s.actions.ListActions(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

// cancelSessionRequest is the body of POST /api/v1/sessions/:id/cancel.
type cancelSessionRequest struct {
	Reason string `json:"reason"`
}

// cancelSession handles POST /api/v1/sessions/:id/cancel.
func (s *Server) cancelSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req cancelSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Reason == "" {
		req.Reason = "cancelled via API"
	}

	result, err := s.coordinator.CancelSession(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// manualTrigger handles POST /api/v1/trigger: one immediate reconciliation
// step, outside the periodic schedule.
func (s *Server) manualTrigger(c *gin.Context) {
	result, err := s.coordinator.CheckAndTrigger(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func sessionID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// respondServiceError maps service-layer errors to HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
