package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listOperations handles GET /api/v1/operations. Snapshots are copies; the
// registry is never exposed for mutation.
func (s *Server) listOperations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"operations": s.registry.Snapshot()})
}

// getOperation handles GET /api/v1/operations/:id.
func (s *Server) getOperation(c *gin.Context) {
	op, ok := s.registry.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "operation not found"})
		return
	}
	c.JSON(http.StatusOK, op)
}
