package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPending handles GET /api/v1/users/:user_id/pending: the slot the
// engine is currently waiting on, if any.
func (s *Server) GetPending(c *gin.Context) {
	action, err := s.pending.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if action == nil {
		c.JSON(http.StatusOK, gin.H{"pending": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": gin.H{
		"intent":        action.Intent,
		"action":        action.Action,
		"missing_slots": action.MissingSlots,
		"expires_at":    action.ExpiresAt,
	}})
}

// CancelPending handles DELETE /api/v1/users/:user_id/pending: the user
// abandoned the half-finished request.
func (s *Server) CancelPending(c *gin.Context) {
	if err := s.pending.Clear(c.Request.Context(), c.Param("user_id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
