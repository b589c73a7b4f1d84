package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AnalyzeRequest is the body of POST /api/v1/analyze. ConnectedServices
// is optional; when absent the stored OAuth connections are used.
type AnalyzeRequest struct {
	UserID            string   `json:"user_id" binding:"required"`
	Text              string   `json:"text" binding:"required"`
	ConnectedServices []string `json:"connected_services,omitempty"`
}

// Analyze handles POST /api/v1/analyze: one user request in, one
// AgentRunResult out. The orchestrator never returns an error; HTTP 200
// carries failures too, with ok=false and the stage that failed.
func (s *Server) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	connected := req.ConnectedServices
	if len(connected) == 0 && s.connections != nil {
		list, err := s.connections.ConnectedServices(c.Request.Context(), req.UserID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		connected = list
	}

	result := s.analyzer.RunAgentAnalysis(c.Request.Context(), req.UserID, req.Text, connected)
	c.JSON(http.StatusOK, result)
}
