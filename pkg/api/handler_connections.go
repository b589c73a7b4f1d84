package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/braid-labs/braid/pkg/services"
)

// SaveConnectionRequest is the body of PUT .../connections/:provider.
// The OAuth dance happens in the ingress; this endpoint only stores its
// outcome.
type SaveConnectionRequest struct {
	AccessToken   string     `json:"access_token" binding:"required"`
	RefreshToken  string     `json:"refresh_token,omitempty"`
	Scopes        []string   `json:"scopes,omitempty"`
	WorkspaceID   string     `json:"workspace_id,omitempty"`
	WorkspaceName string     `json:"workspace_name,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// ListConnections handles GET /api/v1/users/:user_id/connections.
func (s *Server) ListConnections(c *gin.Context) {
	list, err := s.connections.ConnectedServices(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"connected_services": list})
}

// SaveConnection handles PUT /api/v1/users/:user_id/connections/:provider.
func (s *Server) SaveConnection(c *gin.Context) {
	var req SaveConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := s.connections.SaveToken(c.Request.Context(), services.SaveTokenRequest{
		UserID:        c.Param("user_id"),
		Provider:      c.Param("provider"),
		AccessToken:   req.AccessToken,
		RefreshToken:  req.RefreshToken,
		Scopes:        req.Scopes,
		WorkspaceID:   req.WorkspaceID,
		WorkspaceName: req.WorkspaceName,
		ExpiresAt:     req.ExpiresAt,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "connected"})
}

// DeleteConnection handles DELETE /api/v1/users/:user_id/connections/:provider.
func (s *Server) DeleteConnection(c *gin.Context) {
	if err := s.connections.DeleteToken(c.Request.Context(), c.Param("user_id"), c.Param("provider")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "disconnected"})
}
