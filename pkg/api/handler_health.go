package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/braid-labs/braid/pkg/version"
)

// Health handles GET /healthz.
func (s *Server) Health(c *gin.Context) {
	resp := gin.H{
		"status":  "healthy",
		"version": version.Full(),
	}
	if s.db == nil {
		resp["database"] = "disabled"
		c.JSON(http.StatusOK, resp)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := s.db.Health(ctx)
	resp["database"] = dbHealth
	if err != nil {
		resp["status"] = "unhealthy"
		resp["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
