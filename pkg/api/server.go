// Package api is the HTTP surface of the engine: one analyze endpoint in
// front of the orchestrator, plus read endpoints over the observability
// tables and the connection/pending management calls the chat ingress
// uses. The chat webhook itself terminates outside this process.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/braid-labs/braid/ent"
	"github.com/braid-labs/braid/pkg/database"
	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/pending"
	"github.com/braid-labs/braid/pkg/services"
)

// Analyzer runs one analysis request. Implemented by
// *orchestrator.Orchestrator.
type Analyzer interface {
	RunAgentAnalysis(ctx context.Context, userID, userText string, connected []string) *models.AgentRunResult
}

// Connections is the OAuth connection surface the handlers need.
// Implemented by *services.TokenService.
type Connections interface {
	SaveToken(ctx context.Context, req services.SaveTokenRequest) error
	DeleteToken(ctx context.Context, userID, provider string) error
	ConnectedServices(ctx context.Context, userID string) ([]string, error)
}

// LinkReader lists pipeline link rows. Implemented by *services.LinkService.
type LinkReader interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]*ent.PipelineLink, error)
	ListManualRequired(ctx context.Context, limit int) ([]*ent.PipelineLink, error)
}

// StepReader lists per-node step rows of one run. Implemented by
// *services.StepLogService.
type StepReader interface {
	ListByRun(ctx context.Context, runID string) ([]*ent.PipelineStepLog, error)
}

// Server wires the HTTP routes to the engine.
type Server struct {
	db          *database.Client
	analyzer    Analyzer
	connections Connections
	links       LinkReader
	steps       StepReader
	pending     pending.Store
}

// NewServer creates a new API server. db may be nil in memory-only
// deployments; the health endpoint then skips the database probe.
func NewServer(db *database.Client, analyzer Analyzer, connections Connections, links LinkReader, steps StepReader, pendingStore pending.Store) *Server {
	return &Server{
		db:          db,
		analyzer:    analyzer,
		connections: connections,
		links:       links,
		steps:       steps,
		pending:     pendingStore,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger())

	router.GET("/healthz", s.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", s.Analyze)

		v1.GET("/users/:user_id/links", s.ListLinks)
		v1.GET("/links/manual-required", s.ListManualRequired)
		v1.GET("/runs/:run_id/steps", s.ListRunSteps)

		v1.GET("/users/:user_id/pending", s.GetPending)
		v1.DELETE("/users/:user_id/pending", s.CancelPending)

		v1.GET("/users/:user_id/connections", s.ListConnections)
		v1.PUT("/users/:user_id/connections/:provider", s.SaveConnection)
		v1.DELETE("/users/:user_id/connections/:provider", s.DeleteConnection)
	}

	return router
}

// NewHTTPServer wraps the router in an http.Server with sane timeouts.
// Analyze requests can legitimately run for minutes (pipeline_timeout_sec
// caps at 300), so the write timeout stays above that bound.
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      6 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}
}
