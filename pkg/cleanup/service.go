// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/braid-labs/braid/pkg/catalog"
	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes pending_actions rows past their TTL
//   - Trims command_logs and pipeline_step_logs past their retention windows
//   - Sweeps expired runtime catalog entries
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config   *config.RetentionConfig
	pending  *services.PendingActionService
	commands *services.CommandLogService
	steps    *services.StepLogService
	catalog  *catalog.Cache

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. Any collaborator may be nil;
// its sweep is then skipped (memory-only deployments).
func NewService(
	cfg *config.RetentionConfig,
	pending *services.PendingActionService,
	commands *services.CommandLogService,
	steps *services.StepLogService,
	catalogCache *catalog.Cache,
) *Service {
	if cfg == nil {
		cfg = config.DefaultRetentionConfig()
	}
	return &Service{
		config:   cfg,
		pending:  pending,
		commands: commands,
		steps:    steps,
		catalog:  catalogCache,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"command_log_retention_days", s.config.CommandLogRetentionDays,
		"step_log_retention_days", s.config.StepLogRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

// RunAll performs one sweep of every retention target. Exposed for tests
// and for one-shot invocations.
func (s *Service) RunAll(ctx context.Context) {
	s.runAll(ctx)
}

func (s *Service) runAll(ctx context.Context) {
	s.reapExpiredPending(ctx)
	s.trimCommandLogs(ctx)
	s.trimStepLogs(ctx)
	s.sweepCatalog()
}

func (s *Service) reapExpiredPending(ctx context.Context) {
	if s.pending == nil {
		return
	}
	count, err := s.pending.CleanupExpired(ctx)
	if err != nil {
		slog.Error("Retention: pending action cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: reaped expired pending actions", "count", count)
	}
}

func (s *Service) trimCommandLogs(ctx context.Context) {
	if s.commands == nil {
		return
	}
	count, err := s.commands.CleanupOlderThan(ctx, s.config.CommandLogRetentionDays)
	if err != nil {
		slog.Error("Retention: command log cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: trimmed command logs", "count", count)
	}
}

func (s *Service) trimStepLogs(ctx context.Context) {
	if s.steps == nil {
		return
	}
	count, err := s.steps.CleanupOlderThan(ctx, s.config.StepLogRetentionDays)
	if err != nil {
		slog.Error("Retention: step log cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: trimmed step logs", "count", count)
	}
}

func (s *Service) sweepCatalog() {
	if s.catalog == nil {
		return
	}
	if count := s.catalog.SweepExpired(); count > 0 {
		slog.Info("Retention: swept expired catalog entries", "count", count)
	}
}
