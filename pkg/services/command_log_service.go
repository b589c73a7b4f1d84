package services

import (
	"context"
	"fmt"
	"time"

	"github.com/braid-labs/braid/ent"
	"github.com/braid-labs/braid/ent/commandlog"
	"github.com/braid-labs/braid/pkg/models"
)

// CommandLogService appends command log rows. Implements
// observability.CommandLogStore. The rollout evaluators read this table;
// the engine only ever appends.
type CommandLogService struct {
	client *ent.Client
}

// NewCommandLogService creates a new CommandLogService.
func NewCommandLogService(client *ent.Client) *CommandLogService {
	return &CommandLogService{client: client}
}

// Append writes one command log row.
func (s *CommandLogService) Append(ctx context.Context, entry models.CommandLogEntry) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.CommandLog.Create().
		SetUserID(entry.UserID).
		SetCommand(entry.Command).
		SetStatus(entry.Status).
		SetDetail(entry.Detail)
	if entry.FinalStatus != "" {
		create.SetFinalStatus(entry.FinalStatus)
	}
	if entry.PlanSource != "" {
		create.SetPlanSource(entry.PlanSource)
	}
	if entry.ExecutionMode != "" {
		create.SetExecutionMode(entry.ExecutionMode)
	}
	if entry.ErrorCode != "" {
		create.SetErrorCode(entry.ErrorCode)
	}
	if entry.VerificationReason != "" {
		create.SetVerificationReason(entry.VerificationReason)
	}
	if entry.AutonomousFallbackReason != "" {
		create.SetAutonomousFallbackReason(entry.AutonomousFallbackReason)
	}

	if err := create.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to append command log: %w", err)
	}
	return nil
}

// RecentByUser returns the user's most recent command rows, newest first.
func (s *CommandLogService) RecentByUser(ctx context.Context, userID string, limit int) ([]*ent.CommandLog, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.client.CommandLog.Query().
		Where(commandlog.UserIDEQ(userID)).
		Order(ent.Desc(commandlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list command logs for %s: %w", userID, err)
	}
	return rows, nil
}

// CleanupOlderThan removes rows older than the retention window.
func (s *CommandLogService) CleanupOlderThan(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.CommandLog.Delete().
		Where(commandlog.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup command logs: %w", err)
	}
	return count, nil
}
