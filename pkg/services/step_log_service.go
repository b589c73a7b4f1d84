package services

import (
	"context"
	"fmt"
	"time"

	"github.com/braid-labs/braid/ent"
	"github.com/braid-labs/braid/ent/pipelinesteplog"
	"github.com/braid-labs/braid/pkg/models"
)

// StepLogService appends per-node pipeline step rows. Implements
// observability.StepLogStore.
type StepLogService struct {
	client *ent.Client
}

// NewStepLogService creates a new StepLogService.
func NewStepLogService(client *ent.Client) *StepLogService {
	return &StepLogService{client: client}
}

// Append writes one step log row.
func (s *StepLogService) Append(ctx context.Context, entry models.StepLogEntry) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.PipelineStepLog.Create().
		SetRequestID(entry.RequestID).
		SetRunID(entry.RunID).
		SetNodeID(entry.NodeID).
		SetNodeType(entry.NodeType).
		SetStatus(pipelinesteplog.Status(entry.Status)).
		SetAttempt(entry.Attempt).
		SetLatencyMs(int(entry.LatencyMS)).
		SetDetail(entry.Detail)
	if entry.PipelineID != "" {
		create.SetPipelineID(entry.PipelineID)
	}
	if entry.ToolName != "" {
		create.SetToolName(entry.ToolName)
	}
	if entry.ItemIndex != nil {
		create.SetItemIndex(*entry.ItemIndex)
	}
	if entry.ErrorCode != "" {
		create.SetErrorCode(entry.ErrorCode)
	}

	if err := create.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to append step log: %w", err)
	}
	return nil
}

// ListByRun returns every step row of one pipeline run, in write order.
func (s *StepLogService) ListByRun(ctx context.Context, runID string) ([]*ent.PipelineStepLog, error) {
	rows, err := s.client.PipelineStepLog.Query().
		Where(pipelinesteplog.RunIDEQ(runID)).
		Order(ent.Asc(pipelinesteplog.FieldCreatedAt), ent.Asc(pipelinesteplog.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list step logs for run %s: %w", runID, err)
	}
	return rows, nil
}

// CleanupOlderThan removes rows older than the retention window.
func (s *StepLogService) CleanupOlderThan(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.PipelineStepLog.Delete().
		Where(pipelinesteplog.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup step logs: %w", err)
	}
	return count, nil
}
