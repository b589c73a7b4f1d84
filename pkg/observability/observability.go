// Package observability writes the command-log and step-log rows the
// rollout evaluators read, and exports Prometheus metrics. Every write
// is best-effort: a failed write is logged, never surfaced to the user.
package observability

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/braid-labs/braid/pkg/masking"
	"github.com/braid-labs/braid/pkg/models"
)

// CommandLogStore persists command log rows.
type CommandLogStore interface {
	Append(ctx context.Context, entry models.CommandLogEntry) error
}

// StepLogStore persists per-node step log rows.
type StepLogStore interface {
	Append(ctx context.Context, entry models.StepLogEntry) error
}

// detailKeyOrder fixes the k=v order inside the command-log detail
// string; evaluators parse it positionally tolerant but humans read it.
var detailKeyOrder = []string{
	"services",
	"request_id",
	"pipeline_run_id",
	"dag_pipeline",
	"analysis_latency_ms",
	"skill_v2_rollout",
	"skill_v2_shadow_ok",
	"atomic_overhaul_shadow_mode",
	"idempotent_success_reuse_count",
}

// BuildDetail renders the semi-structured detail string: k=v pairs
// joined by ";", known keys first in fixed order, the rest sorted.
func BuildDetail(fields map[string]any) string {
	if len(fields) == 0 {
		return ""
	}
	used := make(map[string]bool, len(fields))
	var parts []string
	for _, key := range detailKeyOrder {
		if v, ok := fields[key]; ok {
			parts = append(parts, fmt.Sprintf("%s=%v", key, v))
			used[key] = true
		}
	}
	var rest []string
	for key := range fields {
		if !used[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		parts = append(parts, fmt.Sprintf("%s=%v", key, fields[key]))
	}
	return strings.Join(parts, ";")
}

// Recorder writes observability rows and bumps metrics.
type Recorder struct {
	commands CommandLogStore
	steps    StepLogStore
	masker   *masking.Service
}

// NewRecorder creates a recorder. Either store may be nil; writes to a
// nil store are silently skipped (memory-only deployments).
func NewRecorder(commands CommandLogStore, steps StepLogStore, masker *masking.Service) *Recorder {
	if masker == nil {
		masker = masking.NewService()
	}
	return &Recorder{commands: commands, steps: steps, masker: masker}
}

// RecordCommand writes one command-log row, masking the detail first.
func (r *Recorder) RecordCommand(ctx context.Context, entry models.CommandLogEntry) {
	RunsTotal.WithLabelValues(entry.Status, entry.PlanSource, entry.ExecutionMode).Inc()
	if entry.ErrorCode != "" {
		ErrorsTotal.WithLabelValues(entry.ErrorCode).Inc()
	}

	if r.commands == nil {
		return
	}
	entry.Detail = r.masker.Mask(entry.Detail)
	if err := r.commands.Append(ctx, entry); err != nil {
		slog.Warn("command log write failed", "user_id", entry.UserID, "error", err)
	}
}

// RecordSteps writes one step-log row per executed node of a DAG run.
func (r *Recorder) RecordSteps(ctx context.Context, requestID, runID, pipelineID string, steps []models.ExecutionStep) {
	for _, step := range steps {
		NodeStepsTotal.WithLabelValues(step.Type, string(step.Status)).Inc()
		if r.steps == nil {
			continue
		}
		entry := models.StepLogEntry{
			RequestID:  requestID,
			RunID:      runID,
			PipelineID: pipelineID,
			NodeID:     step.ID,
			NodeType:   step.Type,
			ToolName:   step.ToolName,
			Status:     step.Status,
			Attempt:    step.Attempts,
			ItemIndex:  step.ItemIndex,
			LatencyMS:  step.LatencyMS,
			ErrorCode:  step.ErrorCode,
		}
		if err := r.steps.Append(ctx, entry); err != nil {
			slog.Warn("step log write failed",
				"request_id", requestID, "node_id", step.ID, "error", err)
		}
	}
}
