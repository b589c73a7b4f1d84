package executor

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/tools"
)

// mutationRecord is one successful mutating tool call, remembered for
// compensation.
type mutationRecord struct {
	NodeID   string
	ToolName string
	Payload  map[string]any
	Output   any
}

// inverseRule maps a mutating tool to its compensating call. idKeys are
// tried in order against the mutation's output to find the created
// artifact's id, which lands in the inverse payload under idField.
type inverseRule struct {
	InverseTool string
	idKeys      []string
	idField     string
	body        map[string]any
}

var inverseRules = map[string]inverseRule{
	"notion_create_page": {
		InverseTool: "notion_update_page",
		idKeys:      []string{"id", "page_id"},
		idField:     "page_id",
		body:        map[string]any{"archived": true},
	},
	"linear_create_issue": {
		InverseTool: "linear_update_issue",
		idKeys:      []string{"id", "issue_id", "issueCreate.issue.id"},
		idField:     "issue_id",
		body:        map[string]any{"state": "cancelled"},
	},
}

// isMutatingTool classifies tools whose effects must be undone when a
// later node fails.
func isMutatingTool(toolName string) bool {
	for _, verb := range []string{"create", "append", "update", "delete", "archive"} {
		if strings.Contains(toolName, verb) {
			return true
		}
	}
	return false
}

// compensate walks recorded mutations newest-first and issues the
// inverse call for each. Any mutation without an inverse, or any inverse
// call that fails, makes the whole compensation failed; partial undo is
// never reported as completed.
func (r *dagRun) compensate(ctx context.Context) models.CompensationStatus {
	if len(r.mutations) == 0 {
		return models.CompensationNotRequired
	}

	// compensation still runs after a pipeline timeout
	compCtx := ctx
	if compCtx.Err() != nil {
		var cancel context.CancelFunc
		compCtx, cancel = context.WithTimeout(context.Background(), r.exec.toolTimeout())
		defer cancel()
	}

	failed := false
	for i := len(r.mutations) - 1; i >= 0; i-- {
		mutation := r.mutations[i]
		if !r.compensateOne(compCtx, mutation) {
			failed = true
		}
	}
	if failed {
		return models.CompensationFailed
	}
	return models.CompensationCompleted
}

func (r *dagRun) compensateOne(ctx context.Context, mutation mutationRecord) bool {
	rule, ok := inverseRules[mutation.ToolName]
	if !ok || !r.exec.registry.Has(rule.InverseTool) {
		slog.Warn("no inverse for mutation",
			"node", mutation.NodeID, "tool", mutation.ToolName)
		r.recordCompensation(mutation, "", models.StepFailed, string(models.ErrCompensationFailed), 0)
		return false
	}

	artifactID := extractArtifactID(mutation.Output, rule.idKeys)
	if artifactID == "" {
		slog.Warn("mutation output carries no artifact id",
			"node", mutation.NodeID, "tool", mutation.ToolName)
		r.recordCompensation(mutation, rule.InverseTool, models.StepFailed, string(models.ErrCompensationFailed), 0)
		return false
	}

	payload := map[string]any{rule.idField: artifactID}
	for k, v := range rule.body {
		payload[k] = v
	}

	started := time.Now()
	result, _ := r.exec.retryInvoke(ctx, tools.Call{
		UserID:   r.run.UserID,
		ToolName: rule.InverseTool,
		Payload:  payload,
	})
	latency := time.Since(started).Milliseconds()
	if !result.OK {
		slog.Warn("compensation call failed",
			"node", mutation.NodeID, "tool", rule.InverseTool, "error_code", result.ErrorCode)
		r.recordCompensation(mutation, rule.InverseTool, models.StepFailed, result.ErrorCode, latency)
		return false
	}

	r.recordCompensation(mutation, rule.InverseTool, models.StepCompensated, "", latency)
	return true
}

func (r *dagRun) recordCompensation(mutation mutationRecord, inverseTool string, status models.StepStatus, errorCode string, latencyMS int64) {
	r.steps = append(r.steps, models.ExecutionStep{
		ID:        mutation.NodeID + ".compensation",
		Type:      "compensation",
		ToolName:  inverseTool,
		Status:    status,
		ErrorCode: errorCode,
		Attempts:  1,
		LatencyMS: latencyMS,
	})
}

// extractArtifactID tries each candidate key (dotted paths allowed)
// against the mutation output.
func extractArtifactID(output any, keys []string) string {
	for _, key := range keys {
		if v, ok := lookupPath(output, strings.Split(key, ".")); ok {
			if id, ok := v.(string); ok && id != "" {
				return id
			}
		}
	}
	return ""
}
