package executor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/braid-labs/braid/pkg/llm"
	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/tools"
)

// ExecuteSequential runs the plan's tasks in dependency-respecting
// declaration order. Tool outputs land in a shared step map keyed by
// task id; downstream payload strings reference them with $task_id.path.
func (e *Executor) ExecuteSequential(ctx context.Context, run Run) *models.AgentExecutionResult {
	plan := run.Plan

	ids := make([]string, 0, len(plan.Tasks))
	deps := make(map[string][]string, len(plan.Tasks))
	for _, task := range plan.Tasks {
		ids = append(ids, task.ID)
		deps[task.ID] = task.DependsOn
	}
	order, ok := topoOrder(ids, deps)
	if !ok {
		return stepFailure(
			models.NewStepError(models.ErrDSLValidationFailed, "", "task dependency cycle"),
			nil, map[string]any{"execution_mode": "classical"})
	}

	results := make(map[string]any, len(plan.Tasks))
	var steps []models.ExecutionStep

	for _, id := range order {
		task := plan.Task(id)
		started := time.Now()

		switch task.TaskType {
		case models.TaskTypeTool:
			payload, refErr := ResolveRefs(task.ID, task.Payload, results, nil)
			if refErr != nil {
				steps = append(steps, failedStep(task, refErr, started))
				return stepFailure(refErr, steps, map[string]any{"execution_mode": "classical"})
			}

			callCtx, cancel := context.WithTimeout(ctx, e.toolTimeout())
			result, attempts := e.retryInvoke(callCtx, tools.Call{
				UserID:   run.UserID,
				ToolName: task.ToolName,
				Payload:  payload,
				EventID:  run.EventID,
			})
			cancel()

			if !result.OK {
				stepErr := toolStepError(task.ID, result.ErrorCode)
				steps = append(steps, models.ExecutionStep{
					ID:        task.ID,
					Type:      string(task.TaskType),
					ToolName:  task.ToolName,
					Status:    models.StepFailed,
					ErrorCode: result.ErrorCode,
					Attempts:  attempts,
					LatencyMS: time.Since(started).Milliseconds(),
				})
				return stepFailure(stepErr, steps, map[string]any{"execution_mode": "classical"})
			}

			results[task.ID] = result.Data
			steps = append(steps, models.ExecutionStep{
				ID:        task.ID,
				Type:      string(task.TaskType),
				ToolName:  task.ToolName,
				Status:    models.StepSucceeded,
				Output:    result.Data,
				Attempts:  attempts,
				LatencyMS: time.Since(started).Milliseconds(),
			})

		case models.TaskTypeLLM:
			output, stepErr := e.runLLMTask(ctx, task, results)
			if stepErr != nil {
				steps = append(steps, failedStep(task, stepErr, started))
				return stepFailure(stepErr, steps, map[string]any{"execution_mode": "classical"})
			}
			results[task.ID] = output
			steps = append(steps, models.ExecutionStep{
				ID:        task.ID,
				Type:      string(task.TaskType),
				Status:    models.StepSucceeded,
				Output:    output,
				Attempts:  1,
				LatencyMS: time.Since(started).Milliseconds(),
			})

		default:
			stepErr := models.NewStepError(models.ErrDSLValidationFailed, task.ID,
				"unsupported task type %s in sequential mode", task.TaskType)
			steps = append(steps, failedStep(task, stepErr, started))
			return stepFailure(stepErr, steps, map[string]any{"execution_mode": "classical"})
		}
	}

	summary := fmt.Sprintf("%d개 작업 실행 완료", len(steps))
	return &models.AgentExecutionResult{
		Success: true,
		Summary: summary,
		Artifacts: map[string]any{
			"execution_mode": "classical",
			"step_results":   results,
		},
		Steps: steps,
	}
}

// runLLMTask feeds dependency outputs through the summarisation
// capability and returns the step-map entry for downstream substitution.
func (e *Executor) runLLMTask(ctx context.Context, task *models.AgentTask, results map[string]any) (map[string]any, *models.StepError) {
	if e.llm == nil {
		return nil, models.NewStepError(models.ErrLLMAutofillFailed, task.ID, "no LLM client configured")
	}

	inputs := make(map[string]any, len(task.DependsOn))
	for _, dep := range task.DependsOn {
		if v, ok := results[dep]; ok {
			inputs[dep] = v
		}
	}

	sentences := 0
	if n, ok := task.Payload["sentences"]; ok {
		switch v := n.(type) {
		case int:
			sentences = v
		case float64:
			sentences = int(v)
		}
	}

	answer, _, err := e.llm.Complete(ctx, llm.SummarizeRequest(task.Instruction, inputs, sentences))
	if err != nil {
		return nil, models.NewStepError(models.ErrLLMAutofillFailed, task.ID, "summarize: %v", err)
	}

	output := map[string]any{"summary": answer}
	if sentences > 0 {
		output["sentences"] = sentences
	}
	return output, nil
}

// toolStepError converts a composed invoker error code into a StepError
// with the canonical code, keeping the full diagnostic as detail.
func toolStepError(taskID, errorCode string) *models.StepError {
	canonical := models.ErrorCode(tools.CanonicalCode(errorCode))
	if !isBusinessCode(canonical) && !isPipelineCode(canonical) {
		head := canonical
		if idx := strings.Index(string(canonical), ":"); idx >= 0 {
			head = canonical[:idx]
		}
		switch {
		case isBusinessCode(head) || isPipelineCode(head):
			canonical = head
		case strings.Contains(string(canonical), "VALIDATION") ||
			strings.HasPrefix(string(canonical), "missing_path_param"):
			canonical = models.ErrValidation
		default:
			canonical = models.ErrToolFailed
		}
	}
	return models.NewStepError(canonical, taskID, "%s", errorCode)
}

func isPipelineCode(code models.ErrorCode) bool {
	switch code {
	case models.ErrDSLValidationFailed, models.ErrDSLRefNotFound,
		models.ErrLLMAutofillFailed, models.ErrToolAuthError,
		models.ErrToolRateLimited, models.ErrToolTimeout,
		models.ErrVerifyCountMismatch, models.ErrCompensationFailed,
		models.ErrPipelineTimeout, models.ErrToolFailed:
		return true
	default:
		return false
	}
}

func isBusinessCode(code models.ErrorCode) bool {
	switch code {
	case models.ErrValidation, models.ErrAuth, models.ErrTokenMissing,
		models.ErrServiceNotConnected, models.ErrRateLimited, models.ErrNotFound,
		models.ErrUpstream, models.ErrExecution, models.ErrVerificationFailed,
		models.ErrClarificationNeeded, models.ErrRiskGateBlocked, models.ErrToolFailedBusiness:
		return true
	default:
		return false
	}
}

func failedStep(task *models.AgentTask, stepErr *models.StepError, started time.Time) models.ExecutionStep {
	return models.ExecutionStep{
		ID:        task.ID,
		Type:      string(task.TaskType),
		ToolName:  task.ToolName,
		Status:    models.StepFailed,
		ErrorCode: string(stepErr.Code),
		Attempts:  1,
		LatencyMS: time.Since(started).Milliseconds(),
	}
}
