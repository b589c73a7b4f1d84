package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/braid-labs/braid/pkg/llm"
	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/tools"
)

// ExecuteStepwise runs a STEPWISE_PIPELINE task: an ordered tool list
// where each step's payload is autofilled by the LLM from the step
// sentence, the tool's input schema, and all prior step outputs.
func (e *Executor) ExecuteStepwise(ctx context.Context, run Run, task *models.AgentTask) *models.AgentExecutionResult {
	payload, err := models.StepwiseFromPayload(task.Payload)
	if err != nil {
		return stepFailure(
			models.NewStepError(models.ErrDSLValidationFailed, task.ID, "%v", err),
			nil, stepwiseArtifacts(""))
	}
	if len(payload.Tasks) == 0 {
		return stepFailure(
			models.NewStepError(models.ErrDSLValidationFailed, task.ID, "stepwise payload has no tasks"),
			nil, stepwiseArtifacts(payload.Ctx.CatalogID))
	}

	results := make(map[string]any, len(payload.Tasks))
	var steps []models.ExecutionStep

	for _, step := range payload.Tasks {
		started := time.Now()

		toolPayload, stepErr := e.autofillPayload(ctx, step, results)
		if stepErr != nil {
			steps = append(steps, stepwiseFailedStep(step, stepErr, 1, started))
			return stepFailure(stepErr, steps, stepwiseArtifacts(payload.Ctx.CatalogID))
		}

		if run.Profile != nil && !run.Profile.Enabled(step.ToolName) {
			stepErr := models.NewStepError(models.ErrToolAuthError, step.TaskID,
				"tool %s not enabled for user", step.ToolName)
			steps = append(steps, stepwiseFailedStep(step, stepErr, 1, started))
			return stepFailure(stepErr, steps, stepwiseArtifacts(payload.Ctx.CatalogID))
		}

		callCtx, cancel := context.WithTimeout(ctx, e.toolTimeout())
		result, attempts := e.retryInvoke(callCtx, tools.Call{
			UserID:   run.UserID,
			ToolName: step.ToolName,
			Payload:  toolPayload,
			EventID:  run.EventID,
		})
		cancel()

		if !result.OK {
			stepErr := toolStepError(step.TaskID, result.ErrorCode)
			steps = append(steps, stepwiseFailedStep(step, stepErr, attempts, started))
			return stepFailure(stepErr, steps, stepwiseArtifacts(payload.Ctx.CatalogID))
		}

		results[step.TaskID] = result.Data
		steps = append(steps, models.ExecutionStep{
			ID:        step.TaskID,
			Type:      string(models.TaskTypeStepwise),
			ToolName:  step.ToolName,
			Status:    models.StepSucceeded,
			Output:    result.Data,
			Attempts:  attempts,
			LatencyMS: time.Since(started).Milliseconds(),
		})
	}

	artifacts := stepwiseArtifacts(payload.Ctx.CatalogID)
	artifacts["step_results"] = results
	return &models.AgentExecutionResult{
		Success:   true,
		Summary:   fmt.Sprintf("%d단계 파이프라인 실행 완료", len(steps)),
		Artifacts: artifacts,
		Steps:     steps,
	}
}

// autofillPayload asks the autofill client for a tool payload built from
// the step sentence, the input schema, and prior outputs. The resolved
// payload may still contain $task_id.path references, interpolated from
// the shared step map.
func (e *Executor) autofillPayload(ctx context.Context, step models.StepwiseTask, results map[string]any) (map[string]any, *models.StepError) {
	if e.autofill == nil {
		return nil, models.NewStepError(models.ErrLLMAutofillFailed, step.TaskID, "no autofill client configured")
	}

	def, err := e.registry.GetTool(step.ToolName)
	if err != nil {
		return nil, models.NewStepError(models.ErrDSLValidationFailed, step.TaskID, "unknown tool %s", step.ToolName)
	}

	obj, _, err := e.autofill.CompleteJSON(ctx, llm.AutofillRequest(step.Sentence, step.ToolName, def.InputSchema, results))
	if err != nil {
		return nil, models.NewStepError(models.ErrLLMAutofillFailed, step.TaskID, "autofill: %v", err)
	}

	resolved, refErr := ResolveRefs(step.TaskID, obj, results, nil)
	if refErr != nil {
		return nil, refErr
	}
	return resolved, nil
}

func stepwiseArtifacts(catalogID string) map[string]any {
	artifacts := map[string]any{"router_mode": "STEPWISE_PIPELINE"}
	if catalogID != "" {
		artifacts["catalog_id"] = catalogID
	}
	return artifacts
}

func stepwiseFailedStep(step models.StepwiseTask, stepErr *models.StepError, attempts int, started time.Time) models.ExecutionStep {
	return models.ExecutionStep{
		ID:        step.TaskID,
		Type:      string(models.TaskTypeStepwise),
		ToolName:  step.ToolName,
		Status:    models.StepFailed,
		ErrorCode: string(stepErr.Code),
		Attempts:  attempts,
		LatencyMS: time.Since(started).Milliseconds(),
	}
}
