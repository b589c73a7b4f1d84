package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/llm"
	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/registry"
	"github.com/braid-labs/braid/pkg/tools"
)

// Loop errors the retry-once policy applies to.
const (
	loopErrTurnLimit     = "turn_limit"
	loopErrToolCallLimit = "tool_call_limit"
	loopErrTimeout       = "timeout"
	loopErrReplanLimit   = "replan_limit"
)

// loopLimits bounds one pass of the choose-next-action loop.
type loopLimits struct {
	maxTurns     int
	maxToolCalls int
	replanLimit  int
	timeout      time.Duration
}

func limitsFrom(cfg *config.AutonomousConfig) loopLimits {
	limits := loopLimits{
		maxTurns:     8,
		maxToolCalls: 16,
		replanLimit:  2,
		timeout:      60 * time.Second,
	}
	if cfg == nil {
		return limits
	}
	if cfg.MaxTurns > 0 {
		limits.maxTurns = cfg.MaxTurns
	}
	if cfg.MaxToolCalls > 0 {
		limits.maxToolCalls = cfg.MaxToolCalls
	}
	if cfg.ReplanLimit > 0 {
		limits.replanLimit = cfg.ReplanLimit
	}
	if cfg.TimeoutSec > 0 {
		limits.timeout = time.Duration(cfg.TimeoutSec) * time.Second
	}
	return limits
}

// bumped doubles the turn and tool-call budgets and extends the timeout
// by half for the single retry after a limit breach.
func (l loopLimits) bumped() loopLimits {
	return loopLimits{
		maxTurns:     l.maxTurns * 2,
		maxToolCalls: l.maxToolCalls * 2,
		replanLimit:  l.replanLimit,
		timeout:      l.timeout + l.timeout/2,
	}
}

// runAutonomousWithRetry drives the loop and retries once, with bumped
// limits, when the first pass dies on a limit breach or timeout.
func (o *Orchestrator) runAutonomousWithRetry(ctx context.Context, userID, userText string,
	catalog []registry.LLMTool) (*models.AgentExecutionResult, string) {

	limits := limitsFrom(o.deps.Config.Autonomous)
	result, loopErr := o.runAutonomousLoop(ctx, userID, userText, catalog, limits)
	if !retryableLoopError(loopErr) {
		return result, loopErr
	}

	slog.Info("autonomous loop hit a limit, retrying with bumped limits",
		"user_id", userID, "loop_error", loopErr)
	return o.runAutonomousLoop(ctx, userID, userText, catalog, limits.bumped())
}

func retryableLoopError(code string) bool {
	switch code {
	case loopErrTurnLimit, loopErrToolCallLimit, loopErrTimeout, loopErrReplanLimit:
		return true
	}
	return false
}

// runAutonomousLoop asks the provider for one action per turn: a tool
// call (validated against the catalog, executed, transcribed) or a
// final message. The returned string is empty on success or one of the
// loop error codes.
func (o *Orchestrator) runAutonomousLoop(ctx context.Context, userID, userText string,
	catalog []registry.LLMTool, limits loopLimits) (*models.AgentExecutionResult, string) {

	if o.deps.Action == nil || o.deps.Invoker == nil {
		return autonomousFailure("no_action_client", nil, 0, 0), "no_action_client"
	}

	allowed := make(map[string]bool, len(catalog))
	for _, tool := range catalog {
		allowed[tool.Name] = true
	}

	loopCtx, cancel := context.WithTimeout(ctx, limits.timeout)
	defer cancel()

	var transcript []string
	var steps []models.ExecutionStep
	toolCalls := 0
	replans := 0

	for turn := 1; turn <= limits.maxTurns; turn++ {
		if loopCtx.Err() != nil {
			return autonomousFailure(loopErrTimeout, steps, toolCalls, turn), loopErrTimeout
		}

		obj, _, err := o.deps.Action.CompleteJSON(loopCtx, llm.NextActionRequest(userText, transcript, catalog))
		if err != nil {
			if loopCtx.Err() != nil {
				return autonomousFailure(loopErrTimeout, steps, toolCalls, turn), loopErrTimeout
			}
			replans++
			if replans > limits.replanLimit {
				return autonomousFailure(loopErrReplanLimit, steps, toolCalls, turn), loopErrReplanLimit
			}
			transcript = append(transcript, "planner answer unusable, replanning")
			continue
		}

		action, _ := obj["action"].(string)
		switch action {
		case "final":
			message, _ := obj["message"].(string)
			if message == "" {
				message = "요청을 완료했습니다."
			}
			return &models.AgentExecutionResult{
				Success:     true,
				Summary:     message,
				UserMessage: message,
				Artifacts:   autonomousArtifacts(toolCalls, turn),
				Steps:       steps,
			}, ""

		case "tool_call":
			toolName, _ := obj["tool_name"].(string)
			payload, _ := obj["payload"].(map[string]any)
			if toolName == "" || !allowed[toolName] {
				replans++
				if replans > limits.replanLimit {
					return autonomousFailure(loopErrReplanLimit, steps, toolCalls, turn), loopErrReplanLimit
				}
				transcript = append(transcript, fmt.Sprintf("tool %s rejected: not in catalog", toolName))
				continue
			}
			if toolCalls >= limits.maxToolCalls {
				return autonomousFailure(loopErrToolCallLimit, steps, toolCalls, turn), loopErrToolCallLimit
			}
			toolCalls++

			step, line := o.invokeLoopTool(loopCtx, userID, toolName, payload, len(steps)+1)
			steps = append(steps, step)
			transcript = append(transcript, line)
			if loopCtx.Err() != nil {
				return autonomousFailure(loopErrTimeout, steps, toolCalls, turn), loopErrTimeout
			}

		default:
			replans++
			if replans > limits.replanLimit {
				return autonomousFailure(loopErrReplanLimit, steps, toolCalls, turn), loopErrReplanLimit
			}
			transcript = append(transcript, "unknown action, replanning")
		}
	}
	return autonomousFailure(loopErrTurnLimit, steps, toolCalls, limits.maxTurns), loopErrTurnLimit
}

// invokeLoopTool executes one tool call of the loop and renders its
// transcript line.
func (o *Orchestrator) invokeLoopTool(ctx context.Context, userID, toolName string,
	payload map[string]any, seq int) (models.ExecutionStep, string) {

	timeout := 30 * time.Second
	if o.deps.Config.Executor != nil && o.deps.Config.Executor.ToolTimeoutSec > 0 {
		timeout = time.Duration(o.deps.Config.Executor.ToolTimeoutSec) * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	result := o.deps.Invoker.Invoke(callCtx, tools.Call{
		UserID:   userID,
		ToolName: toolName,
		Payload:  payload,
	})

	step := models.ExecutionStep{
		ID:        fmt.Sprintf("a%d", seq),
		Type:      "tool",
		ToolName:  toolName,
		Status:    models.StepSucceeded,
		Output:    result.Data,
		Attempts:  1,
		LatencyMS: time.Since(started).Milliseconds(),
	}
	if result.OK {
		return step, fmt.Sprintf("tool %s succeeded: %s", toolName, compactResult(result.Data))
	}
	code := tools.CanonicalCode(result.ErrorCode)
	step.Status = models.StepFailed
	step.Output = nil
	step.ErrorCode = code
	return step, fmt.Sprintf("tool %s failed: %s", toolName, code)
}

func autonomousArtifacts(toolCalls, turns int) map[string]any {
	return map[string]any{
		"execution_mode": "autonomous",
		"router_mode":    "AUTONOMOUS",
		"turns":          turns,
		"tool_calls":     toolCalls,
	}
}

func autonomousFailure(code string, steps []models.ExecutionStep, toolCalls, turns int) *models.AgentExecutionResult {
	artifacts := autonomousArtifacts(toolCalls, turns)
	artifacts["error_code"] = string(models.ErrExecution)
	artifacts["loop_error"] = code
	return &models.AgentExecutionResult{
		Success:   false,
		Summary:   "자율 실행 실패: " + code,
		Artifacts: artifacts,
		Steps:     steps,
	}
}

// compactResult keeps transcript lines short; providers only need the
// identifiers of what happened.
func compactResult(data any) string {
	obj, ok := data.(map[string]any)
	if !ok {
		return "ok"
	}
	for _, key := range []string{"id", "page_id", "issue_id", "url"} {
		if v, ok := obj[key].(string); ok && v != "" {
			return key + "=" + v
		}
	}
	return "ok"
}
