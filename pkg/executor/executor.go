package executor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/llm"
	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/policy"
	"github.com/braid-labs/braid/pkg/registry"
	"github.com/braid-labs/braid/pkg/tools"
)

// Summarizer is the LLM capability LLM tasks and stepwise autofill use.
// Implemented by *llm.Client; stubbed in tests.
type Summarizer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, string, error)
	CompleteJSON(ctx context.Context, req llm.CompletionRequest) (map[string]any, string, error)
}

// Executor runs plans. All collaborators are injected; the executor owns
// only ephemeral per-run state.
type Executor struct {
	invoker   tools.Invoker
	registry  *registry.Registry
	contracts *registry.ContractStore
	llm       Summarizer
	autofill  Summarizer
	cfg       *config.ExecutorConfig

	// injectable for tests
	sleep func(time.Duration)
	newID func() string
}

// New creates an executor. llmClient serves LLM tasks; autofillClient
// serves stepwise payload autofill (may be the same client).
func New(invoker tools.Invoker, reg *registry.Registry, contracts *registry.ContractStore,
	llmClient, autofillClient Summarizer, cfg *config.ExecutorConfig) *Executor {
	if cfg == nil {
		cfg = &config.ExecutorConfig{}
	}
	return &Executor{
		invoker:   invoker,
		registry:  reg,
		contracts: contracts,
		llm:       llmClient,
		autofill:  autofillClient,
		cfg:       cfg,
		sleep:     time.Sleep,
		newID:     func() string { return uuid.NewString() },
	}
}

// Run is one execution request.
type Run struct {
	UserID  string
	Plan    *models.AgentPlan
	Profile *policy.Profile
	EventID string
}

// Execute dispatches on the plan's task types: a PIPELINE_DAG task runs
// the DAG engine, a STEPWISE_PIPELINE task runs the stepwise engine,
// anything else runs the classical sequential engine.
func (e *Executor) Execute(ctx context.Context, run Run) *models.AgentExecutionResult {
	for i := range run.Plan.Tasks {
		task := &run.Plan.Tasks[i]
		switch task.TaskType {
		case models.TaskTypePipelineDAG:
			return e.ExecuteDAG(ctx, run, task)
		case models.TaskTypeStepwise:
			return e.ExecuteStepwise(ctx, run, task)
		}
	}
	return e.ExecuteSequential(ctx, run)
}

// retryInvoke invokes a tool with the configured linear-backoff retry for
// the retryable error subset. It returns the last result and the number
// of attempts made.
func (e *Executor) retryInvoke(ctx context.Context, call tools.Call) (models.ToolResult, int) {
	maxAttempts := e.cfg.StepwiseToolRetryMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	backoff := time.Duration(e.cfg.StepwiseToolRetryBackoffMS) * time.Millisecond

	var result models.ToolResult
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result = e.invoker.Invoke(ctx, call)
		if result.OK {
			return result, attempt
		}
		code := models.ErrorCode(tools.CanonicalCode(result.ErrorCode))
		if !models.IsRetryable(code) || attempt == maxAttempts {
			return result, attempt
		}
		if ctx.Err() != nil {
			return result, attempt
		}
		slog.Debug("retrying tool call",
			"tool", call.ToolName, "attempt", attempt, "error_code", code)
		e.sleep(backoff * time.Duration(attempt))
	}
	return result, maxAttempts
}

// toolTimeout is the per-call deadline for one tool invocation.
func (e *Executor) toolTimeout() time.Duration {
	if e.cfg.ToolTimeoutSec > 0 {
		return time.Duration(e.cfg.ToolTimeoutSec) * time.Second
	}
	return 30 * time.Second
}

// topoOrder sorts ids so dependencies come first, breaking ties by
// declaration order. The bool is false when a cycle or an unknown
// dependency exists.
func topoOrder(ids []string, deps map[string][]string) ([]string, bool) {
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	state := make(map[string]int, len(ids)) // 0 unvisited, 1 visiting, 2 done
	var order []string
	var visit func(id string) bool
	visit = func(id string) bool {
		switch state[id] {
		case 1:
			return false
		case 2:
			return true
		}
		state[id] = 1
		for _, dep := range deps[id] {
			if _, ok := index[dep]; !ok {
				return false
			}
			if !visit(dep) {
				return false
			}
		}
		state[id] = 2
		order = append(order, id)
		return true
	}

	for _, id := range ids {
		if !visit(id) {
			return nil, false
		}
	}
	return order, true
}

// stepFailure renders a failed execution result with the artifact keys
// downstream consumers read.
func stepFailure(stepErr *models.StepError, steps []models.ExecutionStep, artifacts map[string]any) *models.AgentExecutionResult {
	if artifacts == nil {
		artifacts = map[string]any{}
	}
	artifacts["error_code"] = string(stepErr.Code)
	artifacts["failed_step"] = stepErr.Node
	artifacts["reason"] = stepErr.Detail
	if models.IsRetryable(stepErr.Code) {
		artifacts["retry_hint"] = "retryable"
	} else {
		artifacts["retry_hint"] = "terminal"
	}
	return &models.AgentExecutionResult{
		Success:   false,
		Summary:   fmt.Sprintf("실행 실패: %s", stepErr.Code),
		Artifacts: artifacts,
		Steps:     steps,
	}
}
