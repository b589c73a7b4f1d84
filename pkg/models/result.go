package models

// ToolResult is the outcome of one tool invocation. Data holds the parsed
// JSON body on success (non-JSON bodies are wrapped as {"raw_text": ...}).
// ErrorCode carries the composed upstream diagnostic on failure.
type ToolResult struct {
	OK        bool   `json:"ok"`
	Data      any    `json:"data,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}

// StepStatus is the terminal state of one executed step or node.
type StepStatus string

const (
	StepSucceeded   StepStatus = "succeeded"
	StepFailed      StepStatus = "failed"
	StepSkipped     StepStatus = "skipped"
	StepCompensated StepStatus = "compensated"
)

// ExecutionStep records one executed task/node for the run trace.
type ExecutionStep struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	ToolName  string     `json:"tool_name,omitempty"`
	Status    StepStatus `json:"status"`
	Output    any        `json:"output,omitempty"`
	ErrorCode string     `json:"error_code,omitempty"`
	Attempts  int        `json:"attempts"`
	ItemIndex *int       `json:"item_index,omitempty"`
	LatencyMS int64      `json:"latency_ms"`
}

// AgentExecutionResult is the executor's contract: what happened, a
// summary, a user-facing message, loosely-typed artifacts for the links
// writer and evaluators, and the ordered step trace.
type AgentExecutionResult struct {
	Success     bool            `json:"success"`
	Summary     string          `json:"summary"`
	UserMessage string          `json:"user_message,omitempty"`
	Artifacts   map[string]any  `json:"artifacts,omitempty"`
	Steps       []ExecutionStep `json:"steps,omitempty"`
}

// Artifact returns a string artifact value, or "" when absent.
func (r *AgentExecutionResult) Artifact(key string) string {
	if r == nil || r.Artifacts == nil {
		return ""
	}
	if v, ok := r.Artifacts[key].(string); ok {
		return v
	}
	return ""
}

// AgentRunResult is what run_agent_analysis hands back to the caller.
// Stage identifies how far the request got: validation, planning,
// execution, or completed.
type AgentRunResult struct {
	OK            bool                  `json:"ok"`
	Stage         string                `json:"stage"`
	Plan          *AgentPlan            `json:"plan,omitempty"`
	ResultSummary string                `json:"result_summary,omitempty"`
	Execution     *AgentExecutionResult `json:"execution,omitempty"`
	PlanSource    PlanSource            `json:"plan_source,omitempty"`
}

// Run stages.
const (
	StageValidation = "validation"
	StagePlanning   = "planning"
	StageExecution  = "execution"
	StageCompleted  = "completed"
)
