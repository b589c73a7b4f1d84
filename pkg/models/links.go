package models

// LinkStatus is the terminal status of a pipeline link row.
type LinkStatus string

const (
	LinkSucceeded      LinkStatus = "succeeded"
	LinkFailed         LinkStatus = "failed"
	LinkManualRequired LinkStatus = "manual_required"
)

// CompensationStatus summarizes what compensation did after a failed run.
type CompensationStatus string

const (
	CompensationNotRequired CompensationStatus = "not_required"
	CompensationCompleted   CompensationStatus = "completed"
	CompensationFailed      CompensationStatus = "failed"
)

// PipelineLinkRecord is one (user, event) → cross-service artifact link.
// Upserted by the links writer; unique on (UserID, EventID).
type PipelineLinkRecord struct {
	UserID             string             `json:"user_id"`
	EventID            string             `json:"event_id"`
	NotionPageID       string             `json:"notion_page_id,omitempty"`
	LinearIssueID      string             `json:"linear_issue_id,omitempty"`
	Title              string             `json:"title,omitempty"`
	Status             LinkStatus         `json:"status"`
	ErrorCode          string             `json:"error_code,omitempty"`
	CompensationStatus CompensationStatus `json:"compensation_status"`
	RunID              string             `json:"run_id"`
	PipelineID         string             `json:"pipeline_id,omitempty"`
}

// CommandLogEntry is one append-only command log row.
type CommandLogEntry struct {
	UserID                   string `json:"user_id"`
	Command                  string `json:"command"`
	Status                   string `json:"status"`
	FinalStatus              string `json:"final_status,omitempty"`
	PlanSource               string `json:"plan_source,omitempty"`
	ExecutionMode            string `json:"execution_mode,omitempty"`
	ErrorCode                string `json:"error_code,omitempty"`
	VerificationReason       string `json:"verification_reason,omitempty"`
	AutonomousFallbackReason string `json:"autonomous_fallback_reason,omitempty"`
	Detail                   string `json:"detail,omitempty"`
}

// StepLogEntry is one append-only pipeline step log row.
type StepLogEntry struct {
	RequestID  string     `json:"request_id"`
	RunID      string     `json:"run_id"`
	PipelineID string     `json:"pipeline_id,omitempty"`
	NodeID     string     `json:"node_id"`
	NodeType   string     `json:"node_type"`
	ToolName   string     `json:"tool_name,omitempty"`
	Status     StepStatus `json:"status"`
	Attempt    int        `json:"attempt"`
	ItemIndex  *int       `json:"item_index,omitempty"`
	LatencyMS  int64      `json:"latency_ms"`
	ErrorCode  string     `json:"error_code,omitempty"`
	Detail     string     `json:"detail,omitempty"`
}
