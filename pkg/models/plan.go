package models

// TaskType discriminates the payload shape of an AgentTask.
type TaskType string

const (
	TaskTypeTool        TaskType = "TOOL"
	TaskTypeLLM         TaskType = "LLM"
	TaskTypePipelineDAG TaskType = "PIPELINE_DAG"
	TaskTypeStepwise    TaskType = "STEPWISE_PIPELINE"
)

// PlanSource records which planner produced a plan.
type PlanSource string

const (
	PlanSourceRule     PlanSource = "rule"
	PlanSourceLLM      PlanSource = "llm"
	PlanSourceStepwise PlanSource = "stepwise"
)

// AgentRequirement is one extracted unit of user intent.
type AgentRequirement struct {
	Summary     string   `json:"summary"`
	Quantity    *int     `json:"quantity,omitempty"`
	Constraints []string `json:"constraints,omitempty"`
}

// AgentTask is one unit of work inside a plan. TOOL tasks carry Service,
// ToolName, and Payload; LLM tasks carry Instruction; PIPELINE_DAG and
// STEPWISE_PIPELINE tasks carry their whole definition in Payload.
type AgentTask struct {
	ID           string         `json:"id"`
	Title        string         `json:"title,omitempty"`
	TaskType     TaskType       `json:"task_type"`
	DependsOn    []string       `json:"depends_on,omitempty"`
	Service      string         `json:"service,omitempty"`
	ToolName     string         `json:"tool_name,omitempty"`
	Payload      map[string]any `json:"payload,omitempty"`
	Instruction  string         `json:"instruction,omitempty"`
	OutputSchema map[string]any `json:"output_schema"`
}

// AgentPlan is the declarative outcome of planning.
type AgentPlan struct {
	UserText       string             `json:"user_text"`
	Requirements   []AgentRequirement `json:"requirements,omitempty"`
	TargetServices []string           `json:"target_services"`
	SelectedTools  []string           `json:"selected_tools,omitempty"`
	WorkflowSteps  []string           `json:"workflow_steps,omitempty"`
	Tasks          []AgentTask        `json:"tasks"`
	Notes          []string           `json:"notes,omitempty"`
}

// Task returns the task with the given id, or nil.
func (p *AgentPlan) Task(id string) *AgentTask {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i]
		}
	}
	return nil
}

// AddNote appends a planner annotation (e.g. "planner=llm_stepwise").
func (p *AgentPlan) AddNote(note string) {
	p.Notes = append(p.Notes, note)
}

// HasService reports whether service is one of the plan's targets.
func (p *AgentPlan) HasService(service string) bool {
	for _, s := range p.TargetServices {
		if s == service {
			return true
		}
	}
	return false
}

// StepwiseTask is one ordered unit of a STEPWISE_PIPELINE payload.
type StepwiseTask struct {
	TaskID   string `json:"task_id"`
	Sentence string `json:"sentence"`
	Service  string `json:"service"`
	ToolName string `json:"tool_name"`
}

// StepwiseContext carries run context for a stepwise pipeline.
type StepwiseContext struct {
	Enabled   bool   `json:"enabled"`
	CatalogID string `json:"catalog_id,omitempty"`
}

// StepwisePayload is the typed payload of a STEPWISE_PIPELINE task.
type StepwisePayload struct {
	Tasks []StepwiseTask  `json:"tasks"`
	Ctx   StepwiseContext `json:"ctx"`
}
