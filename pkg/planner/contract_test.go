package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/braid-labs/braid/pkg/models"
)

func validPlan() *models.AgentPlan {
	return &models.AgentPlan{
		UserText:       "make a page",
		TargetServices: []string{"notion"},
		Tasks: []models.AgentTask{
			{
				ID:           "t1",
				TaskType:     models.TaskTypeTool,
				Service:      "notion",
				ToolName:     "notion_create_page",
				OutputSchema: map[string]any{"type": "object"},
			},
			{
				ID:           "t2",
				TaskType:     models.TaskTypeLLM,
				DependsOn:    []string{"t1"},
				Instruction:  "summarize",
				OutputSchema: map[string]any{"type": "object"},
			},
		},
	}
}

func TestValidatePlan(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.AgentPlan)
		want   string
	}{
		{name: "valid", mutate: func(p *models.AgentPlan) {}, want: ""},
		{
			name:   "missing target services",
			mutate: func(p *models.AgentPlan) { p.TargetServices = nil },
			want:   "missing_target_services",
		},
		{
			name: "empty tasks with internal tool selected",
			mutate: func(p *models.AgentPlan) {
				p.Tasks = nil
				p.SelectedTools = []string{"notion_oauth_start"}
			},
			want: "internal_tool_selected:notion_oauth_start",
		},
		{
			name:   "empty tasks without tools",
			mutate: func(p *models.AgentPlan) { p.Tasks = nil },
			want:   "missing_tool_task",
		},
		{
			name:   "missing task id",
			mutate: func(p *models.AgentPlan) { p.Tasks[0].ID = "" },
			want:   "missing_task_id",
		},
		{
			name:   "duplicate task id",
			mutate: func(p *models.AgentPlan) { p.Tasks[1].ID = "t1" },
			want:   "duplicate_task_id",
		},
		{
			name:   "tool task outside target services",
			mutate: func(p *models.AgentPlan) { p.Tasks[0].Service = "linear" },
			want:   "service_not_targeted:linear",
		},
		{
			name:   "tool name prefix mismatch",
			mutate: func(p *models.AgentPlan) { p.Tasks[0].ToolName = "linear_create_issue" },
			want:   "tool_service_mismatch:linear_create_issue",
		},
		{
			name:   "internal tool in task",
			mutate: func(p *models.AgentPlan) { p.Tasks[0].ToolName = "notion_token_exchange" },
			want:   "internal_tool_selected:notion_token_exchange",
		},
		{
			name:   "llm task without instruction",
			mutate: func(p *models.AgentPlan) { p.Tasks[1].Instruction = "" },
			want:   "missing_instruction:t2",
		},
		{
			name:   "empty output schema",
			mutate: func(p *models.AgentPlan) { p.Tasks[0].OutputSchema = map[string]any{} },
			want:   "missing_output_schema:t1",
		},
		{
			name:   "unknown dependency",
			mutate: func(p *models.AgentPlan) { p.Tasks[1].DependsOn = []string{"t9"} },
			want:   "unknown_dependency:t9",
		},
		{
			name: "no tool task at all",
			mutate: func(p *models.AgentPlan) {
				p.Tasks = p.Tasks[1:]
				p.Tasks[0].DependsOn = nil
			},
			want: "missing_tool_task",
		},
		{
			name:   "invalid task type",
			mutate: func(p *models.AgentPlan) { p.Tasks[0].TaskType = "WEIRD" },
			want:   "invalid_task_type:t1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := validPlan()
			tt.mutate(plan)
			assert.Equal(t, tt.want, ValidatePlan(plan))
		})
	}
}

func TestValidatePlanAcceptsStepwiseTask(t *testing.T) {
	plan := &models.AgentPlan{
		TargetServices: []string{"notion"},
		Tasks: []models.AgentTask{{
			ID:           "stepwise",
			TaskType:     models.TaskTypeStepwise,
			OutputSchema: map[string]any{"type": "object"},
		}},
	}
	assert.Empty(t, ValidatePlan(plan))
}
