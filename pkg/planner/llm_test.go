package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/llm"
	"github.com/braid-labs/braid/pkg/models"
)

const goodPlanJSON = `{
  "target_services": ["notion"],
  "selected_tools": ["notion_create_page"],
  "tasks": [
    {"id": "t1", "task_type": "TOOL", "service": "notion",
     "tool_name": "notion_create_page", "payload": {"title": "hi"},
     "output_schema": {"type": "object"}}
  ]
}`

func TestLLMPlannerAcceptsValidPlan(t *testing.T) {
	reg := fixtureRegistry(t)
	provider := &scriptedProvider{name: "stub", answers: []string{goodPlanJSON}}
	p := NewLLMPlanner(reg, llm.NewClient(provider, nil))

	plan, reason, err := p.Plan(context.Background(), "노션 페이지 생성", []string{"notion"})
	require.NoError(t, err)
	assert.Empty(t, reason)
	require.NotNil(t, plan)
	assert.Equal(t, "노션 페이지 생성", plan.UserText)
	assert.Contains(t, plan.Notes, "llm_provider=stub")
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, models.TaskTypeTool, plan.Tasks[0].TaskType)
}

func TestLLMPlannerRejections(t *testing.T) {
	reg := fixtureRegistry(t)

	tests := []struct {
		name   string
		answer string
		reason string
	}{
		{
			name:   "service not connected",
			answer: `{"target_services": ["spotify"], "tasks": [{"id": "t1", "task_type": "TOOL"}]}`,
			reason: "service_not_connected:spotify",
		},
		{
			name:   "unknown tool",
			answer: `{"target_services": ["notion"], "selected_tools": ["notion_nope"], "tasks": [{"id": "t1", "task_type": "TOOL"}]}`,
			reason: "unknown_tool:notion_nope",
		},
		{
			name:   "empty plan",
			answer: `{"target_services": [], "tasks": []}`,
			reason: "plan_incomplete",
		},
		{
			name:   "no json",
			answer: "I cannot help with that",
			reason: "provider_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &scriptedProvider{name: "stub", answers: []string{tt.answer}}
			p := NewLLMPlanner(reg, llm.NewClient(provider, nil))
			plan, reason, err := p.Plan(context.Background(), "노션 페이지 생성", []string{"notion"})
			require.NoError(t, err)
			assert.Nil(t, plan)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestLLMPlannerFallbackProviderRescues(t *testing.T) {
	reg := fixtureRegistry(t)
	primary := &scriptedProvider{name: "primary", err: errors.New("down")}
	fallback := &scriptedProvider{name: "fallback", answers: []string{goodPlanJSON}}
	p := NewLLMPlanner(reg, llm.NewClient(primary, fallback))

	plan, reason, err := p.Plan(context.Background(), "노션 페이지 생성", []string{"notion"})
	require.NoError(t, err)
	assert.Empty(t, reason)
	require.NotNil(t, plan)
	assert.Contains(t, plan.Notes, "llm_provider=fallback")
}

func TestLLMPlannerNoAvailableTools(t *testing.T) {
	reg := fixtureRegistry(t)
	provider := &scriptedProvider{name: "stub", answers: []string{goodPlanJSON}}
	p := NewLLMPlanner(reg, llm.NewClient(provider, nil))

	plan, reason, err := p.Plan(context.Background(), "hello", []string{"spotify"})
	require.NoError(t, err)
	assert.Nil(t, plan)
	assert.Equal(t, "no_available_tools", reason)
	assert.Zero(t, provider.calls)
}
