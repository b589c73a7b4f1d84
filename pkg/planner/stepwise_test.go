package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/catalog"
	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/llm"
	"github.com/braid-labs/braid/pkg/models"
)

func stepwiseConfig() *config.Config {
	return &config.Config{
		Catalog:  &config.CatalogConfig{DefaultTTLSec: 300},
		Executor: &config.ExecutorConfig{},
		Policy:   &config.PolicyConfig{},
	}
}

func newStepwise(t *testing.T, client *llm.Client) *StepwisePlanner {
	t.Helper()
	return NewStepwisePlanner(fixtureRegistry(t), catalog.New(), client, stepwiseConfig())
}

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "korean conjunction",
			text: "회의 일정을 조회하고요 그리고 노션에 회의록 페이지를 생성해줘",
			want: []string{"회의 일정을 조회하고요", "노션에 회의록 페이지를 생성해줘"},
		},
		{
			name: "english then",
			text: "list my meetings then create a notion page",
			want: []string{"list my meetings", "create a notion page"},
		},
		{
			name: "no conjunction",
			text: "노션 페이지 생성",
			want: []string{"노션 페이지 생성"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitChunks(tt.text))
		})
	}
}

func TestSplitChunksCap(t *testing.T) {
	text := strings.Join([]string{"a1", "b2", "c3", "d4", "e5", "f6", "g7"}, " 그리고 ")
	assert.Len(t, SplitChunks(text), 5)
}

func TestMatchChunk(t *testing.T) {
	tests := []struct {
		name      string
		chunk     string
		connected []string
		wantTool  string
	}{
		{"calendar lookup", "오늘 회의 일정 조회", []string{"google", "notion"}, "google_calendar_list_events"},
		{"notion minutes page", "회의록 페이지 생성해줘", []string{"google", "notion"}, "notion_create_page"},
		{"linear issue", "이슈 등록해줘", []string{"linear"}, "linear_create_issue"},
		{"notion search", "노션 페이지 찾아줘", []string{"notion"}, "notion_search_pages"},
		{"no match", "안녕하세요", []string{"notion"}, ""},
		{"service not connected", "이슈 등록해줘", []string{"notion"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := MatchChunk(tt.chunk, tt.connected)
			if tt.wantTool == "" {
				assert.Empty(t, tasks)
				return
			}
			require.Len(t, tasks, 1)
			assert.Equal(t, tt.wantTool, tasks[0].ToolName)
			assert.Equal(t, tt.chunk, tasks[0].Sentence)
		})
	}
}

func TestStepwiseApplies(t *testing.T) {
	p := newStepwise(t, nil)

	assert.True(t, p.Applies("노션 페이지 생성해줘", []string{"notion"}))
	assert.False(t, p.Applies("안녕하세요", []string{"notion"}))
	assert.False(t, p.Applies("페이지 생성", []string{"linear"}), "mentions no connected service family")

	forced := NewStepwisePlanner(fixtureRegistry(t), catalog.New(), nil, &config.Config{
		Catalog:  &config.CatalogConfig{},
		Executor: &config.ExecutorConfig{ForceStepwise: true},
		Policy:   &config.PolicyConfig{},
	})
	assert.True(t, forced.Applies("안녕하세요", nil))
}

func TestStepwisePlanDeterministicFallback(t *testing.T) {
	primary := &scriptedProvider{name: "stub", err: errors.New("down")}
	p := newStepwise(t, llm.NewClient(primary, nil))

	plan, err := p.Plan(context.Background(), "u1",
		"오늘 회의 일정을 조회해줘 그리고 노션에 회의록 페이지를 생성해줘",
		[]string{"google", "notion"}, nil)
	require.NoError(t, err)

	require.Len(t, plan.Tasks, 1)
	task := plan.Tasks[0]
	assert.Equal(t, models.TaskTypeStepwise, task.TaskType)

	payload, err := models.StepwiseFromPayload(task.Payload)
	require.NoError(t, err)
	require.Len(t, payload.Tasks, 2)
	assert.Equal(t, "google_calendar_list_events", payload.Tasks[0].ToolName)
	assert.Equal(t, "notion_create_page", payload.Tasks[1].ToolName)
	assert.Equal(t, "s1", payload.Tasks[0].TaskID)
	assert.Equal(t, "s2", payload.Tasks[1].TaskID)

	assert.True(t, payload.Ctx.Enabled)
	assert.True(t, strings.HasPrefix(payload.Ctx.CatalogID, "catalog_"))

	assert.Contains(t, plan.Notes, "planner=llm_stepwise")
	assert.Contains(t, plan.Notes, "router_mode=STEPWISE_PIPELINE")
	assert.Contains(t, plan.Notes, "catalog_id="+payload.Ctx.CatalogID)

	assert.Empty(t, ValidatePlan(plan))
}

func TestStepwisePlanUsesLLMTasks(t *testing.T) {
	answer := `{"tasks": [{"task_id": "x", "sentence": "이슈 검색", "service": "linear", "tool_name": "linear_search_issues"}]}`
	provider := &scriptedProvider{name: "stub", answers: []string{answer}}
	p := newStepwise(t, llm.NewClient(provider, nil))

	plan, err := p.Plan(context.Background(), "u1", "리니어 이슈 검색해줘", []string{"linear"}, nil)
	require.NoError(t, err)

	payload, err := models.StepwiseFromPayload(plan.Tasks[0].Payload)
	require.NoError(t, err)
	require.Len(t, payload.Tasks, 1)
	assert.Equal(t, "linear_search_issues", payload.Tasks[0].ToolName)
	assert.Equal(t, "linear", payload.Tasks[0].Service)
}

func TestStepwisePlanDropsDisallowedTools(t *testing.T) {
	answer := `{"tasks": [
	  {"task_id": "a", "sentence": "x", "service": "linear", "tool_name": "linear_search_issues"},
	  {"task_id": "b", "sentence": "y", "service": "linear", "tool_name": "linear_oauth_start"},
	  {"task_id": "c", "sentence": "z", "service": "linear", "tool_name": "linear_unknown"}
	]}`
	provider := &scriptedProvider{name: "stub", answers: []string{answer}}
	p := newStepwise(t, llm.NewClient(provider, nil))

	plan, err := p.Plan(context.Background(), "u1", "리니어 이슈 검색해줘", []string{"linear"}, nil)
	require.NoError(t, err)

	payload, err := models.StepwiseFromPayload(plan.Tasks[0].Payload)
	require.NoError(t, err)
	require.Len(t, payload.Tasks, 1)
	assert.Equal(t, "linear_search_issues", payload.Tasks[0].ToolName)
}

func TestStepwisePlanNoTasksIsError(t *testing.T) {
	primary := &scriptedProvider{name: "stub", err: errors.New("down")}
	p := newStepwise(t, llm.NewClient(primary, nil))

	_, err := p.Plan(context.Background(), "u1", "안녕하세요", []string{"notion"}, nil)
	assert.Error(t, err)
}

func TestStepwiseCatalogIDStableAcrossRuns(t *testing.T) {
	primary := &scriptedProvider{name: "stub", err: errors.New("down")}
	p := newStepwise(t, llm.NewClient(primary, nil))

	text := "노션에 회의록 페이지를 생성해줘"
	first, err := p.Plan(context.Background(), "u1", text, []string{"notion"}, nil)
	require.NoError(t, err)
	second, err := p.Plan(context.Background(), "u1", text, []string{"notion"}, nil)
	require.NoError(t, err)

	a, _ := models.StepwiseFromPayload(first.Tasks[0].Payload)
	b, _ := models.StepwiseFromPayload(second.Tasks[0].Payload)
	assert.Equal(t, a.Ctx.CatalogID, b.Ctx.CatalogID)
}
