package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/models"
)

func newRulePlanner(t *testing.T) *RulePlanner {
	t.Helper()
	return NewRulePlanner(fixtureRegistry(t), emptyGuides(t), &config.ExecutorConfig{MaxSelectedTools: 5})
}

func TestRulePlanLinearToNotionSummary(t *testing.T) {
	p := newRulePlanner(t)
	plan, err := p.Plan(
		"Linear의 기획관련 이슈를 찾아서 3문장으로 요약해 Notion의 새로운 페이지에 생성해서 저장하세요",
		[]string{"linear", "notion"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"linear", "notion"}, plan.TargetServices)

	var toolTasks, llmTasks []models.AgentTask
	for _, task := range plan.Tasks {
		switch task.TaskType {
		case models.TaskTypeTool:
			toolTasks = append(toolTasks, task)
		case models.TaskTypeLLM:
			llmTasks = append(llmTasks, task)
		}
	}
	require.GreaterOrEqual(t, len(toolTasks), 2)
	require.Len(t, llmTasks, 1)

	assert.Equal(t, 3, llmTasks[0].Payload["sentences"])

	var createTask *models.AgentTask
	for i := range toolTasks {
		if toolTasks[i].ToolName == "notion_create_page" {
			createTask = &toolTasks[i]
		}
	}
	require.NotNil(t, createTask, "plan should create a notion page")
	assert.Contains(t, createTask.DependsOn, llmTasks[0].ID, "create must depend on the summary")

	// Contract closure
	assert.Empty(t, ValidatePlan(plan))
}

func TestRulePlanRegisterIssueNotCreatePage(t *testing.T) {
	p := newRulePlanner(t)
	plan, err := p.Plan(
		"노션의 구글로그인 구현 페이지를 linear의 새로운 이슈로 등록하세요.",
		[]string{"notion", "linear"})
	require.NoError(t, err)

	names := map[string]bool{}
	for _, task := range plan.Tasks {
		if task.TaskType == models.TaskTypeTool {
			names[task.ToolName] = true
		}
	}
	assert.True(t, names["linear_create_issue"], "expected linear_create_issue, got %v", names)
	assert.False(t, names["notion_create_page"], "must not create a notion page")
	assert.Empty(t, ValidatePlan(plan))
}

func TestRulePlanWorkflowStepsAndNotes(t *testing.T) {
	p := newRulePlanner(t)
	plan, err := p.Plan("노션 페이지 검색해줘", []string{"notion"})
	require.NoError(t, err)

	require.Len(t, plan.WorkflowSteps, 8)
	assert.Contains(t, plan.WorkflowSteps[7], "notion_")

	// Missing guide files yield a note, never an error
	require.NotEmpty(t, plan.Notes)
	assert.Contains(t, plan.Notes[0], "not_available")
}

func TestRulePlanFallsBackToRegisteredTools(t *testing.T) {
	p := newRulePlanner(t)
	plan, err := p.Plan("뭐라도 해줘 노션에서", []string{"notion"})
	require.NoError(t, err)
	assert.NotEmpty(t, plan.SelectedTools, "no-score fallback should pick registered tools")
	for _, name := range plan.SelectedTools {
		assert.Contains(t, name, "notion_")
	}
}

func TestExtractRequirements(t *testing.T) {
	reqs := extractRequirements("이슈를 찾아서 3문장으로 요약해 페이지에 생성")
	var summaries []string
	for _, r := range reqs {
		summaries = append(summaries, r.Summary)
	}
	assert.Contains(t, summaries, "summarize")
	assert.Contains(t, summaries, "create")

	for _, r := range reqs {
		if r.Summary == "summarize" {
			require.NotNil(t, r.Quantity)
			assert.Equal(t, 3, *r.Quantity)
		}
	}
}
