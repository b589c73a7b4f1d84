package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/models"
)

func sequentialRun(plan *models.AgentPlan) Run {
	return Run{UserID: "u1", Plan: plan, EventID: "evt-1"}
}

func TestExecuteSequential(t *testing.T) {
	t.Run("tool outputs feed downstream payloads", func(t *testing.T) {
		inv := newScriptedInvoker()
		inv.enqueue("linear_create_issue", models.ToolResult{OK: true, Data: map[string]any{
			"issueCreate": map[string]any{"issue": map[string]any{"id": "iss-1", "url": "https://linear.app/iss-1"}},
		}})
		exec := newTestExecutor(t, inv, nil)

		plan := &models.AgentPlan{Tasks: []models.AgentTask{
			{ID: "t1", TaskType: models.TaskTypeTool, ToolName: "linear_create_issue",
				Payload: map[string]any{"title": "후속 작업"}},
			{ID: "t2", TaskType: models.TaskTypeTool, ToolName: "notion_create_page", DependsOn: []string{"t1"},
				Payload: map[string]any{"title": "이슈 기록", "issue_url": "$t1.issueCreate.issue.url"}},
		}}

		result := exec.Execute(context.Background(), sequentialRun(plan))
		require.True(t, result.Success)
		assert.Equal(t, "2개 작업 실행 완료", result.Summary)
		assert.Equal(t, "classical", result.Artifact("execution_mode"))

		creates := inv.callsTo("notion_create_page")
		require.Len(t, creates, 1)
		assert.Equal(t, "https://linear.app/iss-1", creates[0].Payload["issue_url"])
	})

	t.Run("declaration order yields to dependencies", func(t *testing.T) {
		inv := newScriptedInvoker()
		exec := newTestExecutor(t, inv, nil)

		plan := &models.AgentPlan{Tasks: []models.AgentTask{
			{ID: "b", TaskType: models.TaskTypeTool, ToolName: "notion_create_page", DependsOn: []string{"a"},
				Payload: map[string]any{"title": "둘째"}},
			{ID: "a", TaskType: models.TaskTypeTool, ToolName: "linear_create_issue",
				Payload: map[string]any{"title": "첫째"}},
		}}

		result := exec.Execute(context.Background(), sequentialRun(plan))
		require.True(t, result.Success)
		require.Len(t, inv.calls, 2)
		assert.Equal(t, "linear_create_issue", inv.calls[0].ToolName)
		assert.Equal(t, "notion_create_page", inv.calls[1].ToolName)
	})

	t.Run("llm task summarizes dependency outputs", func(t *testing.T) {
		inv := newScriptedInvoker()
		inv.enqueue("linear_create_issue", models.ToolResult{OK: true, Data: map[string]any{"id": "iss-1"}})
		stub := &stubLLM{answer: "세 문장 요약입니다."}
		exec := newTestExecutor(t, inv, stub)

		plan := &models.AgentPlan{Tasks: []models.AgentTask{
			{ID: "t1", TaskType: models.TaskTypeTool, ToolName: "linear_create_issue",
				Payload: map[string]any{"title": "기획 이슈"}},
			{ID: "t2", TaskType: models.TaskTypeLLM, DependsOn: []string{"t1"},
				Instruction: "결과를 3문장으로 요약해 주세요.",
				Payload:     map[string]any{"sentences": float64(3)}},
			{ID: "t3", TaskType: models.TaskTypeTool, ToolName: "notion_create_page", DependsOn: []string{"t2"},
				Payload: map[string]any{"title": "요약", "content": "$t2.summary"}},
		}}

		result := exec.Execute(context.Background(), sequentialRun(plan))
		require.True(t, result.Success)
		assert.Equal(t, 1, stub.calls)

		creates := inv.callsTo("notion_create_page")
		require.Len(t, creates, 1)
		assert.Equal(t, "세 문장 요약입니다.", creates[0].Payload["content"])
	})

	t.Run("llm task without client", func(t *testing.T) {
		exec := newTestExecutor(t, newScriptedInvoker(), nil)

		plan := &models.AgentPlan{Tasks: []models.AgentTask{
			{ID: "t1", TaskType: models.TaskTypeLLM, Instruction: "요약"},
		}}

		result := exec.Execute(context.Background(), sequentialRun(plan))
		assert.False(t, result.Success)
		assert.Equal(t, string(models.ErrLLMAutofillFailed), result.Artifact("error_code"))
	})

	t.Run("dependency cycle", func(t *testing.T) {
		inv := newScriptedInvoker()
		exec := newTestExecutor(t, inv, nil)

		plan := &models.AgentPlan{Tasks: []models.AgentTask{
			{ID: "a", TaskType: models.TaskTypeTool, ToolName: "notion_create_page", DependsOn: []string{"b"}},
			{ID: "b", TaskType: models.TaskTypeTool, ToolName: "linear_create_issue", DependsOn: []string{"a"}},
		}}

		result := exec.Execute(context.Background(), sequentialRun(plan))
		assert.False(t, result.Success)
		assert.Equal(t, string(models.ErrDSLValidationFailed), result.Artifact("error_code"))
		assert.Empty(t, inv.calls)
	})

	t.Run("tool failure maps the composed code", func(t *testing.T) {
		inv := newScriptedInvoker()
		inv.enqueue("notion_create_page",
			models.ToolResult{ErrorCode: "notion_create_page:not_found|status=404|code=object_not_found"})
		exec := newTestExecutor(t, inv, nil)

		plan := &models.AgentPlan{Tasks: []models.AgentTask{
			{ID: "t1", TaskType: models.TaskTypeTool, ToolName: "notion_create_page",
				Payload: map[string]any{"title": "x"}},
		}}

		result := exec.Execute(context.Background(), sequentialRun(plan))
		assert.False(t, result.Success)
		assert.Equal(t, string(models.ErrNotFound), result.Artifact("error_code"))
		assert.Equal(t, "t1", result.Artifact("failed_step"))
		assert.Equal(t, "terminal", result.Artifact("retry_hint"))

		require.Len(t, result.Steps, 1)
		assert.Equal(t, models.StepFailed, result.Steps[0].Status)
	})
}
