package executor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/policy"
)

func stepwiseRun(profile *policy.Profile, tasks ...models.StepwiseTask) Run {
	payload := models.StepwisePayload{
		Tasks: tasks,
		Ctx:   models.StepwiseContext{Enabled: true, CatalogID: "catalog_abc"},
	}
	raw := map[string]any{}
	if b, err := json.Marshal(payload); err == nil {
		_ = json.Unmarshal(b, &raw)
	}
	plan := &models.AgentPlan{Tasks: []models.AgentTask{{
		ID:       "stepwise",
		TaskType: models.TaskTypeStepwise,
		Payload:  raw,
	}}}
	return Run{UserID: "u1", Plan: plan, Profile: profile, EventID: "evt-1"}
}

func TestExecuteStepwise(t *testing.T) {
	t.Run("autofilled payloads drive ordered calls", func(t *testing.T) {
		inv := newScriptedInvoker()
		stub := &stubLLM{obj: map[string]any{"title": "회의록 초안"}}
		exec := newTestExecutor(t, inv, stub)

		result := exec.Execute(context.Background(), stepwiseRun(nil,
			models.StepwiseTask{TaskID: "s1", Sentence: "회의록 페이지를 만들어줘", Service: "notion", ToolName: "notion_create_page"},
			models.StepwiseTask{TaskID: "s2", Sentence: "이슈도 등록해줘", Service: "linear", ToolName: "linear_create_issue"},
		))

		require.True(t, result.Success)
		assert.Equal(t, "2단계 파이프라인 실행 완료", result.Summary)
		assert.Equal(t, "STEPWISE_PIPELINE", result.Artifact("router_mode"))
		assert.Equal(t, "catalog_abc", result.Artifact("catalog_id"))
		require.Len(t, inv.calls, 2)
		assert.Equal(t, "notion_create_page", inv.calls[0].ToolName)
		assert.Equal(t, "회의록 초안", inv.calls[0].Payload["title"])
		assert.Equal(t, 2, stub.calls)
	})

	t.Run("autofill may reference prior step outputs", func(t *testing.T) {
		inv := newScriptedInvoker()
		inv.enqueue("notion_create_page", models.ToolResult{OK: true, Data: map[string]any{"id": "page-7"}})
		stub := &stubLLM{obj: map[string]any{"title": "후속", "page_ref": "$s1.id"}}
		exec := newTestExecutor(t, inv, stub)

		result := exec.Execute(context.Background(), stepwiseRun(nil,
			models.StepwiseTask{TaskID: "s1", Sentence: "페이지 생성", Service: "notion", ToolName: "notion_create_page"},
			models.StepwiseTask{TaskID: "s2", Sentence: "이슈 등록", Service: "linear", ToolName: "linear_create_issue"},
		))

		require.True(t, result.Success)
		issues := inv.callsTo("linear_create_issue")
		require.Len(t, issues, 1)
		assert.Equal(t, "page-7", issues[0].Payload["page_ref"])
	})

	t.Run("autofill failure is LLM_AUTOFILL_FAILED", func(t *testing.T) {
		inv := newScriptedInvoker()
		stub := &stubLLM{err: errors.New("provider down")}
		exec := newTestExecutor(t, inv, stub)

		result := exec.Execute(context.Background(), stepwiseRun(nil,
			models.StepwiseTask{TaskID: "s1", Sentence: "페이지 생성", Service: "notion", ToolName: "notion_create_page"},
		))

		assert.False(t, result.Success)
		assert.Equal(t, string(models.ErrLLMAutofillFailed), result.Artifact("error_code"))
		assert.Equal(t, "s1", result.Artifact("failed_step"))
		assert.Empty(t, inv.calls)
	})

	t.Run("disabled tool fails closed", func(t *testing.T) {
		inv := newScriptedInvoker()
		stub := &stubLLM{obj: map[string]any{"title": "x"}}
		exec := newTestExecutor(t, inv, stub)
		profile := &policy.Profile{EnabledAPIIDs: []string{"linear_create_issue"}}

		result := exec.Execute(context.Background(), stepwiseRun(profile,
			models.StepwiseTask{TaskID: "s1", Sentence: "페이지 생성", Service: "notion", ToolName: "notion_create_page"},
		))

		assert.False(t, result.Success)
		assert.Equal(t, string(models.ErrToolAuthError), result.Artifact("error_code"))
		assert.Empty(t, inv.calls)
	})

	t.Run("unknown tool", func(t *testing.T) {
		stub := &stubLLM{obj: map[string]any{}}
		exec := newTestExecutor(t, newScriptedInvoker(), stub)

		result := exec.Execute(context.Background(), stepwiseRun(nil,
			models.StepwiseTask{TaskID: "s1", Sentence: "x", Service: "notion", ToolName: "notion_rename_everything"},
		))

		assert.False(t, result.Success)
		assert.Equal(t, string(models.ErrDSLValidationFailed), result.Artifact("error_code"))
	})

	t.Run("empty task list", func(t *testing.T) {
		exec := newTestExecutor(t, newScriptedInvoker(), &stubLLM{})

		result := exec.Execute(context.Background(), stepwiseRun(nil))
		assert.False(t, result.Success)
		assert.Equal(t, string(models.ErrDSLValidationFailed), result.Artifact("error_code"))
	})
}
