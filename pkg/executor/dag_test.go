package executor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/policy"
)

func dagPayload(t *testing.T, dag models.PipelineDAG) map[string]any {
	t.Helper()
	if dag.Version == "" {
		dag.Version = models.DAGVersion
	}
	raw, err := json.Marshal(dag)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func dagRunFor(t *testing.T, exec *Executor, dag models.PipelineDAG, profile *policy.Profile) *models.AgentExecutionResult {
	t.Helper()
	task := models.AgentTask{
		ID:       "pipeline",
		TaskType: models.TaskTypePipelineDAG,
		Payload:  dagPayload(t, dag),
	}
	run := Run{
		UserID:  "u1",
		Plan:    &models.AgentPlan{Tasks: []models.AgentTask{task}},
		Profile: profile,
		EventID: "evt-1",
	}
	return exec.Execute(context.Background(), run)
}

func TestDAGPlanningGate(t *testing.T) {
	t.Run("cycle fails before any node executes", func(t *testing.T) {
		inv := newScriptedInvoker()
		exec := newTestExecutor(t, inv, nil)

		result := dagRunFor(t, exec, models.PipelineDAG{
			Nodes: []models.DAGNode{
				{ID: "a", Type: models.NodeTypeSkill, Name: "notion_create_page", DependsOn: []string{"b"}},
				{ID: "b", Type: models.NodeTypeSkill, Name: "linear_create_issue", DependsOn: []string{"a"}},
			},
		}, nil)

		assert.False(t, result.Success)
		assert.Equal(t, string(models.ErrDSLValidationFailed), result.Artifact("error_code"))
		assert.Empty(t, inv.calls)
	})

	t.Run("unknown dependency names the node", func(t *testing.T) {
		exec := newTestExecutor(t, newScriptedInvoker(), nil)

		result := dagRunFor(t, exec, models.PipelineDAG{
			Nodes: []models.DAGNode{
				{ID: "a", Type: models.NodeTypeSkill, Name: "notion_create_page", DependsOn: []string{"ghost"}},
			},
		}, nil)

		assert.Equal(t, string(models.ErrDSLRefNotFound), result.Artifact("error_code"))
		assert.Equal(t, "a", result.Artifact("failed_step"))
	})

	t.Run("declared limits above the ceilings are rejected", func(t *testing.T) {
		exec := newTestExecutor(t, newScriptedInvoker(), nil)

		result := dagRunFor(t, exec, models.PipelineDAG{
			Limits: models.DAGLimits{MaxNodes: 7},
			Nodes: []models.DAGNode{
				{ID: "a", Type: models.NodeTypeSkill, Name: "notion_create_page"},
			},
		}, nil)
		assert.Equal(t, string(models.ErrDSLValidationFailed), result.Artifact("error_code"))

		result = dagRunFor(t, exec, models.PipelineDAG{
			Limits: models.DAGLimits{PipelineTimeoutSec: 400},
			Nodes: []models.DAGNode{
				{ID: "a", Type: models.NodeTypeSkill, Name: "notion_create_page"},
			},
		}, nil)
		assert.Equal(t, string(models.ErrPipelineTimeout), result.Artifact("error_code"))
	})

	t.Run("unknown node type", func(t *testing.T) {
		exec := newTestExecutor(t, newScriptedInvoker(), nil)

		result := dagRunFor(t, exec, models.PipelineDAG{
			Nodes: []models.DAGNode{{ID: "a", Type: "mystery", Name: "x"}},
		}, nil)
		assert.Equal(t, string(models.ErrDSLValidationFailed), result.Artifact("error_code"))
	})

	t.Run("policy gate fails closed with TOOL_AUTH_ERROR", func(t *testing.T) {
		inv := newScriptedInvoker()
		exec := newTestExecutor(t, inv, nil)
		profile := &policy.Profile{EnabledAPIIDs: []string{"linear_create_issue"}}

		result := dagRunFor(t, exec, models.PipelineDAG{
			Nodes: []models.DAGNode{
				{ID: "n1", Type: models.NodeTypeSkill, Name: "notion_create_page"},
			},
		}, profile)

		assert.False(t, result.Success)
		assert.Equal(t, string(models.ErrToolAuthError), result.Artifact("error_code"))
		assert.Equal(t, "n1", result.Artifact("failed_step"))
		assert.Empty(t, inv.calls)
	})
}

func TestDAGSkillResolution(t *testing.T) {
	t.Run("skill name resolves through the contract store", func(t *testing.T) {
		inv := newScriptedInvoker()
		exec := newTestExecutor(t, inv, nil)

		result := dagRunFor(t, exec, models.PipelineDAG{
			Nodes: []models.DAGNode{
				{ID: "n1", Type: models.NodeTypeSkill, Name: "notion.page_create",
					Input: map[string]any{"title": "회의록"}},
			},
		}, nil)

		require.True(t, result.Success)
		calls := inv.callsTo("notion_create_page")
		require.Len(t, calls, 1)
		assert.Equal(t, "회의록", calls[0].Payload["title"])
	})
}

func TestDAGHappyPath(t *testing.T) {
	inv := newScriptedInvoker()
	inv.enqueue("google_calendar_list_events", models.ToolResult{OK: true, Data: map[string]any{
		"events": []any{
			map[string]any{"id": "evt-a", "summary": "주간 회의"},
			map[string]any{"id": "evt-b", "summary": "설계 회의"},
		},
	}})
	exec := newTestExecutor(t, inv, nil)

	result := dagRunFor(t, exec, models.PipelineDAG{
		PipelineID: "meeting-minutes",
		Nodes: []models.DAGNode{
			{ID: "source", Type: models.NodeTypeSkill, Name: "google_calendar_list_events"},
			{ID: "fanout", Type: models.NodeTypeForEach, DependsOn: []string{"source"},
				SourceRef: "$source.events", ItemNodeIDs: []string{"create"}},
			{ID: "create", Type: models.NodeTypeSkill, Name: "notion_create_page",
				Input: map[string]any{"title": "$item.summary"}},
			{ID: "check", Type: models.NodeTypeVerify, DependsOn: []string{"fanout"},
				Rules: []string{"$fanout.item_count == 2"}},
		},
	}, nil)

	require.True(t, result.Success)
	assert.Equal(t, "DAG 파이프라인 실행 완료", result.Summary)
	assert.Equal(t, "PIPELINE_DAG", result.Artifact("router_mode"))
	assert.Equal(t, "run-fixed", result.Artifact("pipeline_run_id"))
	assert.Equal(t, string(models.CompensationNotRequired), result.Artifact("compensation_status"))

	creates := inv.callsTo("notion_create_page")
	require.Len(t, creates, 2)
	assert.Equal(t, "주간 회의", creates[0].Payload["title"])
	assert.Equal(t, "설계 회의", creates[1].Payload["title"])

	fanout, ok := result.Artifacts["fanout"].(map[string]any)
	require.True(t, ok)
	items, ok := fanout["item_results"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestDAGMissingReference(t *testing.T) {
	inv := newScriptedInvoker()
	exec := newTestExecutor(t, inv, nil)

	result := dagRunFor(t, exec, models.PipelineDAG{
		Nodes: []models.DAGNode{
			{ID: "n1", Type: models.NodeTypeSkill, Name: "notion_create_page",
				Input: map[string]any{"title": "$n0.title"}},
		},
	}, nil)

	assert.False(t, result.Success)
	assert.Equal(t, string(models.ErrDSLRefNotFound), result.Artifact("error_code"))
	assert.Equal(t, "n1", result.Artifact("failed_step"))
	assert.Empty(t, inv.calls)
}

func TestDAGCompensationCompleted(t *testing.T) {
	inv := newScriptedInvoker()
	inv.enqueue("notion_create_page", models.ToolResult{OK: true, Data: map[string]any{"id": "page-123"}})
	inv.enqueue("linear_create_issue", models.ToolResult{ErrorCode: "linear_create_issue:TOOL_FAILED|status=500"})
	exec := newTestExecutor(t, inv, nil)

	result := dagRunFor(t, exec, models.PipelineDAG{
		Nodes: []models.DAGNode{
			{ID: "n1", Type: models.NodeTypeSkill, Name: "notion_create_page",
				Input: map[string]any{"title": "회의록"}},
			{ID: "n2", Type: models.NodeTypeSkill, Name: "linear_create_issue", DependsOn: []string{"n1"},
				Input: map[string]any{"title": "후속 작업"}},
		},
	}, nil)

	assert.False(t, result.Success)
	assert.Equal(t, string(models.ErrToolFailed), result.Artifact("error_code"))
	assert.Equal(t, "n2", result.Artifact("failed_step"))
	assert.Equal(t, string(models.CompensationCompleted), result.Artifact("compensation_status"))
	assert.Equal(t, string(models.LinkFailed), result.Artifact("pipeline_links_failure_status"))

	undos := inv.callsTo("notion_update_page")
	require.Len(t, undos, 1)
	assert.Equal(t, "page-123", undos[0].Payload["page_id"])
	assert.Equal(t, true, undos[0].Payload["archived"])
}

func TestDAGCompensationFailed(t *testing.T) {
	inv := newScriptedInvoker()
	inv.enqueue("notion_create_page", models.ToolResult{OK: true, Data: map[string]any{"id": "page-123"}})
	inv.enqueue("linear_create_issue", models.ToolResult{ErrorCode: "linear_create_issue:TOOL_FAILED|status=500"})
	inv.enqueue("notion_update_page", models.ToolResult{ErrorCode: "notion_update_page:not_found|status=404"})
	exec := newTestExecutor(t, inv, nil)

	result := dagRunFor(t, exec, models.PipelineDAG{
		Nodes: []models.DAGNode{
			{ID: "n1", Type: models.NodeTypeSkill, Name: "notion_create_page",
				Input: map[string]any{"title": "회의록"}},
			{ID: "n2", Type: models.NodeTypeSkill, Name: "linear_create_issue", DependsOn: []string{"n1"},
				Input: map[string]any{"title": "후속 작업"}},
		},
	}, nil)

	assert.False(t, result.Success)
	assert.Equal(t, string(models.CompensationFailed), result.Artifact("compensation_status"))
	assert.Equal(t, string(models.LinkManualRequired), result.Artifact("pipeline_links_failure_status"))
}

func TestDAGVerifyFailure(t *testing.T) {
	inv := newScriptedInvoker()
	inv.enqueue("google_calendar_list_events", models.ToolResult{OK: true, Data: map[string]any{
		"events": []any{map[string]any{"id": "evt-a"}},
	}})
	exec := newTestExecutor(t, inv, nil)

	result := dagRunFor(t, exec, models.PipelineDAG{
		Nodes: []models.DAGNode{
			{ID: "source", Type: models.NodeTypeSkill, Name: "google_calendar_list_events"},
			{ID: "v1", Type: models.NodeTypeVerify, DependsOn: []string{"source"},
				Rules: []string{"count($source.events) == 2"}},
		},
	}, nil)

	assert.False(t, result.Success)
	assert.Equal(t, string(models.ErrVerifyCountMismatch), result.Artifact("error_code"))
	assert.Equal(t, "v1", result.Artifact("failed_step"))
}

// Every recorded mutation receives exactly one inverse attempt, newest
// first.
func TestDAGCompensationConservation(t *testing.T) {
	inv := newScriptedInvoker()
	inv.enqueue("google_calendar_list_events", models.ToolResult{OK: true, Data: map[string]any{
		"events": []any{
			map[string]any{"id": "evt-a", "summary": "회의 A"},
			map[string]any{"id": "evt-b", "summary": "회의 B"},
		},
	}})
	inv.enqueue("notion_create_page",
		models.ToolResult{OK: true, Data: map[string]any{"id": "page-a"}},
		models.ToolResult{OK: true, Data: map[string]any{"id": "page-b"}},
	)
	exec := newTestExecutor(t, inv, nil)

	result := dagRunFor(t, exec, models.PipelineDAG{
		Nodes: []models.DAGNode{
			{ID: "source", Type: models.NodeTypeSkill, Name: "google_calendar_list_events"},
			{ID: "fanout", Type: models.NodeTypeForEach, DependsOn: []string{"source"},
				SourceRef: "$source.events", ItemNodeIDs: []string{"create"}},
			{ID: "create", Type: models.NodeTypeSkill, Name: "notion_create_page",
				Input: map[string]any{"title": "$item.summary"}},
			{ID: "check", Type: models.NodeTypeVerify, DependsOn: []string{"fanout"},
				Rules: []string{"$fanout.item_count == 3"}},
		},
	}, nil)

	assert.False(t, result.Success)
	assert.Equal(t, string(models.CompensationCompleted), result.Artifact("compensation_status"))

	undos := inv.callsTo("notion_update_page")
	require.Len(t, undos, 2)
	assert.Equal(t, "page-b", undos[0].Payload["page_id"])
	assert.Equal(t, "page-a", undos[1].Payload["page_id"])
}

func TestDAGForEachFanoutCap(t *testing.T) {
	items := make([]any, 3)
	for i := range items {
		items[i] = map[string]any{"id": "evt", "summary": "회의"}
	}
	inv := newScriptedInvoker()
	inv.enqueue("google_calendar_list_events", models.ToolResult{OK: true, Data: map[string]any{"events": items}})
	exec := newTestExecutor(t, inv, nil)

	result := dagRunFor(t, exec, models.PipelineDAG{
		Limits: models.DAGLimits{MaxFanout: 2},
		Nodes: []models.DAGNode{
			{ID: "source", Type: models.NodeTypeSkill, Name: "google_calendar_list_events"},
			{ID: "fanout", Type: models.NodeTypeForEach, DependsOn: []string{"source"},
				SourceRef: "$source.events", ItemNodeIDs: []string{"create"}},
			{ID: "create", Type: models.NodeTypeSkill, Name: "notion_create_page",
				Input: map[string]any{"title": "$item.summary"}},
		},
	}, nil)

	assert.False(t, result.Success)
	assert.Equal(t, string(models.ErrDSLValidationFailed), result.Artifact("error_code"))
	assert.Equal(t, "fanout", result.Artifact("failed_step"))
	assert.Empty(t, inv.callsTo("notion_create_page"))
}

func TestDAGIdempotentReuseCount(t *testing.T) {
	inv := newScriptedInvoker()
	inv.enqueue("google_calendar_list_events", models.ToolResult{OK: true, Data: map[string]any{
		"events": []any{
			map[string]any{"id": "evt-a", "summary": "회의"},
			map[string]any{"id": "evt-b", "summary": "회의"},
		},
	}})
	exec := newTestExecutor(t, inv, nil)

	result := dagRunFor(t, exec, models.PipelineDAG{
		Nodes: []models.DAGNode{
			{ID: "source", Type: models.NodeTypeSkill, Name: "google_calendar_list_events"},
			{ID: "fanout", Type: models.NodeTypeForEach, DependsOn: []string{"source"},
				SourceRef: "$source.events", ItemNodeIDs: []string{"create"}},
			{ID: "create", Type: models.NodeTypeSkill, Name: "notion_create_page",
				Input: map[string]any{"title": "$item.summary"}},
		},
	}, nil)

	require.True(t, result.Success)
	assert.Equal(t, 1, result.Artifacts["idempotent_success_reuse_count"])
}
