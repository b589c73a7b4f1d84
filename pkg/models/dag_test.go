package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDAGFromPayload(t *testing.T) {
	payload := map[string]any{
		"pipeline_id": "calendar_to_notion",
		"version":     "1.0",
		"limits": map[string]any{
			"max_nodes":            4,
			"max_fanout":           10,
			"max_tool_calls":       40,
			"pipeline_timeout_sec": 120,
		},
		"nodes": []any{
			map[string]any{
				"id":          "n1",
				"type":        "skill",
				"name":        "google.calendar_list",
				"input":       map[string]any{"time_min": "2026-08-24T00:00:00Z"},
				"timeout_sec": 30,
			},
			map[string]any{
				"id":            "n2",
				"type":          "for_each",
				"name":          "per_event",
				"depends_on":    []any{"n1"},
				"source_ref":    "$n1.items",
				"item_node_ids": []any{"n2_1"},
			},
			map[string]any{
				"id":         "n3",
				"type":       "verify",
				"name":       "count_check",
				"depends_on": []any{"n2"},
				"rules":      []any{"$n2.item_count == $n1.meeting_count"},
			},
		},
	}

	dag, err := DAGFromPayload(payload)
	require.NoError(t, err)

	assert.Equal(t, "calendar_to_notion", dag.PipelineID)
	assert.Equal(t, DAGVersion, dag.Version)
	assert.Equal(t, 4, dag.Limits.MaxNodes)
	assert.Equal(t, 120, dag.Limits.PipelineTimeoutSec)
	require.Len(t, dag.Nodes, 3)

	forEach := dag.Node("n2")
	require.NotNil(t, forEach)
	assert.Equal(t, NodeTypeForEach, forEach.Type)
	assert.Equal(t, "$n1.items", forEach.SourceRef)
	assert.Equal(t, []string{"n2_1"}, forEach.ItemNodeIDs)

	verify := dag.Node("n3")
	require.NotNil(t, verify)
	assert.Equal(t, []string{"$n2.item_count == $n1.meeting_count"}, verify.Rules)

	assert.Nil(t, dag.Node("missing"))
}

func TestStepwiseFromPayload(t *testing.T) {
	payload := map[string]any{
		"tasks": []any{
			map[string]any{
				"task_id":   "t1",
				"sentence":  "오늘 회의 일정을 조회해줘",
				"service":   "google",
				"tool_name": "google_calendar_list_events",
			},
		},
		"ctx": map[string]any{"enabled": true, "catalog_id": "catalog_ab12"},
	}

	sp, err := StepwiseFromPayload(payload)
	require.NoError(t, err)
	require.Len(t, sp.Tasks, 1)
	assert.Equal(t, "google_calendar_list_events", sp.Tasks[0].ToolName)
	assert.True(t, sp.Ctx.Enabled)
	assert.Equal(t, "catalog_ab12", sp.Ctx.CatalogID)
}
