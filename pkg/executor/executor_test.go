package executor

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/llm"
	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/registry"
	"github.com/braid-labs/braid/pkg/tools"
)

// scriptedInvoker records every call and answers from per-tool queues,
// defaulting to a success with a synthetic id.
type scriptedInvoker struct {
	calls     []tools.Call
	responses map[string][]models.ToolResult
}

func newScriptedInvoker() *scriptedInvoker {
	return &scriptedInvoker{responses: map[string][]models.ToolResult{}}
}

func (s *scriptedInvoker) Invoke(_ context.Context, call tools.Call) models.ToolResult {
	s.calls = append(s.calls, call)
	if queue := s.responses[call.ToolName]; len(queue) > 0 {
		res := queue[0]
		s.responses[call.ToolName] = queue[1:]
		return res
	}
	return models.ToolResult{OK: true, Data: map[string]any{"id": call.ToolName + "-id"}}
}

func (s *scriptedInvoker) enqueue(tool string, results ...models.ToolResult) {
	s.responses[tool] = append(s.responses[tool], results...)
}

func (s *scriptedInvoker) callsTo(tool string) []tools.Call {
	var out []tools.Call
	for _, call := range s.calls {
		if call.ToolName == tool {
			out = append(out, call)
		}
	}
	return out
}

// stubLLM answers every Complete with answer and every CompleteJSON with obj.
type stubLLM struct {
	answer string
	obj    map[string]any
	err    error
	calls  int
}

func (s *stubLLM) Complete(_ context.Context, _ llm.CompletionRequest) (string, string, error) {
	s.calls++
	return s.answer, "stub", s.err
}

func (s *stubLLM) CompleteJSON(_ context.Context, _ llm.CompletionRequest) (map[string]any, string, error) {
	s.calls++
	return s.obj, "stub", s.err
}

var executorFixtureSpecs = map[string][]map[string]any{
	"notion": {
		{"tool_name": "notion_create_page", "method": "POST", "path": "/v1/pages"},
		{"tool_name": "notion_update_page", "method": "PATCH", "path": "/v1/pages/{page_id}"},
		{"tool_name": "notion_append_block_children", "method": "PATCH", "path": "/v1/blocks/{block_id}/children"},
	},
	"linear": {
		{"tool_name": "linear_create_issue", "method": "POST", "path": "/graphql"},
		{"tool_name": "linear_update_issue", "method": "POST", "path": "/graphql"},
	},
	"google": {
		{"tool_name": "google_calendar_list_events", "method": "GET", "path": "/calendar/v3/events"},
	},
}

func executorRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	dir := t.TempDir()
	for service, entries := range executorFixtureSpecs {
		toolEntries := make([]any, 0, len(entries))
		for _, entry := range entries {
			toolEntries = append(toolEntries, map[string]any{
				"tool_name":        entry["tool_name"],
				"description":      entry["tool_name"],
				"method":           entry["method"],
				"path":             entry["path"],
				"adapter_function": entry["tool_name"],
				"input_schema":     map[string]any{"type": "object"},
			})
		}
		spec := map[string]any{
			"service":  service,
			"version":  "1",
			"base_url": "https://" + service + ".example.com",
			"tools":    toolEntries,
		}
		data, err := json.Marshal(spec)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, service+".json"), data, 0o644))
	}
	return registry.NewRegistry(dir)
}

func executorContracts(t *testing.T) *registry.ContractStore {
	t.Helper()
	dir := t.TempDir()
	contract := map[string]any{
		"name":     "notion.page_create",
		"version":  "1.0",
		"summary":  "Create a Notion page",
		"provider": map[string]any{"service": "notion"},
		"autofill": map[string]any{},
		"input_schema": map[string]any{
			"type":       "object",
			"properties": map[string]any{"title": map[string]any{"type": "string"}},
		},
		"output_schema": map[string]any{"type": "object"},
		"examples":      []map[string]any{{"input": map[string]any{"title": "회의록"}}},
		"runtime_tools": []any{"notion_create_page"},
	}
	data, err := json.Marshal(contract)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notion_page_create.json"), data, 0o644))
	return registry.NewContractStore(dir)
}

func newTestExecutor(t *testing.T, inv tools.Invoker, llmClient Summarizer) *Executor {
	t.Helper()
	exec := New(inv, executorRegistry(t), executorContracts(t), llmClient, llmClient, &config.ExecutorConfig{
		ToolTimeoutSec:               5,
		PipelineTimeoutSec:           60,
		StepwiseToolRetryMaxAttempts: 3,
		StepwiseToolRetryBackoffMS:   1,
	})
	exec.sleep = func(time.Duration) {}
	exec.newID = func() string { return "run-fixed" }
	return exec
}

func TestTopoOrder(t *testing.T) {
	t.Run("dependencies first, ties by declaration", func(t *testing.T) {
		order, ok := topoOrder(
			[]string{"c", "a", "b"},
			map[string][]string{"c": {"a", "b"}, "b": {"a"}},
		)
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b", "c"}, order)
	})

	t.Run("cycle", func(t *testing.T) {
		_, ok := topoOrder([]string{"a", "b"}, map[string][]string{"a": {"b"}, "b": {"a"}})
		assert.False(t, ok)
	})

	t.Run("unknown dependency", func(t *testing.T) {
		_, ok := topoOrder([]string{"a"}, map[string][]string{"a": {"ghost"}})
		assert.False(t, ok)
	})
}

func TestRetryInvoke(t *testing.T) {
	t.Run("retries rate limits then succeeds", func(t *testing.T) {
		inv := newScriptedInvoker()
		inv.enqueue("notion_create_page",
			models.ToolResult{ErrorCode: "notion_create_page:TOOL_RATE_LIMITED|status=429"},
			models.ToolResult{ErrorCode: "notion_create_page:TOOL_RATE_LIMITED|status=429"},
			models.ToolResult{OK: true, Data: map[string]any{"id": "page-1"}},
		)
		exec := newTestExecutor(t, inv, nil)

		result, attempts := exec.retryInvoke(context.Background(), tools.Call{ToolName: "notion_create_page"})
		assert.True(t, result.OK)
		assert.Equal(t, 3, attempts)
	})

	t.Run("terminal error is not retried", func(t *testing.T) {
		inv := newScriptedInvoker()
		inv.enqueue("notion_create_page",
			models.ToolResult{ErrorCode: "notion_create_page:not_found|status=404"})
		exec := newTestExecutor(t, inv, nil)

		result, attempts := exec.retryInvoke(context.Background(), tools.Call{ToolName: "notion_create_page"})
		assert.False(t, result.OK)
		assert.Equal(t, 1, attempts)
		assert.Len(t, inv.calls, 1)
	})

	t.Run("attempts are capped", func(t *testing.T) {
		inv := newScriptedInvoker()
		inv.enqueue("notion_create_page",
			models.ToolResult{ErrorCode: "notion_create_page:TOOL_TIMEOUT|status=0"},
			models.ToolResult{ErrorCode: "notion_create_page:TOOL_TIMEOUT|status=0"},
			models.ToolResult{ErrorCode: "notion_create_page:TOOL_TIMEOUT|status=0"},
		)
		exec := newTestExecutor(t, inv, nil)

		result, attempts := exec.retryInvoke(context.Background(), tools.Call{ToolName: "notion_create_page"})
		assert.False(t, result.OK)
		assert.Equal(t, 3, attempts)
	})
}

func TestToolStepError(t *testing.T) {
	tests := []struct {
		name      string
		errorCode string
		want      models.ErrorCode
	}{
		{"composed upstream maps to canonical", "notion_create_page:TOOL_RATE_LIMITED|status=429", models.ErrToolRateLimited},
		{"composed business code", "notion_create_page:not_found|status=404", models.ErrNotFound},
		{"validation prefix", "notion_create_page:VALIDATION_REQUIRED:title", models.ErrValidation},
		{"missing path param", "missing_path_param:page_id", models.ErrValidation},
		{"token missing passes through", "token_missing:notion", models.ErrTokenMissing},
		{"unknown falls back to TOOL_FAILED", "something_odd", models.ErrToolFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stepErr := toolStepError("t1", tt.errorCode)
			assert.Equal(t, tt.want, stepErr.Code)
			assert.Equal(t, "t1", stepErr.Node)
		})
	}
}
