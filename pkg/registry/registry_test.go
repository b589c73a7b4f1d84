package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, dir, file string, spec map[string]any) {
	t.Helper()
	data, err := json.Marshal(spec)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), data, 0o644))
}

func notionSpec() map[string]any {
	return map[string]any{
		"service":  "notion",
		"version":  "2024-06",
		"base_url": "https://api.notion.com/v1",
		"tools": []map[string]any{
			{
				"tool_name":        "notion_create_page",
				"description":      "Create a page in a Notion workspace",
				"method":           "POST",
				"path":             "/pages",
				"adapter_function": "notion.create_page",
				"input_schema": map[string]any{
					"type":       "object",
					"properties": map[string]any{"title": map[string]any{"type": "string"}},
					"required":   []any{"title"},
				},
				"required_scopes":        []any{"pages.write"},
				"idempotency_key_policy": "hash",
				"error_map":              map[string]any{"404": "not_found"},
			},
			{
				"tool_name":        "notion_update_page",
				"description":      "Update page properties or archive a page",
				"method":           "PATCH",
				"path":             "/pages/{page_id}",
				"adapter_function": "notion.update_page",
				"input_schema":     map[string]any{"type": "object"},
			},
		},
	}
}

func linearSpec() map[string]any {
	return map[string]any{
		"service":  "linear",
		"version":  "1",
		"base_url": "https://api.linear.app",
		"tools": []map[string]any{
			{
				"tool_name":        "linear_create_issue",
				"description":      "Create a Linear issue",
				"method":           "POST",
				"path":             "/graphql",
				"adapter_function": "linear.create_issue",
				"input_schema":     map[string]any{"type": "object"},
				"required_scopes":  []any{"issues:create"},
			},
		},
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	dir := t.TempDir()
	writeSpec(t, dir, "notion.json", notionSpec())
	writeSpec(t, dir, "linear.json", linearSpec())
	// schema.json must be skipped by the loader
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schema.json"), []byte(`{"not":"a spec"}`), 0o644))
	return NewRegistry(dir)
}

func TestRegistryLoad(t *testing.T) {
	t.Run("loads services and tools", func(t *testing.T) {
		reg := newTestRegistry(t)

		services, err := reg.ListServices()
		require.NoError(t, err)
		assert.Equal(t, []string{"linear", "notion"}, services)

		tools, err := reg.ListTools("notion")
		require.NoError(t, err)
		require.Len(t, tools, 2)
		assert.Equal(t, "notion_create_page", tools[0].ToolName)
	})

	t.Run("every tool name carries its service prefix", func(t *testing.T) {
		reg := newTestRegistry(t)
		services, err := reg.ListServices()
		require.NoError(t, err)
		for _, svc := range services {
			tools, err := reg.ListTools(svc)
			require.NoError(t, err)
			require.NotEmpty(t, tools, "service %s has no tools", svc)
			for _, tool := range tools {
				assert.Equal(t, svc, tool.Service)
				assert.Contains(t, tool.ToolName, svc+"_")
			}
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		reg := newTestRegistry(t)
		def, err := reg.GetTool("notion_update_page")
		require.NoError(t, err)
		assert.Equal(t, IdempotencyNone, def.IdempotencyKey)
		assert.Equal(t, map[string]string{}, def.ErrorMap)
		assert.Equal(t, []string{"page_id"}, def.PathParams())
	})

	t.Run("unknown tool", func(t *testing.T) {
		reg := newTestRegistry(t)
		_, err := reg.GetTool("notion_nope")
		assert.ErrorIs(t, err, ErrUnknownTool)
	})

	t.Run("reload clears memo", func(t *testing.T) {
		dir := t.TempDir()
		writeSpec(t, dir, "notion.json", notionSpec())
		reg := NewRegistry(dir)
		require.NoError(t, reg.Load())

		writeSpec(t, dir, "linear.json", linearSpec())
		services, err := reg.ListServices()
		require.NoError(t, err)
		assert.Equal(t, []string{"notion"}, services)

		reg.Reload()
		services, err = reg.ListServices()
		require.NoError(t, err)
		assert.Equal(t, []string{"linear", "notion"}, services)
	})
}

func TestRegistryValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(spec map[string]any)
		field  string
	}{
		{
			name:   "missing service",
			mutate: func(spec map[string]any) { delete(spec, "service") },
			field:  "service",
		},
		{
			name:   "missing base_url",
			mutate: func(spec map[string]any) { delete(spec, "base_url") },
			field:  "base_url",
		},
		{
			name:   "empty tools",
			mutate: func(spec map[string]any) { spec["tools"] = []map[string]any{} },
			field:  "tools",
		},
		{
			name: "tool name without service prefix",
			mutate: func(spec map[string]any) {
				spec["tools"].([]map[string]any)[0]["tool_name"] = "linear_create_issue"
			},
			field: "tool_name",
		},
		{
			name: "unsupported method",
			mutate: func(spec map[string]any) {
				spec["tools"].([]map[string]any)[0]["method"] = "TRACE"
			},
			field: "method",
		},
		{
			name: "missing adapter_function",
			mutate: func(spec map[string]any) {
				delete(spec["tools"].([]map[string]any)[0], "adapter_function")
			},
			field: "adapter_function",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			spec := notionSpec()
			tt.mutate(spec)
			writeSpec(t, dir, "notion.json", spec)

			err := NewRegistry(dir).Load()
			require.Error(t, err)
			var specErr *SpecError
			require.ErrorAs(t, err, &specErr)
			assert.Equal(t, "notion.json", specErr.File)
			assert.Equal(t, tt.field, specErr.Field)
		})
	}
}

func TestListAvailableTools(t *testing.T) {
	reg := newTestRegistry(t)

	t.Run("filters by connected services", func(t *testing.T) {
		tools, err := reg.ListAvailableTools([]string{"notion"}, nil)
		require.NoError(t, err)
		require.Len(t, tools, 2)
		for _, tool := range tools {
			assert.Equal(t, "notion", tool.Service)
		}
	})

	t.Run("filters by granted scopes", func(t *testing.T) {
		tools, err := reg.ListAvailableTools([]string{"notion"}, map[string][]string{
			"notion": {"pages.read"},
		})
		require.NoError(t, err)
		// create_page needs pages.write; update_page has no required scopes
		require.Len(t, tools, 1)
		assert.Equal(t, "notion_update_page", tools[0].ToolName)
	})

	t.Run("monotone in the connected set", func(t *testing.T) {
		small, err := reg.ListAvailableTools([]string{"notion"}, nil)
		require.NoError(t, err)
		large, err := reg.ListAvailableTools([]string{"notion", "linear"}, nil)
		require.NoError(t, err)

		names := make(map[string]bool)
		for _, tool := range large {
			names[tool.ToolName] = true
		}
		for _, tool := range small {
			assert.True(t, names[tool.ToolName], "tool %s lost when widening the connected set", tool.ToolName)
		}
	})

	t.Run("llm projection", func(t *testing.T) {
		tools, err := reg.ListLLMTools()
		require.NoError(t, err)
		require.Len(t, tools, 3)
		for _, tool := range tools {
			assert.NotEmpty(t, tool.Name)
			assert.NotEmpty(t, tool.Description)
			assert.NotNil(t, tool.InputSchema)
		}
	})
}
