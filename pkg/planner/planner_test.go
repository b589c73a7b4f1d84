package planner

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/guides"
	"github.com/braid-labs/braid/pkg/llm"
	"github.com/braid-labs/braid/pkg/registry"
)

type fixtureTool struct {
	name, description, method, path string
}

var fixtureSpecs = map[string][]fixtureTool{
	"notion": {
		{"notion_search_pages", "Search pages in the workspace", "POST", "/v1/search"},
		{"notion_create_page", "Create a new page", "POST", "/v1/pages"},
		{"notion_update_page", "Update or archive a page", "PATCH", "/v1/pages/{page_id}"},
		{"notion_append_block_children", "Append blocks to a page", "PATCH", "/v1/blocks/{block_id}/children"},
		{"notion_data_source_query", "Query a database data source", "POST", "/v1/databases/{database_id}/query"},
	},
	"linear": {
		{"linear_search_issues", "Search issues by keyword", "POST", "/graphql"},
		{"linear_create_issue", "Create a new issue", "POST", "/graphql"},
		{"linear_update_issue", "Update an existing issue", "POST", "/graphql"},
	},
	"google": {
		{"google_calendar_list_events", "List calendar events", "GET", "/calendar/v3/events"},
	},
}

func fixtureRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	dir := t.TempDir()
	for service, tools := range fixtureSpecs {
		entries := make([]any, 0, len(tools))
		for _, tool := range tools {
			entries = append(entries, map[string]any{
				"tool_name":        tool.name,
				"description":      tool.description,
				"method":           tool.method,
				"path":             tool.path,
				"adapter_function": tool.name,
				"input_schema":     map[string]any{"type": "object"},
			})
		}
		spec := map[string]any{
			"service":  service,
			"version":  "1",
			"base_url": "https://" + service + ".example.com",
			"tools":    entries,
		}
		data, err := json.Marshal(spec)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, service+".json"), data, 0o644))
	}
	return registry.NewRegistry(dir)
}

func emptyGuides(t *testing.T) *guides.Loader {
	t.Helper()
	return guides.NewLoader(&config.GuidesConfig{Dir: t.TempDir()})
}

// scriptedProvider returns canned answers in order, then repeats the last.
type scriptedProvider struct {
	name    string
	answers []string
	err     error
	calls   int
}

func (s *scriptedProvider) Name() string { return s.name }

func (s *scriptedProvider) Complete(_ context.Context, _ llm.CompletionRequest) (string, error) {
	idx := s.calls
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if idx >= len(s.answers) {
		idx = len(s.answers) - 1
	}
	return s.answers[idx], nil
}
