package policy

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/registry"
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	dir := t.TempDir()

	spec := map[string]any{
		"service":  "notion",
		"version":  "2024-06",
		"base_url": "https://api.notion.com/v1",
		"tools": []map[string]any{
			{
				"tool_name":        "notion_create_page",
				"description":      "Create a page",
				"method":           "POST",
				"path":             "/pages",
				"adapter_function": "notion.create_page",
				"input_schema":     map[string]any{"type": "object"},
				"required_scopes":  []any{"pages.write"},
			},
			{
				"tool_name":        "notion_get_page",
				"description":      "Fetch a page",
				"method":           "GET",
				"path":             "/pages/{page_id}",
				"adapter_function": "notion.get_page",
				"input_schema":     map[string]any{"type": "object"},
			},
			{
				"tool_name":        "notion_delete_block",
				"description":      "Delete a block",
				"method":           "DELETE",
				"path":             "/blocks/{block_id}",
				"adapter_function": "notion.delete_block",
				"input_schema":     map[string]any{"type": "object"},
			},
		},
	}
	google := map[string]any{
		"service":  "google",
		"version":  "v3",
		"base_url": "https://www.googleapis.com/calendar/v3",
		"tools": []map[string]any{
			{
				"tool_name":        "google_calendar_list_events",
				"description":      "List calendar events",
				"method":           "GET",
				"path":             "/calendars/{calendar_id}/events",
				"adapter_function": "google.calendar_list_events",
				"input_schema":     map[string]any{"type": "object"},
				"required_scopes":  []any{"calendar.read"},
			},
		},
	}

	for name, s := range map[string]map[string]any{"notion.json": spec, "google.json": google} {
		data, err := json.Marshal(s)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	return registry.NewRegistry(dir)
}

func TestComputeProfile(t *testing.T) {
	reg := newTestRegistry(t)

	t.Run("unconnected services dropped", func(t *testing.T) {
		profile, err := Compute(reg, []string{"notion"}, map[string][]string{"notion": {"pages.write"}}, nil)
		require.NoError(t, err)
		assert.NotContains(t, profile.EnabledAPIIDs, "google_calendar_list_events")
		assert.NotContains(t, profile.BlockedAPIIDs, "google_calendar_list_events")
	})

	t.Run("tenant blocklist wins over everything", func(t *testing.T) {
		policy := &config.PolicyConfig{
			Tenant: config.TenantPolicy{BlockedTools: []string{"notion_get_page"}},
		}
		profile, err := Compute(reg, []string{"notion"}, map[string][]string{"notion": {"pages.write"}}, policy)
		require.NoError(t, err)
		assert.Contains(t, profile.BlockedAPIIDs, "notion_get_page")
		assert.Contains(t, profile.BlockedReason, BlockedAPI{APIID: "notion_get_page", Reason: ReasonTenantBlocked})
	})

	t.Run("missing scope blocks", func(t *testing.T) {
		profile, err := Compute(reg, []string{"notion"}, map[string][]string{"notion": {}}, nil)
		require.NoError(t, err)
		assert.Contains(t, profile.BlockedReason, BlockedAPI{APIID: "notion_create_page", Reason: ReasonMissingScope})
		// No required scopes → passes regardless of grants
		assert.Contains(t, profile.EnabledAPIIDs, "notion_get_page")
	})

	t.Run("google scope alias accepted", func(t *testing.T) {
		profile, err := Compute(reg, []string{"google"}, map[string][]string{
			"google": {"https://www.googleapis.com/auth/calendar.readonly"},
		}, nil)
		require.NoError(t, err)
		assert.Contains(t, profile.EnabledAPIIDs, "google_calendar_list_events")
	})

	t.Run("risk gate blocks destructive tools", func(t *testing.T) {
		profile, err := Compute(reg, []string{"notion"}, map[string][]string{"notion": {"pages.write"}}, nil)
		require.NoError(t, err)
		assert.Contains(t, profile.BlockedReason, BlockedAPI{APIID: "notion_delete_block", Reason: ReasonRiskBlocked})

		allowed := &config.PolicyConfig{Risk: config.RiskPolicy{AllowHighRisk: true}}
		profile, err = Compute(reg, []string{"notion"}, map[string][]string{"notion": {"pages.write"}}, allowed)
		require.NoError(t, err)
		assert.Contains(t, profile.EnabledAPIIDs, "notion_delete_block")
	})

	t.Run("enabled ids sorted", func(t *testing.T) {
		profile, err := Compute(reg, []string{"notion", "google"}, map[string][]string{
			"notion": {"pages.write"},
			"google": {"calendar.read"},
		}, &config.PolicyConfig{Risk: config.RiskPolicy{AllowHighRisk: true}})
		require.NoError(t, err)
		assert.True(t, sortedStrings(profile.EnabledAPIIDs), "enabled_api_ids must be sorted: %v", profile.EnabledAPIIDs)
	})
}

func sortedStrings(values []string) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}
