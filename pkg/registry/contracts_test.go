package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageCreateContract() map[string]any {
	return map[string]any{
		"name":     "notion.page_create",
		"version":  "1.0",
		"summary":  "Create a Notion page with rendered content",
		"provider": map[string]any{"service": "notion"},
		"autofill": map[string]any{"enabled": true},
		"input_schema": map[string]any{
			"type":       "object",
			"properties": map[string]any{"title": map[string]any{"type": "string"}},
		},
		"output_schema": map[string]any{
			"type":       "object",
			"properties": map[string]any{"page_id": map[string]any{"type": "string"}},
		},
		"examples":      []map[string]any{{"input": map[string]any{"title": "회의록"}}},
		"runtime_tools": []any{"notion_create_page"},
	}
}

func blockAppendContract() map[string]any {
	c := pageCreateContract()
	c["name"] = "notion.block_append"
	c["summary"] = "Append blocks to an existing page"
	c["runtime_tools"] = []any{"notion_create_page", "notion_append_block_children"}
	return c
}

func newTestContractStore(t *testing.T) *ContractStore {
	t.Helper()
	dir := t.TempDir()
	writeSpec(t, dir, "notion_page_create.json", pageCreateContract())
	writeSpec(t, dir, "notion_block_append.json", blockAppendContract())
	return NewContractStore(dir)
}

func TestContractStore(t *testing.T) {
	t.Run("loads and looks up by name", func(t *testing.T) {
		store := newTestContractStore(t)
		contract, err := store.Get("notion.page_create")
		require.NoError(t, err)
		assert.Equal(t, "notion", contract.Provider.Service)
		assert.Equal(t, []string{"notion_create_page"}, contract.RuntimeTools)
	})

	t.Run("lists by service", func(t *testing.T) {
		store := newTestContractStore(t)
		contracts, err := store.ListByService("notion")
		require.NoError(t, err)
		require.Len(t, contracts, 2)
		assert.Equal(t, "notion.block_append", contracts[0].Name)
	})

	t.Run("unknown skill", func(t *testing.T) {
		store := newTestContractStore(t)
		_, err := store.Get("linear.issue_create")
		assert.ErrorIs(t, err, ErrUnknownSkill)
	})
}

func TestContractValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c map[string]any)
		field  string
	}{
		{
			name:   "missing runtime_tools",
			mutate: func(c map[string]any) { delete(c, "runtime_tools") },
			field:  "runtime_tools",
		},
		{
			name:   "empty runtime_tools",
			mutate: func(c map[string]any) { c["runtime_tools"] = []any{} },
			field:  "runtime_tools",
		},
		{
			name:   "name without dot",
			mutate: func(c map[string]any) { c["name"] = "notionpagecreate" },
			field:  "name",
		},
		{
			name:   "provider mismatch",
			mutate: func(c map[string]any) { c["provider"] = map[string]any{"service": "linear"} },
			field:  "provider.service",
		},
		{
			name:   "non-object input schema",
			mutate: func(c map[string]any) { c["input_schema"] = map[string]any{"type": "array"} },
			field:  "input_schema",
		},
		{
			name:   "empty examples",
			mutate: func(c map[string]any) { c["examples"] = []any{} },
			field:  "examples",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			contract := pageCreateContract()
			tt.mutate(contract)
			writeSpec(t, dir, "bad.json", contract)

			err := NewContractStore(dir).Load()
			require.Error(t, err)
			var contractErr *ContractError
			require.ErrorAs(t, err, &contractErr)
			assert.Equal(t, tt.field, contractErr.Field)
		})
	}
}

func TestInferSkill(t *testing.T) {
	store := newTestContractStore(t)

	t.Run("smallest superset wins", func(t *testing.T) {
		skill, err := store.InferSkill([]string{"notion_create_page"})
		require.NoError(t, err)
		require.NotNil(t, skill)
		assert.Equal(t, "notion.page_create", skill.Name)
	})

	t.Run("larger selection narrows the match", func(t *testing.T) {
		skill, err := store.InferSkill([]string{"notion_create_page", "notion_append_block_children"})
		require.NoError(t, err)
		require.NotNil(t, skill)
		assert.Equal(t, "notion.block_append", skill.Name)
	})

	t.Run("no superset yields none", func(t *testing.T) {
		skill, err := store.InferSkill([]string{"linear_create_issue"})
		require.NoError(t, err)
		assert.Nil(t, skill)
	})

	t.Run("tie yields none", func(t *testing.T) {
		dir := t.TempDir()
		a := pageCreateContract()
		a["runtime_tools"] = []any{"notion_create_page", "notion_update_page"}
		b := pageCreateContract()
		b["name"] = "notion.page_upsert"
		b["runtime_tools"] = []any{"notion_create_page", "notion_get_page"}
		writeSpec(t, dir, "a.json", a)
		writeSpec(t, dir, "b.json", b)
		store := NewContractStore(dir)

		skill, err := store.InferSkill([]string{"notion_create_page"})
		require.NoError(t, err)
		assert.Nil(t, skill)
	})
}
