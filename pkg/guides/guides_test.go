package guides

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/config"
)

const notionGuide = `# Notion API Guide

General notes about the Notion API.

## Planning

Prefer data_source_query for lookups.
Page parents must be UUIDs.

## Rate limits

3 requests per second.
`

func testLoader(t *testing.T) *Loader {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notion.md"), []byte(notionGuide), 0o644))
	return NewLoader(&config.GuidesConfig{Dir: dir, CacheTTL: time.Minute})
}

func TestGuide(t *testing.T) {
	loader := testLoader(t)

	t.Run("existing guide", func(t *testing.T) {
		content, ok := loader.Guide("notion")
		require.True(t, ok)
		assert.Contains(t, content, "Notion API Guide")
	})

	t.Run("missing guide is not an error", func(t *testing.T) {
		_, ok := loader.Guide("linear")
		assert.False(t, ok)
	})

	t.Run("empty service", func(t *testing.T) {
		_, ok := loader.Guide("")
		assert.False(t, ok)
	})
}

func TestSection(t *testing.T) {
	loader := testLoader(t)

	t.Run("section body stops at the next header", func(t *testing.T) {
		body, ok := loader.Section("notion", "planning")
		require.True(t, ok)
		assert.Contains(t, body, "data_source_query")
		assert.NotContains(t, body, "Rate limits")
	})

	t.Run("header match is case-insensitive contains", func(t *testing.T) {
		body, ok := loader.Section("notion", "rate")
		require.True(t, ok)
		assert.Contains(t, body, "3 requests")
	})

	t.Run("unknown header", func(t *testing.T) {
		_, ok := loader.Section("notion", "authentication")
		assert.False(t, ok)
	})
}

func TestPlanningContext(t *testing.T) {
	loader := testLoader(t)

	t.Run("prefers the planning section", func(t *testing.T) {
		ctx, ok := loader.PlanningContext("notion")
		require.True(t, ok)
		assert.Contains(t, ctx, "data_source_query")
		assert.NotContains(t, ctx, "General notes")
	})

	t.Run("whole guide when no planning section", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "linear.md"),
			[]byte("# Linear\n\nIssues need a team id.\n"), 0o644))
		loader := NewLoader(&config.GuidesConfig{Dir: dir})
		ctx, ok := loader.PlanningContext("linear")
		require.True(t, ok)
		assert.Contains(t, ctx, "team id")
	})
}

func TestCacheServesStaleFileWithinTTL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notion.md")
	require.NoError(t, os.WriteFile(path, []byte("# v1\n"), 0o644))

	loader := NewLoader(&config.GuidesConfig{Dir: dir, CacheTTL: time.Hour})
	first, ok := loader.Guide("notion")
	require.True(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("# v2\n"), 0o644))
	second, ok := loader.Guide("notion")
	require.True(t, ok)
	assert.Equal(t, first, second)
}
