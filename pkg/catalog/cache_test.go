package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogID(t *testing.T) {
	t.Run("stable across key order", func(t *testing.T) {
		a, err := CatalogID(map[string]any{
			"enabled": []any{"notion_create_page", "linear_create_issue"},
			"user":    "u1",
			"nested":  map[string]any{"b": 2, "a": 1},
		})
		require.NoError(t, err)
		b, err := CatalogID(map[string]any{
			"nested":  map[string]any{"a": 1, "b": 2},
			"user":    "u1",
			"enabled": []any{"notion_create_page", "linear_create_issue"},
		})
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("id shape", func(t *testing.T) {
		id, err := CatalogID(map[string]any{"x": 1})
		require.NoError(t, err)
		assert.Regexp(t, `^catalog_[0-9a-f]{20}$`, id)
	})

	t.Run("different payloads differ", func(t *testing.T) {
		a, err := CatalogID(map[string]any{"x": 1})
		require.NoError(t, err)
		b, err := CatalogID(map[string]any{"x": 2})
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestGetOrCreate(t *testing.T) {
	t.Run("create then reuse", func(t *testing.T) {
		cache := New()
		payload := map[string]any{"enabled": []any{"notion_create_page"}}

		id1, created, err := cache.GetOrCreate("u1", payload, 10*time.Minute)
		require.NoError(t, err)
		assert.True(t, created)

		id2, created, err := cache.GetOrCreate("u1", payload, 10*time.Minute)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, id1, id2)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("get returns a copy", func(t *testing.T) {
		cache := New()
		id, _, err := cache.GetOrCreate("u1", map[string]any{"enabled": []any{"a"}}, time.Minute)
		require.NoError(t, err)

		got := cache.Get(id)
		require.NotNil(t, got)
		got["enabled"] = "mutated"

		again := cache.Get(id)
		assert.Equal(t, []any{"a"}, again["enabled"])
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.Nil(t, New().Get("catalog_0000000000000000dead"))
	})
}

func TestExpiry(t *testing.T) {
	cache := New()
	now := time.Now()
	cache.now = func() time.Time { return now }

	id, _, err := cache.GetOrCreate("u1", map[string]any{"x": 1}, time.Minute)
	require.NoError(t, err)

	t.Run("live before expiry", func(t *testing.T) {
		now = now.Add(59 * time.Second)
		assert.NotNil(t, cache.Get(id))
	})

	t.Run("access extends expiry", func(t *testing.T) {
		_, created, err := cache.GetOrCreate("u1", map[string]any{"x": 1}, time.Minute)
		require.NoError(t, err)
		assert.False(t, created)

		now = now.Add(59 * time.Second)
		assert.NotNil(t, cache.Get(id))
	})

	t.Run("swept after expiry", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		assert.Nil(t, cache.Get(id))
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("ttl floored at one minute", func(t *testing.T) {
		id, _, err := cache.GetOrCreate("u1", map[string]any{"y": 2}, time.Second)
		require.NoError(t, err)
		now = now.Add(30 * time.Second)
		assert.NotNil(t, cache.Get(id))
	})
}

func TestInvalidate(t *testing.T) {
	cache := New()
	_, _, err := cache.GetOrCreate("u1", map[string]any{"a": 1}, time.Minute)
	require.NoError(t, err)
	_, _, err = cache.GetOrCreate("u1", map[string]any{"b": 2}, time.Minute)
	require.NoError(t, err)
	otherID, _, err := cache.GetOrCreate("u2", map[string]any{"c": 3}, time.Minute)
	require.NoError(t, err)

	cache.Invalidate("u1")
	assert.Equal(t, 1, cache.Len())
	assert.NotNil(t, cache.Get(otherID))
}
