package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/models"
)

func TestResolveRefs(t *testing.T) {
	results := map[string]any{
		"n1": map[string]any{
			"data": map[string]any{
				"pages": []any{
					map[string]any{"id": "p-0"},
					map[string]any{"id": "p-1"},
				},
			},
			"count": float64(2),
		},
	}

	t.Run("nested substitution", func(t *testing.T) {
		input := map[string]any{
			"page_id": "$n1.data.pages.1.id",
			"meta": map[string]any{
				"total": "$n1.count",
				"tags":  []any{"$n1.data.pages.0.id", "fixed"},
			},
		}
		out, err := ResolveRefs("n2", input, results, nil)
		require.Nil(t, err)
		assert.Equal(t, "p-1", out["page_id"])
		meta := out["meta"].(map[string]any)
		assert.Equal(t, float64(2), meta["total"])
		assert.Equal(t, []any{"p-0", "fixed"}, meta["tags"].([]any))
	})

	t.Run("whole objects can be referenced", func(t *testing.T) {
		out, err := ResolveRefs("n2", map[string]any{"all": "$n1.data"}, results, nil)
		require.Nil(t, err)
		assert.Equal(t, results["n1"].(map[string]any)["data"], out["all"])
	})

	t.Run("item binding", func(t *testing.T) {
		item := map[string]any{"summary": "주간 회의"}
		out, err := ResolveRefs("n2", map[string]any{"title": "$item.summary"}, results, item)
		require.Nil(t, err)
		assert.Equal(t, "주간 회의", out["title"])
	})

	t.Run("item outside for_each", func(t *testing.T) {
		_, err := ResolveRefs("n2", map[string]any{"title": "$item.summary"}, results, nil)
		require.NotNil(t, err)
		assert.Equal(t, models.ErrDSLRefNotFound, err.Code)
		assert.Equal(t, "n2", err.Node)
	})

	t.Run("missing node", func(t *testing.T) {
		_, err := ResolveRefs("n2", map[string]any{"x": "$ghost.id"}, results, nil)
		require.NotNil(t, err)
		assert.Equal(t, models.ErrDSLRefNotFound, err.Code)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := ResolveRefs("n2", map[string]any{"x": "$n1.data.nope"}, results, nil)
		require.NotNil(t, err)
		assert.Equal(t, models.ErrDSLRefNotFound, err.Code)
	})

	t.Run("array index out of range", func(t *testing.T) {
		_, err := ResolveRefs("n2", map[string]any{"x": "$n1.data.pages.9.id"}, results, nil)
		require.NotNil(t, err)
		assert.Equal(t, models.ErrDSLRefNotFound, err.Code)
	})

	t.Run("non-reference strings pass through", func(t *testing.T) {
		out, err := ResolveRefs("n2", map[string]any{
			"text":  "price is $100",
			"email": "a@b.c",
		}, results, nil)
		require.Nil(t, err)
		assert.Equal(t, "price is $100", out["text"])
		assert.Equal(t, "a@b.c", out["email"])
	})
}
