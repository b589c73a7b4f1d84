package slots

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n, err := New("")
	require.NoError(t, err)
	return n
}

func TestNormalize(t *testing.T) {
	n := newTestNormalizer(t)

	t.Run("alias maps to canonical", func(t *testing.T) {
		out := n.Normalize("notion.page_create", map[string]any{
			"page_title": "주간 회의록",
			"body":       "안건 정리",
		})
		assert.Equal(t, "주간 회의록", out["title"])
		assert.Equal(t, "안건 정리", out["content"])
		assert.NotContains(t, out, "page_title")
		assert.NotContains(t, out, "body")
	})

	t.Run("canonical wins over alias", func(t *testing.T) {
		out := n.Normalize("notion.page_create", map[string]any{
			"title":      "canonical",
			"page_title": "alias",
		})
		assert.Equal(t, "canonical", out["title"])
		assert.NotContains(t, out, "page_title")
	})

	t.Run("unknown action passes through", func(t *testing.T) {
		in := map[string]any{"whatever": 1}
		out := n.Normalize("nope.action", in)
		assert.Equal(t, in, out)
	})

	t.Run("idempotent", func(t *testing.T) {
		in := map[string]any{"page_title": "x", "내용": "y", "extra": true}
		once := n.Normalize("notion.page_create", in)
		twice := n.Normalize("notion.page_create", once)
		assert.Equal(t, once, twice)
	})
}

func TestValidate(t *testing.T) {
	n := newTestNormalizer(t)

	t.Run("missing required in ask order", func(t *testing.T) {
		_, missing, errs := n.Validate("notion.block_append", map[string]any{})
		assert.Equal(t, []string{"page_id", "content"}, missing)
		assert.Empty(t, errs)
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		_, missing, _ := n.Validate("notion.page_create", map[string]any{"title": "  "})
		assert.Equal(t, []string{"title"}, missing)
	})

	t.Run("pattern violation", func(t *testing.T) {
		_, _, errs := n.Validate("notion.data_source_query", map[string]any{
			"data_source_id": "not-a-uuid",
		})
		assert.Contains(t, errs, "data_source_id:pattern")
	})

	t.Run("integer bounds", func(t *testing.T) {
		_, _, errs := n.Validate("notion.data_source_query", map[string]any{
			"data_source_id": "12345678-1234-1234-1234-1234567890ab",
			"page_size":      200,
		})
		assert.Equal(t, []string{"page_size:max:50"}, errs)
	})

	t.Run("enum violation", func(t *testing.T) {
		_, _, errs := n.Validate("linear.issue_create", map[string]any{
			"title":    "로그인 버그",
			"priority": 9,
		})
		assert.Equal(t, []string{"priority:enum"}, errs)
	})

	t.Run("boolean is not an integer", func(t *testing.T) {
		_, _, errs := n.Validate("linear.issue_create", map[string]any{
			"title":    "로그인 버그",
			"priority": true,
		})
		assert.Equal(t, []string{"priority:type"}, errs)
	})

	t.Run("json float is an integer when integral", func(t *testing.T) {
		_, _, errs := n.Validate("linear.issue_create", map[string]any{
			"title":    "로그인 버그",
			"priority": float64(2),
		})
		assert.Empty(t, errs)
	})

	t.Run("aliased keys validate against canonical rules", func(t *testing.T) {
		normalized, missing, errs := n.Validate("linear.issue_create", map[string]any{
			"issue_title": "구글 로그인 구현",
			"우선순위":        2,
		})
		assert.Empty(t, missing)
		assert.Empty(t, errs)
		assert.Equal(t, "구글 로그인 구현", normalized["title"])
		assert.Equal(t, 2, normalized["priority"])
	})
}

func TestOverrideFile(t *testing.T) {
	dir := t.TempDir()
	override := `{
		"spotify.playlist_create": {
			"required_slots": ["name"],
			"ask_order": ["name"],
			"validation_rules": {
				"name": {"type": "string", "min_length": 1, "max_length": 100}
			}
		},
		"notion.page_create": {
			"required_slots": ["title", "parent_page_id"],
			"ask_order": ["parent_page_id", "title"]
		}
	}`
	path := filepath.Join(dir, "slots.json")
	require.NoError(t, os.WriteFile(path, []byte(override), 0o644))

	n, err := New(path)
	require.NoError(t, err)

	t.Run("new action added", func(t *testing.T) {
		_, missing, _ := n.Validate("spotify.playlist_create", map[string]any{})
		assert.Equal(t, []string{"name"}, missing)
	})

	t.Run("override replaces builtin", func(t *testing.T) {
		_, missing, _ := n.Validate("notion.page_create", map[string]any{})
		assert.Equal(t, []string{"parent_page_id", "title"}, missing)
	})
}
