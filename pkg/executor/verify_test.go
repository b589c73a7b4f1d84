package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/models"
)

func verifyRunWith(results map[string]any) *dagRun {
	return &dagRun{results: results}
}

func TestExecuteVerify(t *testing.T) {
	run := verifyRunWith(map[string]any{
		"fanout": map[string]any{
			"item_results": []any{map[string]any{}, map[string]any{}},
			"item_count":   2,
		},
		"create": map[string]any{"id": "page-1", "archived": false},
		"source": map[string]any{"events": []any{"a", "b"}},
	})

	tests := []struct {
		name  string
		rules []string
		code  models.ErrorCode
	}{
		{"count equality holds", []string{"count($fanout.item_results) == count($source.events)"}, ""},
		{"count mismatch", []string{"count($fanout.item_results) == 3"}, models.ErrVerifyCountMismatch},
		{"numeric comparisons", []string{"$fanout.item_count >= 1", "$fanout.item_count < 50"}, ""},
		{"string inequality", []string{`$create.id != ""`}, ""},
		{"boolean literal", []string{"$create.archived == false"}, ""},
		{"truthy bare operand", []string{"$create.id"}, ""},
		{"falsy bare operand", []string{"$create.archived"}, models.ErrVerifyCountMismatch},
		{"rule names its own code", []string{"TOOL_FAILED: $fanout.item_count == 9"}, models.ErrorCode("TOOL_FAILED")},
		{"first false rule wins", []string{"$fanout.item_count == 2", "$fanout.item_count == 9"}, models.ErrVerifyCountMismatch},
		{"count over non-array", []string{"count($create.id) == 1"}, models.ErrDSLValidationFailed},
		{"unresolvable reference", []string{"$ghost.n == 1"}, models.ErrDSLRefNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &models.DAGNode{ID: "v1", Type: models.NodeTypeVerify, Rules: tt.rules}
			err := run.executeVerify(node)
			if tt.code == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, "v1", err.Node)
		})
	}
}
