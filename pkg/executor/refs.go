// Package executor runs agent plans: classical sequential task lists,
// pipeline DAGs with compensation and verification, and stepwise tool
// pipelines with LLM payload autofill. One interpolation engine serves
// all three modes.
package executor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/braid-labs/braid/pkg/models"
)

// refRE matches a whole-string reference: $node_id followed by an
// optional dotted path. $item binds to the current for_each element.
var refRE = regexp.MustCompile(`^\$([A-Za-z0-9_-]+)((?:\.[A-Za-z0-9_-]+)*)$`)

// ResolveRefs deep-copies input, replacing every string of the form
// $node_id(.path)* with the referenced value from results, and $item
// references with the current iteration element. A missing reference is
// DSL_REF_NOT_FOUND naming the referring node and path.
func ResolveRefs(nodeID string, input map[string]any, results map[string]any, item any) (map[string]any, *models.StepError) {
	resolved, err := resolveValue(nodeID, input, results, item)
	if err != nil {
		return nil, err
	}
	out, ok := resolved.(map[string]any)
	if !ok {
		return nil, models.NewStepError(models.ErrDSLRefNotFound, nodeID, "input is not an object")
	}
	return out, nil
}

func resolveValue(nodeID string, v any, results map[string]any, item any) (any, *models.StepError) {
	switch value := v.(type) {
	case string:
		return resolveString(nodeID, value, results, item)
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, child := range value {
			resolved, err := resolveValue(nodeID, child, results, item)
			if err != nil {
				return nil, err
			}
			out[k] = resolved
		}
		return out, nil
	case []any:
		out := make([]any, len(value))
		for i, child := range value {
			resolved, err := resolveValue(nodeID, child, results, item)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	default:
		return v, nil
	}
}

func resolveString(nodeID, s string, results map[string]any, item any) (any, *models.StepError) {
	match := refRE.FindStringSubmatch(s)
	if match == nil {
		return s, nil
	}

	target := match[1]
	path := splitPath(match[2])

	var root any
	if target == "item" {
		if item == nil {
			return nil, models.NewStepError(models.ErrDSLRefNotFound, nodeID, "$item outside for_each body")
		}
		root = item
	} else {
		r, ok := results[target]
		if !ok {
			return nil, models.NewStepError(models.ErrDSLRefNotFound, nodeID, "reference %s", s)
		}
		root = r
	}

	value, ok := lookupPath(root, path)
	if !ok {
		return nil, models.NewStepError(models.ErrDSLRefNotFound, nodeID, "reference %s", s)
	}
	return value, nil
}

func splitPath(dotted string) []string {
	if dotted == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(dotted, "."), ".")
}

// lookupPath walks object keys and array indexes.
func lookupPath(root any, path []string) (any, bool) {
	current := root
	for _, key := range path {
		switch node := current.(type) {
		case map[string]any:
			v, ok := node[key]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			idx := -1
			if _, err := fmt.Sscanf(key, "%d", &idx); err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}
