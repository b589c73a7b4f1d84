package executor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/braid-labs/braid/pkg/models"
)

// Verify rules are small comparisons over node outputs, for example
//
//	count($fanout.item_results) == count($source.events)
//	$create.id != ""
//	VERIFY_COUNT_MISMATCH: $fanout.item_count >= 1
//
// An optional uppercase prefix names the error code raised when the rule
// is false; the default is VERIFY_COUNT_MISMATCH.

var ruleCodeRE = regexp.MustCompile(`^([A-Z][A-Z_]*):\s*(.+)$`)

var comparisonOps = []string{"==", "!=", ">=", "<=", ">", "<"}

// executeVerify evaluates every rule against the accumulated node
// results. The first false or unevaluable rule fails the node.
func (r *dagRun) executeVerify(node *models.DAGNode) *models.StepError {
	for _, rule := range node.Rules {
		code := models.ErrVerifyCountMismatch
		expr := strings.TrimSpace(rule)
		if match := ruleCodeRE.FindStringSubmatch(expr); match != nil {
			code = models.ErrorCode(match[1])
			expr = match[2]
		}

		ok, evalErr := r.evalRule(node.ID, expr)
		if evalErr != nil {
			return evalErr
		}
		if !ok {
			return models.NewStepError(code, node.ID, "rule %q is false", rule)
		}
	}
	return nil
}

func (r *dagRun) evalRule(nodeID, expr string) (bool, *models.StepError) {
	for _, op := range comparisonOps {
		idx := strings.Index(expr, op)
		if idx < 0 {
			continue
		}
		lhs, lhsErr := r.evalOperand(nodeID, strings.TrimSpace(expr[:idx]))
		if lhsErr != nil {
			return false, lhsErr
		}
		rhs, rhsErr := r.evalOperand(nodeID, strings.TrimSpace(expr[idx+len(op):]))
		if rhsErr != nil {
			return false, rhsErr
		}
		return compare(lhs, op, rhs), nil
	}

	// bare operand: truthy check
	value, err := r.evalOperand(nodeID, expr)
	if err != nil {
		return false, err
	}
	return truthy(value), nil
}

func (r *dagRun) evalOperand(nodeID, operand string) (any, *models.StepError) {
	switch {
	case strings.HasPrefix(operand, "count(") && strings.HasSuffix(operand, ")"):
		inner, err := r.evalOperand(nodeID, strings.TrimSuffix(strings.TrimPrefix(operand, "count("), ")"))
		if err != nil {
			return nil, err
		}
		arr, ok := inner.([]any)
		if !ok {
			return nil, models.NewStepError(models.ErrDSLValidationFailed, nodeID,
				"count() over non-array %s", operand)
		}
		return float64(len(arr)), nil

	case strings.HasPrefix(operand, "$"):
		return resolveString(nodeID, operand, r.results, nil)

	case strings.HasPrefix(operand, `"`) && strings.HasSuffix(operand, `"`) && len(operand) >= 2:
		return operand[1 : len(operand)-1], nil

	case operand == "true":
		return true, nil
	case operand == "false":
		return false, nil
	case operand == "null":
		return nil, nil
	}

	if n, err := strconv.ParseFloat(operand, 64); err == nil {
		return n, nil
	}
	return nil, models.NewStepError(models.ErrDSLValidationFailed, nodeID,
		"unparseable operand %q", operand)
}

func compare(lhs any, op string, rhs any) bool {
	ln, lok := asNumber(lhs)
	rn, rok := asNumber(rhs)
	if lok && rok {
		switch op {
		case "==":
			return ln == rn
		case "!=":
			return ln != rn
		case ">=":
			return ln >= rn
		case "<=":
			return ln <= rn
		case ">":
			return ln > rn
		case "<":
			return ln < rn
		}
	}

	switch op {
	case "==":
		return lhs == rhs
	case "!=":
		return lhs != rhs
	}
	return false
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case float64:
		return value != 0
	case []any:
		return len(value) > 0
	case map[string]any:
		return len(value) > 0
	}
	return true
}
