// Package slots canonicalises and validates the named arguments of an
// action. Slot schemas are data: a built-in table plus an optional JSON
// override file merged at init.
package slots

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ValidationRule constrains one slot value. Type is one of string,
// integer, boolean; the bound fields apply per type.
type ValidationRule struct {
	Type      string   `json:"type"`
	MinLength *int     `json:"min_length,omitempty"`
	MaxLength *int     `json:"max_length,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Min       *int     `json:"min,omitempty"`
	Max       *int     `json:"max,omitempty"`
	Enum      []any    `json:"enum,omitempty"`

	compiled *regexp.Regexp
}

// ActionSchema declares the slot surface of one action id.
type ActionSchema struct {
	RequiredSlots   []string                   `json:"required_slots"`
	OptionalSlots   []string                   `json:"optional_slots,omitempty"`
	AutoFillSlots   []string                   `json:"auto_fill_slots,omitempty"`
	AskOrder        []string                   `json:"ask_order,omitempty"`
	Aliases         map[string][]string        `json:"aliases,omitempty"`
	ValidationRules map[string]*ValidationRule `json:"validation_rules,omitempty"`

	aliasToCanonical map[string]string
}

// Normalizer maps slot keys to canonical names and validates values per
// action. Immutable after New.
type Normalizer struct {
	schemas map[string]*ActionSchema
}

// New builds a normalizer from the built-in action schemas, merging in
// the override file when given (override actions replace built-ins with
// the same id).
func New(overrideFile string) (*Normalizer, error) {
	schemas := builtinActionSchemas()

	if overrideFile != "" {
		data, err := os.ReadFile(overrideFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read slots override %s: %w", overrideFile, err)
		}
		var override map[string]*ActionSchema
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("invalid slots override %s: %w", overrideFile, err)
		}
		for action, schema := range override {
			schemas[action] = schema
		}
	}

	for action, schema := range schemas {
		if err := schema.compile(); err != nil {
			return nil, fmt.Errorf("action %s: %w", action, err)
		}
	}

	return &Normalizer{schemas: schemas}, nil
}

// Schema returns the schema for an action, or nil when unknown.
func (n *Normalizer) Schema(action string) *ActionSchema {
	return n.schemas[action]
}

func (s *ActionSchema) compile() error {
	s.aliasToCanonical = make(map[string]string)
	for canonical, aliases := range s.Aliases {
		for _, alias := range aliases {
			s.aliasToCanonical[alias] = canonical
		}
	}
	for slot, rule := range s.ValidationRules {
		if rule.Pattern != "" {
			compiled, err := regexp.Compile(rule.Pattern)
			if err != nil {
				return fmt.Errorf("slot %s: invalid pattern: %w", slot, err)
			}
			rule.compiled = compiled
		}
	}
	return nil
}

// Normalize maps every slot key through the alias table to its canonical
// form. When both a canonical key and one of its aliases are present, the
// canonical value wins and the alias is dropped. Unknown actions pass
// slots through untouched.
func (n *Normalizer) Normalize(action string, slots map[string]any) map[string]any {
	out := make(map[string]any, len(slots))
	schema := n.schemas[action]
	if schema == nil {
		for k, v := range slots {
			out[k] = v
		}
		return out
	}

	// Canonical keys first so an alias never overwrites them.
	for k, v := range slots {
		if _, isAlias := schema.aliasToCanonical[k]; !isAlias {
			out[k] = v
		}
	}
	for k, v := range slots {
		canonical, isAlias := schema.aliasToCanonical[k]
		if !isAlias {
			continue
		}
		if _, exists := out[canonical]; !exists {
			out[canonical] = v
		}
	}
	return out
}

// Validate normalizes slots and reports the missing required slots (in
// ask_order) plus per-slot rule violations as "slot:rule" or
// "slot:rule:bound" codes.
func (n *Normalizer) Validate(action string, slots map[string]any) (map[string]any, []string, []string) {
	normalized := n.Normalize(action, slots)
	schema := n.schemas[action]
	if schema == nil {
		return normalized, nil, nil
	}

	var missing []string
	for _, slot := range orderSlots(schema.RequiredSlots, schema.AskOrder) {
		if isEmpty(normalized[slot]) {
			missing = append(missing, slot)
		}
	}

	var errs []string
	for _, slot := range append(append([]string(nil), schema.RequiredSlots...), schema.OptionalSlots...) {
		value, ok := normalized[slot]
		if !ok || isEmpty(value) {
			continue
		}
		rule := schema.ValidationRules[slot]
		if rule == nil {
			continue
		}
		errs = append(errs, checkRule(slot, rule, value)...)
	}

	return normalized, missing, errs
}

// orderSlots returns required slots sorted by their position in askOrder;
// slots absent from askOrder keep their declared order after the ordered ones.
func orderSlots(required, askOrder []string) []string {
	if len(askOrder) == 0 {
		return required
	}
	requiredSet := make(map[string]bool, len(required))
	for _, slot := range required {
		requiredSet[slot] = true
	}

	var ordered []string
	seen := make(map[string]bool)
	for _, slot := range askOrder {
		if requiredSet[slot] && !seen[slot] {
			ordered = append(ordered, slot)
			seen[slot] = true
		}
	}
	for _, slot := range required {
		if !seen[slot] {
			ordered = append(ordered, slot)
		}
	}
	return ordered
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func checkRule(slot string, rule *ValidationRule, value any) []string {
	switch rule.Type {
	case "string":
		return checkStringRule(slot, rule, value)
	case "integer":
		return checkIntegerRule(slot, rule, value)
	case "boolean":
		if _, ok := value.(bool); !ok {
			return []string{slot + ":type"}
		}
		return nil
	default:
		return nil
	}
}

func checkStringRule(slot string, rule *ValidationRule, value any) []string {
	s, ok := value.(string)
	if !ok {
		return []string{slot + ":type"}
	}

	var errs []string
	runes := len([]rune(s))
	if rule.MinLength != nil && runes < *rule.MinLength {
		errs = append(errs, fmt.Sprintf("%s:min_length:%d", slot, *rule.MinLength))
	}
	if rule.MaxLength != nil && runes > *rule.MaxLength {
		errs = append(errs, fmt.Sprintf("%s:max_length:%d", slot, *rule.MaxLength))
	}
	if rule.compiled != nil && !rule.compiled.MatchString(s) {
		errs = append(errs, slot+":pattern")
	}
	if len(rule.Enum) > 0 && !enumContains(rule.Enum, s) {
		errs = append(errs, slot+":enum")
	}
	return errs
}

func checkIntegerRule(slot string, rule *ValidationRule, value any) []string {
	i, ok := asInteger(value)
	if !ok {
		return []string{slot + ":type"}
	}

	var errs []string
	if rule.Min != nil && i < *rule.Min {
		errs = append(errs, fmt.Sprintf("%s:min:%d", slot, *rule.Min))
	}
	if rule.Max != nil && i > *rule.Max {
		errs = append(errs, fmt.Sprintf("%s:max:%d", slot, *rule.Max))
	}
	if len(rule.Enum) > 0 && !enumContains(rule.Enum, i) {
		errs = append(errs, slot+":enum")
	}
	return errs
}

// asInteger accepts native integers and integral floats (JSON numbers).
// Booleans are never integers.
func asInteger(v any) (int, bool) {
	switch n := v.(type) {
	case bool:
		return 0, false
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func enumContains(enum []any, value any) bool {
	for _, e := range enum {
		switch want := e.(type) {
		case string:
			if s, ok := value.(string); ok && s == want {
				return true
			}
		default:
			if wantInt, ok := asInteger(e); ok {
				if gotInt, isInt := asInteger(value); isInt && gotInt == wantInt {
					return true
				}
			}
		}
	}
	return false
}
