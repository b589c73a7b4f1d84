package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/braid-labs/braid/pkg/registry"
)

// ValidatePayload checks a payload against the tool's compiled input
// schema. Empty return means valid; otherwise a code of the form
// {tool}:VALIDATION_{REQUIRED|TYPE|MIN|MAX|ENUM}:{field}.
func ValidatePayload(tool *registry.ToolDefinition, payload map[string]any) string {
	schema := tool.Schema()
	if schema == nil {
		return ""
	}

	// Roundtrip so the instance uses the JSON type system the validator
	// expects (float64 numbers, no Go ints).
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%s:VALIDATION_TYPE:payload", tool.ToolName)
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Sprintf("%s:VALIDATION_TYPE:payload", tool.ToolName)
	}

	err = schema.Validate(instance)
	if err == nil {
		return ""
	}

	var valErr *jsonschema.ValidationError
	if ve, ok := err.(*jsonschema.ValidationError); ok {
		valErr = ve
	} else {
		return fmt.Sprintf("%s:VALIDATION_TYPE:payload", tool.ToolName)
	}

	leaf := valErr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	kind := validationKind(leaf.KeywordLocation)
	field := validationField(leaf, kind)
	return fmt.Sprintf("%s:VALIDATION_%s:%s", tool.ToolName, kind, field)
}

// validationKind maps the failing schema keyword to the canonical
// violation class.
func validationKind(keywordLocation string) string {
	keyword := keywordLocation
	if idx := strings.LastIndex(keyword, "/"); idx >= 0 {
		keyword = keyword[idx+1:]
	}
	switch keyword {
	case "required":
		return "REQUIRED"
	case "type":
		return "TYPE"
	case "minimum", "exclusiveMinimum", "minLength", "minItems":
		return "MIN"
	case "maximum", "exclusiveMaximum", "maxLength", "maxItems":
		return "MAX"
	case "enum":
		return "ENUM"
	default:
		return "TYPE"
	}
}

// validationField names the offending field. Required violations carry
// the property name in the message ("missing properties: 'title'");
// everything else carries it in the instance location.
func validationField(leaf *jsonschema.ValidationError, kind string) string {
	if kind == "REQUIRED" {
		if field := quotedToken(leaf.Message); field != "" {
			return field
		}
	}
	loc := strings.Trim(leaf.InstanceLocation, "/")
	if loc == "" {
		return "payload"
	}
	return strings.ReplaceAll(loc, "/", ".")
}

func quotedToken(message string) string {
	open := strings.Index(message, "'")
	if open < 0 {
		return ""
	}
	rest := message[open+1:]
	closing := strings.Index(rest, "'")
	if closing < 0 {
		return ""
	}
	return rest[:closing]
}
