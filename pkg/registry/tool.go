// Package registry loads and serves the immutable tool specs and skill
// contracts the planners and the executor operate on. Both stores are
// loaded lazily once and are read-only afterwards, safe for concurrent
// readers.
package registry

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// IdempotencyPolicy selects how the invoker derives an idempotency key
// for a tool call.
type IdempotencyPolicy string

const (
	// IdempotencyNone omits the idempotency key
	IdempotencyNone IdempotencyPolicy = "none"
	// IdempotencyEventID uses the upstream event id captured in the run
	IdempotencyEventID IdempotencyPolicy = "event_id"
	// IdempotencyHash uses the SHA-256 of the canonical resolved payload
	IdempotencyHash IdempotencyPolicy = "hash"
)

// IsValid checks if the idempotency policy is valid
func (p IdempotencyPolicy) IsValid() bool {
	switch p {
	case IdempotencyNone, IdempotencyEventID, IdempotencyHash:
		return true
	default:
		return false
	}
}

// ToolDefinition is one external API operation. Constructed at registry
// load, immutable thereafter.
type ToolDefinition struct {
	Service          string
	ToolName         string
	Description      string
	HTTPMethod       string
	PathTemplate     string
	BaseURL          string
	AdapterFunction  string
	InputSchema      map[string]any
	RequiredScopes   []string
	IdempotencyKey   IdempotencyPolicy
	ErrorMap         map[string]string
	compiled         *jsonschema.Schema
}

// Schema returns the compiled input schema for payload validation.
func (t *ToolDefinition) Schema() *jsonschema.Schema {
	return t.compiled
}

// IsHighRisk reports whether the tool name marks a destructive operation
// gated by the risk policy.
func (t *ToolDefinition) IsHighRisk() bool {
	name := strings.ToLower(t.ToolName)
	for _, marker := range []string{"delete", "archive", "remove", "purge"} {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// PathParams returns the {name} placeholders of the path template in order.
func (t *ToolDefinition) PathParams() []string {
	var params []string
	rest := t.PathTemplate
	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			return params
		}
		closing := strings.Index(rest[open:], "}")
		if closing < 0 {
			return params
		}
		params = append(params, rest[open+1:open+closing])
		rest = rest[open+closing+1:]
	}
}

// LLMTool is the (name, description, input_schema) projection handed to
// LLM providers as a tool catalog.
type LLMTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// validHTTPMethods are the accepted spec methods.
var validHTTPMethods = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PATCH":  true,
	"DELETE": true,
	"PUT":    true,
}

// SpecError reports an invalid tool spec file with enough context to fix it.
type SpecError struct {
	File  string // Spec file being loaded
	Tool  string // Tool entry inside the file (optional)
	Field string // Offending field
	Err   error  // Underlying error
}

// Error returns formatted error message
func (e *SpecError) Error() string {
	if e.Tool != "" {
		return fmt.Sprintf("spec %s: tool '%s': field '%s': %v", e.File, e.Tool, e.Field, e.Err)
	}
	return fmt.Sprintf("spec %s: field '%s': %v", e.File, e.Field, e.Err)
}

// Unwrap returns the underlying error
func (e *SpecError) Unwrap() error {
	return e.Err
}

func newSpecError(file, tool, field string, err error) *SpecError {
	return &SpecError{File: file, Tool: tool, Field: field, Err: err}
}
