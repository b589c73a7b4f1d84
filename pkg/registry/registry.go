package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrUnknownTool indicates a tool name that is not in any loaded spec.
var ErrUnknownTool = fmt.Errorf("unknown tool")

// Registry serves tool definitions loaded from JSON spec files. Loading is
// lazy and memoised; Reload clears the memo so the next access re-reads
// the directory.
type Registry struct {
	specsDir string

	mu       sync.RWMutex
	loaded   bool
	tools    map[string]*ToolDefinition
	services map[string][]*ToolDefinition
}

// NewRegistry creates a registry over a specs directory. Nothing is read
// until the first accessor runs.
func NewRegistry(specsDir string) *Registry {
	return &Registry{specsDir: specsDir}
}

// specFile mirrors one on-disk tool spec.
type specFile struct {
	Service string `json:"service"`
	Version string `json:"version"`
	BaseURL string `json:"base_url"`
	Auth    *struct {
		RequiredScopes []string `json:"required_scopes"`
	} `json:"auth"`
	Tools []specTool `json:"tools"`
}

type specTool struct {
	ToolName             string            `json:"tool_name"`
	Description          string            `json:"description"`
	Method               string            `json:"method"`
	Path                 string            `json:"path"`
	AdapterFunction      string            `json:"adapter_function"`
	InputSchema          map[string]any    `json:"input_schema"`
	RequiredScopes       []string          `json:"required_scopes"`
	IdempotencyKeyPolicy string            `json:"idempotency_key_policy"`
	ErrorMap             map[string]string `json:"error_map"`
}

// Reload clears the memoised specs; the next accessor re-reads the directory.
func (r *Registry) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = false
	r.tools = nil
	r.services = nil
}

// Load forces spec loading now. Startup calls this to fail fast on an
// invalid spec instead of failing on first use.
func (r *Registry) Load() error {
	return r.ensureLoaded()
}

func (r *Registry) ensureLoaded() error {
	r.mu.RLock()
	loaded := r.loaded
	r.mu.RUnlock()
	if loaded {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded {
		return nil
	}

	tools, services, err := loadSpecs(r.specsDir)
	if err != nil {
		return err
	}
	r.tools = tools
	r.services = services
	r.loaded = true
	return nil
}

func loadSpecs(dir string) (map[string]*ToolDefinition, map[string][]*ToolDefinition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read specs directory %s: %w", dir, err)
	}

	tools := make(map[string]*ToolDefinition)
	services := make(map[string][]*ToolDefinition)

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || name == "schema.json" {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)

	for _, name := range files {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read spec %s: %w", path, err)
		}

		var spec specFile
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, nil, newSpecError(name, "", "", fmt.Errorf("invalid JSON: %w", err))
		}

		defs, err := buildTools(name, &spec)
		if err != nil {
			return nil, nil, err
		}
		for _, def := range defs {
			if _, exists := tools[def.ToolName]; exists {
				return nil, nil, newSpecError(name, def.ToolName, "tool_name", fmt.Errorf("duplicate tool name"))
			}
			tools[def.ToolName] = def
			services[def.Service] = append(services[def.Service], def)
		}
	}

	return tools, services, nil
}

func buildTools(file string, spec *specFile) ([]*ToolDefinition, error) {
	if spec.Service == "" {
		return nil, newSpecError(file, "", "service", fmt.Errorf("required"))
	}
	if spec.Service != strings.ToLower(spec.Service) {
		return nil, newSpecError(file, "", "service", fmt.Errorf("must be lowercase"))
	}
	if spec.Version == "" {
		return nil, newSpecError(file, "", "version", fmt.Errorf("required"))
	}
	if spec.BaseURL == "" {
		return nil, newSpecError(file, "", "base_url", fmt.Errorf("required"))
	}
	if len(spec.Tools) == 0 {
		return nil, newSpecError(file, "", "tools", fmt.Errorf("must not be empty"))
	}

	defs := make([]*ToolDefinition, 0, len(spec.Tools))
	for _, t := range spec.Tools {
		def, err := buildTool(file, spec, &t)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func buildTool(file string, spec *specFile, t *specTool) (*ToolDefinition, error) {
	if t.ToolName == "" {
		return nil, newSpecError(file, "", "tool_name", fmt.Errorf("required"))
	}
	if !strings.HasPrefix(t.ToolName, spec.Service+"_") {
		return nil, newSpecError(file, t.ToolName, "tool_name",
			fmt.Errorf("must start with '%s_'", spec.Service))
	}
	if t.Description == "" {
		return nil, newSpecError(file, t.ToolName, "description", fmt.Errorf("required"))
	}
	method := strings.ToUpper(t.Method)
	if method == "" {
		return nil, newSpecError(file, t.ToolName, "method", fmt.Errorf("required"))
	}
	if !validHTTPMethods[method] {
		return nil, newSpecError(file, t.ToolName, "method", fmt.Errorf("unsupported method %q", t.Method))
	}
	if t.Path == "" {
		return nil, newSpecError(file, t.ToolName, "path", fmt.Errorf("required"))
	}
	if t.AdapterFunction == "" {
		return nil, newSpecError(file, t.ToolName, "adapter_function", fmt.Errorf("required"))
	}
	if t.InputSchema == nil {
		return nil, newSpecError(file, t.ToolName, "input_schema", fmt.Errorf("must be an object"))
	}

	policy := IdempotencyPolicy(t.IdempotencyKeyPolicy)
	if policy == "" {
		policy = IdempotencyNone
	}
	if !policy.IsValid() {
		return nil, newSpecError(file, t.ToolName, "idempotency_key_policy",
			fmt.Errorf("unsupported policy %q", t.IdempotencyKeyPolicy))
	}

	errorMap := t.ErrorMap
	if errorMap == nil {
		errorMap = map[string]string{}
	}

	compiled, err := compileInputSchema(t.ToolName, t.InputSchema)
	if err != nil {
		return nil, newSpecError(file, t.ToolName, "input_schema", err)
	}

	return &ToolDefinition{
		Service:         spec.Service,
		ToolName:        t.ToolName,
		Description:     t.Description,
		HTTPMethod:      method,
		PathTemplate:    t.Path,
		BaseURL:         spec.BaseURL,
		AdapterFunction: t.AdapterFunction,
		InputSchema:     t.InputSchema,
		RequiredScopes:  t.RequiredScopes,
		IdempotencyKey:  policy,
		ErrorMap:        errorMap,
		compiled:        compiled,
	}, nil
}

func compileInputSchema(toolName string, schema map[string]any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to encode input_schema: %w", err)
	}
	compiled, err := jsonschema.CompileString(toolName+".input_schema.json", string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to compile input_schema: %w", err)
	}
	return compiled, nil
}

// ListServices returns the sorted service identifiers with at least one tool.
func (r *Registry) ListServices() ([]string, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.services))
	for svc := range r.services {
		names = append(names, svc)
	}
	sort.Strings(names)
	return names, nil
}

// ListTools returns every tool, or the tools of one service when service
// is non-empty. Order is spec-file order within a service.
func (r *Registry) ListTools(service string) ([]*ToolDefinition, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if service != "" {
		return append([]*ToolDefinition(nil), r.services[service]...), nil
	}

	services := make([]string, 0, len(r.services))
	for svc := range r.services {
		services = append(services, svc)
	}
	sort.Strings(services)

	var all []*ToolDefinition
	for _, svc := range services {
		all = append(all, r.services[svc]...)
	}
	return all, nil
}

// GetTool returns the definition for a tool name.
func (r *Registry) GetTool(name string) (*ToolDefinition, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return def, nil
}

// Has reports whether a tool name is registered.
func (r *Registry) Has(name string) bool {
	if err := r.ensureLoaded(); err != nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tools[name]
	return ok
}

// ListAvailableTools returns the tools whose service is connected and whose
// required scopes are covered by the user's granted scopes for that service.
// Tools without required scopes pass unconditionally. A nil grantedScopes
// map skips scope filtering entirely.
func (r *Registry) ListAvailableTools(connectedServices []string, grantedScopes map[string][]string) ([]*ToolDefinition, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	connected := make(map[string]bool, len(connectedServices))
	for _, svc := range connectedServices {
		connected[strings.ToLower(svc)] = true
	}

	var available []*ToolDefinition
	services := make([]string, 0, len(r.services))
	for svc := range r.services {
		services = append(services, svc)
	}
	sort.Strings(services)

	for _, svc := range services {
		if !connected[svc] {
			continue
		}
		for _, def := range r.services[svc] {
			if grantedScopes != nil && !scopesCovered(def.RequiredScopes, grantedScopes[svc]) {
				continue
			}
			available = append(available, def)
		}
	}
	return available, nil
}

// ListLLMTools projects every tool into the catalog shape LLM providers
// consume.
func (r *Registry) ListLLMTools() ([]LLMTool, error) {
	defs, err := r.ListTools("")
	if err != nil {
		return nil, err
	}
	out := make([]LLMTool, 0, len(defs))
	for _, def := range defs {
		out = append(out, LLMTool{
			Name:        def.ToolName,
			Description: def.Description,
			InputSchema: def.InputSchema,
		})
	}
	return out, nil
}

func scopesCovered(required, granted []string) bool {
	if len(required) == 0 {
		return true
	}
	have := make(map[string]bool, len(granted))
	for _, s := range granted {
		have[s] = true
	}
	for _, s := range required {
		if !have[s] {
			return false
		}
	}
	return true
}
