package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownSkill indicates a skill name that is not in any loaded contract.
var ErrUnknownSkill = fmt.Errorf("unknown skill")

// SkillProvider names the service a skill belongs to and the scopes it needs.
type SkillProvider struct {
	Service string   `json:"service"`
	Scopes  []string `json:"scopes,omitempty"`
}

// SkillContract is one named capability composing one or more tools.
// Loaded at store init, immutable thereafter.
type SkillContract struct {
	Name         string           `json:"name"`
	Version      string           `json:"version"`
	Summary      string           `json:"summary"`
	Provider     SkillProvider    `json:"provider"`
	Autofill     map[string]any   `json:"autofill"`
	InputSchema  map[string]any   `json:"input_schema"`
	OutputSchema map[string]any   `json:"output_schema"`
	Examples     []map[string]any `json:"examples"`
	RuntimeTools []string         `json:"runtime_tools"`
}

// Service returns the skill name's prefix (equal to Provider.Service by
// contract invariant).
func (c *SkillContract) Service() string {
	if idx := strings.Index(c.Name, "."); idx >= 0 {
		return c.Name[:idx]
	}
	return c.Name
}

// ContractError reports an invalid skill contract file.
type ContractError struct {
	File  string
	Field string
	Err   error
}

// Error returns formatted error message
func (e *ContractError) Error() string {
	return fmt.Sprintf("contract %s: field '%s': %v", e.File, e.Field, e.Err)
}

// Unwrap returns the underlying error
func (e *ContractError) Unwrap() error {
	return e.Err
}

// ContractStore serves skill contracts loaded from a contracts directory.
// Loading is lazy and memoised, mirroring the tool registry.
type ContractStore struct {
	contractsDir string

	mu     sync.RWMutex
	loaded bool
	skills map[string]*SkillContract
}

// NewContractStore creates a store over a contracts directory.
func NewContractStore(contractsDir string) *ContractStore {
	return &ContractStore{contractsDir: contractsDir}
}

// Load forces contract loading now, failing fast on an invalid file.
func (s *ContractStore) Load() error {
	return s.ensureLoaded()
}

// Reload clears the memoised contracts.
func (s *ContractStore) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.skills = nil
}

func (s *ContractStore) ensureLoaded() error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}

	skills, err := loadContracts(s.contractsDir)
	if err != nil {
		return err
	}
	s.skills = skills
	s.loaded = true
	return nil
}

func loadContracts(dir string) (map[string]*SkillContract, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read contracts directory %s: %w", dir, err)
	}

	skills := make(map[string]*SkillContract)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read contract %s: %w", path, err)
		}

		contract, err := parseContract(name, data)
		if err != nil {
			return nil, err
		}
		if _, exists := skills[contract.Name]; exists {
			return nil, &ContractError{File: name, Field: "name", Err: fmt.Errorf("duplicate skill name %q", contract.Name)}
		}
		skills[contract.Name] = contract
	}
	return skills, nil
}

func parseContract(file string, data []byte) (*SkillContract, error) {
	// Detect missing keys before decoding: absent and zero-valued are
	// different failures in a contract.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ContractError{File: file, Field: "", Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	for _, key := range []string{"name", "version", "summary", "provider", "autofill", "input_schema", "output_schema", "examples", "runtime_tools"} {
		if _, ok := raw[key]; !ok {
			return nil, &ContractError{File: file, Field: key, Err: fmt.Errorf("required")}
		}
	}

	var contract SkillContract
	if err := json.Unmarshal(data, &contract); err != nil {
		return nil, &ContractError{File: file, Field: "", Err: fmt.Errorf("invalid contract: %w", err)}
	}

	if !strings.Contains(contract.Name, ".") {
		return nil, &ContractError{File: file, Field: "name", Err: fmt.Errorf("must be 'service.verb', got %q", contract.Name)}
	}
	if contract.Provider.Service != contract.Service() {
		return nil, &ContractError{File: file, Field: "provider.service",
			Err: fmt.Errorf("%q does not match skill name prefix %q", contract.Provider.Service, contract.Service())}
	}
	if len(contract.RuntimeTools) == 0 {
		return nil, &ContractError{File: file, Field: "runtime_tools", Err: fmt.Errorf("must not be empty")}
	}
	for i, tool := range contract.RuntimeTools {
		if tool == "" {
			return nil, &ContractError{File: file, Field: "runtime_tools", Err: fmt.Errorf("entry %d is empty", i)}
		}
	}
	if err := requireObjectSchema(file, "input_schema", contract.InputSchema); err != nil {
		return nil, err
	}
	if err := requireObjectSchema(file, "output_schema", contract.OutputSchema); err != nil {
		return nil, err
	}
	if len(contract.Examples) == 0 {
		return nil, &ContractError{File: file, Field: "examples", Err: fmt.Errorf("must not be empty")}
	}

	return &contract, nil
}

func requireObjectSchema(file, field string, schema map[string]any) error {
	if schema == nil {
		return &ContractError{File: file, Field: field, Err: fmt.Errorf("must be an object")}
	}
	if t, _ := schema["type"].(string); t != "object" {
		return &ContractError{File: file, Field: field, Err: fmt.Errorf("type must be \"object\"")}
	}
	return nil
}

// Get returns the contract for a skill name.
func (s *ContractStore) Get(name string) (*SkillContract, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	contract, ok := s.skills[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSkill, name)
	}
	return contract, nil
}

// ListByService returns the contracts of one service sorted by name.
func (s *ContractStore) ListByService(service string) ([]*SkillContract, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*SkillContract
	for _, contract := range s.skills {
		if contract.Provider.Service == service {
			out = append(out, contract)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// RuntimeTools returns the ordered runtime tool names of a skill.
func (s *ContractStore) RuntimeTools(name string) ([]string, error) {
	contract, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), contract.RuntimeTools...), nil
}

// RequiredScopes returns the scopes a skill needs: the provider scopes when
// declared, else the union of its runtime tools' required scopes.
func (s *ContractStore) RequiredScopes(name string, reg *Registry) ([]string, error) {
	contract, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	if len(contract.Provider.Scopes) > 0 {
		return append([]string(nil), contract.Provider.Scopes...), nil
	}

	seen := make(map[string]bool)
	var scopes []string
	for _, toolName := range contract.RuntimeTools {
		def, err := reg.GetTool(toolName)
		if err != nil {
			continue
		}
		for _, scope := range def.RequiredScopes {
			if !seen[scope] {
				seen[scope] = true
				scopes = append(scopes, scope)
			}
		}
	}
	return scopes, nil
}

// InferSkill picks the unique skill whose runtime tool set is the smallest
// superset of the selected tool names. A tie between two smallest supersets
// means no unambiguous skill, so none is returned.
func (s *ContractStore) InferSkill(selectedTools []string) (*SkillContract, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(selectedTools) == 0 {
		return nil, nil
	}

	var best *SkillContract
	bestSize := 0
	tied := false

	names := make([]string, 0, len(s.skills))
	for name := range s.skills {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		contract := s.skills[name]
		if !containsAll(contract.RuntimeTools, selectedTools) {
			continue
		}
		size := len(contract.RuntimeTools)
		switch {
		case best == nil || size < bestSize:
			best = contract
			bestSize = size
			tied = false
		case size == bestSize:
			tied = true
		}
	}

	if tied {
		return nil, nil
	}
	return best, nil
}

func containsAll(haystack, needles []string) bool {
	have := make(map[string]bool, len(haystack))
	for _, h := range haystack {
		have[h] = true
	}
	for _, n := range needles {
		if !have[n] {
			return false
		}
	}
	return true
}
