package config

import "time"

// RegistryConfig locates the on-disk tool specs, skill contracts, and the
// optional slot-schema override file.
type RegistryConfig struct {
	SpecsDir          string `yaml:"specs_dir"`
	ContractsDir      string `yaml:"contracts_dir"`
	SlotsOverrideFile string `yaml:"slots_override_file,omitempty"`
}

// PendingConfig controls the pending-action (slot collection) store.
type PendingConfig struct {
	Store  PendingStoreMode `yaml:"store"`
	TTLSec int              `yaml:"ttl_sec"`
}

// TTL returns the pending-action lifetime, floored at one minute.
func (p *PendingConfig) TTL() time.Duration {
	sec := p.TTLSec
	if sec < 60 {
		sec = 60
	}
	return time.Duration(sec) * time.Second
}

// CatalogConfig controls the runtime catalog cache.
type CatalogConfig struct {
	DefaultTTLSec int `yaml:"default_ttl_sec"`
}

// ExecutorConfig bounds plan and pipeline execution.
type ExecutorConfig struct {
	MaxSelectedTools             int  `yaml:"max_selected_tools"`
	ToolTimeoutSec               int  `yaml:"tool_timeout_sec"`
	PipelineTimeoutSec           int  `yaml:"pipeline_timeout_sec"`
	StepwiseToolRetryMaxAttempts int  `yaml:"stepwise_tool_retry_max_attempts"`
	StepwiseToolRetryBackoffMS   int  `yaml:"stepwise_tool_retry_backoff_ms"`
	AllowDeleteOperations        bool `yaml:"allow_delete_operations"`
	ForceStepwise                bool `yaml:"force_stepwise"`
}

// AutonomousConfig bounds the choose-next-action loop.
type AutonomousConfig struct {
	MaxTurns     int  `yaml:"max_turns"`
	MaxToolCalls int  `yaml:"max_tool_calls"`
	TimeoutSec   int  `yaml:"timeout_sec"`
	ReplanLimit  int  `yaml:"replan_limit"`
	Strict       bool `yaml:"strict"`
}

// TenantPolicy blocks tools tenant-wide regardless of scopes.
type TenantPolicy struct {
	BlockedTools []string `yaml:"blocked_tools,omitempty"`
}

// RiskPolicy gates high-risk (destructive) tools.
type RiskPolicy struct {
	AllowHighRisk bool `yaml:"allow_high_risk"`
}

// PolicyConfig combines tenant and risk policy for the runtime API profile.
type PolicyConfig struct {
	Tenant TenantPolicy `yaml:"tenant"`
	Risk   RiskPolicy   `yaml:"risk"`
}

// GuidesConfig locates per-service API-guide markdown used as planning context.
type GuidesConfig struct {
	Dir      string        `yaml:"dir"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// MaskingDefaults holds detail-string masking settings. Applied to every
// command/step log detail before DB storage.
type MaskingDefaults struct {
	Enabled      bool   `yaml:"enabled"`
	PatternGroup string `yaml:"pattern_group"`
}

// LLMSelection names which configured providers serve each capability.
// AutofillProvider falls back to PlannerProvider when empty.
type LLMSelection struct {
	PlannerProvider  string `yaml:"planner_provider"`
	FallbackProvider string `yaml:"fallback_provider"`
	AutofillProvider string `yaml:"autofill_provider,omitempty"`
}
