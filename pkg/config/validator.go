package config

import (
	"fmt"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: providers → selection → features → component sections.
	// This ensures registries are validated before the sections that reference them.

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateLLMSelection(); err != nil {
		return fmt.Errorf("LLM selection validation failed: %w", err)
	}

	if err := v.validateRolloutFeatures(); err != nil {
		return fmt.Errorf("rollout feature validation failed: %w", err)
	}

	if err := v.validateRegistry(); err != nil {
		return fmt.Errorf("registry validation failed: %w", err)
	}

	if err := v.validatePending(); err != nil {
		return fmt.Errorf("pending store validation failed: %w", err)
	}

	if err := v.validateExecutor(); err != nil {
		return fmt.Errorf("executor validation failed: %w", err)
	}

	if err := v.validateAutonomous(); err != nil {
		return fmt.Errorf("autonomous loop validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if provider.Type == "" {
			return NewValidationError("llm_provider", name, "type", ErrMissingRequiredField)
		}
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("%w: %s", ErrInvalidValue, provider.Type))
		}
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if provider.APIKeyEnv == "" {
			return NewValidationError("llm_provider", name, "api_key_env", ErrMissingRequiredField)
		}
		if provider.TimeoutSec < 0 {
			return NewValidationError("llm_provider", name, "timeout_sec", fmt.Errorf("must not be negative"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateLLMSelection() error {
	sel := v.cfg.LLMSelection()

	if sel.PlannerProvider == "" {
		return NewValidationError("defaults", "llm", "planner_provider", ErrMissingRequiredField)
	}
	if !v.cfg.LLMProviderRegistry.Has(sel.PlannerProvider) {
		return NewValidationError("defaults", "llm", "planner_provider",
			fmt.Errorf("%w: LLM provider '%s' not found", ErrInvalidReference, sel.PlannerProvider))
	}
	if sel.FallbackProvider != "" && !v.cfg.LLMProviderRegistry.Has(sel.FallbackProvider) {
		return NewValidationError("defaults", "llm", "fallback_provider",
			fmt.Errorf("%w: LLM provider '%s' not found", ErrInvalidReference, sel.FallbackProvider))
	}
	if sel.AutofillProvider != "" && !v.cfg.LLMProviderRegistry.Has(sel.AutofillProvider) {
		return NewValidationError("defaults", "llm", "autofill_provider",
			fmt.Errorf("%w: LLM provider '%s' not found", ErrInvalidReference, sel.AutofillProvider))
	}

	return nil
}

func (v *ConfigValidator) validateRolloutFeatures() error {
	for name, feature := range v.cfg.FeatureRegistry.GetAll() {
		if feature.TrafficPercent < 0 || feature.TrafficPercent > 100 {
			return NewValidationError("rollout_feature", name, "traffic_percent",
				fmt.Errorf("must be between 0 and 100, got %d", feature.TrafficPercent))
		}
		for _, userID := range feature.Allowlist {
			if userID == "" {
				return NewValidationError("rollout_feature", name, "allowlist", fmt.Errorf("empty user id"))
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateRegistry() error {
	if v.cfg.Registry == nil || v.cfg.Registry.SpecsDir == "" {
		return NewValidationError("registry", "registry", "specs_dir", ErrMissingRequiredField)
	}
	if v.cfg.Registry.ContractsDir == "" {
		return NewValidationError("registry", "registry", "contracts_dir", ErrMissingRequiredField)
	}

	return nil
}

func (v *ConfigValidator) validatePending() error {
	p := v.cfg.Pending
	if p == nil {
		return NewValidationError("pending", "pending", "", ErrMissingRequiredField)
	}
	if !p.Store.IsValid() {
		return NewValidationError("pending", "pending", "store",
			fmt.Errorf("%w: %s", ErrInvalidValue, p.Store))
	}
	if p.TTLSec <= 0 {
		return NewValidationError("pending", "pending", "ttl_sec", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateExecutor() error {
	e := v.cfg.Executor
	if e == nil {
		return NewValidationError("executor", "executor", "", ErrMissingRequiredField)
	}
	if e.MaxSelectedTools < 1 {
		return NewValidationError("executor", "executor", "max_selected_tools", fmt.Errorf("must be at least 1"))
	}
	if e.ToolTimeoutSec < 1 {
		return NewValidationError("executor", "executor", "tool_timeout_sec", fmt.Errorf("must be at least 1"))
	}
	if e.PipelineTimeoutSec < 1 || e.PipelineTimeoutSec > 300 {
		return NewValidationError("executor", "executor", "pipeline_timeout_sec",
			fmt.Errorf("must be between 1 and 300, got %d", e.PipelineTimeoutSec))
	}
	if e.StepwiseToolRetryMaxAttempts < 1 {
		return NewValidationError("executor", "executor", "stepwise_tool_retry_max_attempts", fmt.Errorf("must be at least 1"))
	}
	if e.StepwiseToolRetryBackoffMS < 0 {
		return NewValidationError("executor", "executor", "stepwise_tool_retry_backoff_ms", fmt.Errorf("must not be negative"))
	}

	return nil
}

func (v *ConfigValidator) validateAutonomous() error {
	a := v.cfg.Autonomous
	if a == nil {
		return NewValidationError("autonomous", "autonomous", "", ErrMissingRequiredField)
	}
	if a.MaxTurns < 1 {
		return NewValidationError("autonomous", "autonomous", "max_turns", fmt.Errorf("must be at least 1"))
	}
	if a.MaxToolCalls < 1 {
		return NewValidationError("autonomous", "autonomous", "max_tool_calls", fmt.Errorf("must be at least 1"))
	}
	if a.TimeoutSec < 1 {
		return NewValidationError("autonomous", "autonomous", "timeout_sec", fmt.Errorf("must be at least 1"))
	}
	if a.ReplanLimit < 0 {
		return NewValidationError("autonomous", "autonomous", "replan_limit", fmt.Errorf("must not be negative"))
	}

	return nil
}
