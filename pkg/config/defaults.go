package config

// Defaults contains system-wide default configurations
// These values are used when specific components don't specify their own values
type Defaults struct {
	// Which configured LLM providers serve planning/fallback/autofill
	LLM *LLMSelection `yaml:"llm,omitempty"`

	// Detail-string masking configuration, applied before DB storage
	Masking *MaskingDefaults `yaml:"masking,omitempty"`
}

// DefaultPendingConfig returns the built-in pending-action store defaults.
func DefaultPendingConfig() *PendingConfig {
	return &PendingConfig{
		Store:  PendingStoreAuto,
		TTLSec: 900,
	}
}

// DefaultCatalogConfig returns the built-in runtime catalog defaults.
func DefaultCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		DefaultTTLSec: 600,
	}
}

// DefaultExecutorConfig returns the built-in executor defaults.
func DefaultExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		MaxSelectedTools:             5,
		ToolTimeoutSec:               30,
		PipelineTimeoutSec:           300,
		StepwiseToolRetryMaxAttempts: 3,
		StepwiseToolRetryBackoffMS:   400,
		AllowDeleteOperations:        false,
		ForceStepwise:                false,
	}
}

// DefaultAutonomousConfig returns the built-in autonomous-loop defaults.
func DefaultAutonomousConfig() *AutonomousConfig {
	return &AutonomousConfig{
		MaxTurns:     8,
		MaxToolCalls: 12,
		TimeoutSec:   90,
		ReplanLimit:  2,
		Strict:       false,
	}
}
