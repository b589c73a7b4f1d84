package config

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Locations of tool specs, skill contracts, and slot overrides
	Registry *RegistryConfig

	// Pending-action (slot collection) store settings
	Pending *PendingConfig

	// Runtime catalog cache settings
	Catalog *CatalogConfig

	// Plan/pipeline execution bounds
	Executor *ExecutorConfig

	// Autonomous choose-next-action loop bounds
	Autonomous *AutonomousConfig

	// Tenant and risk policy for the runtime API profile
	Policy *PolicyConfig

	// API-guide markdown settings
	Guides *GuidesConfig

	// Data retention and cleanup
	Retention *RetentionConfig

	// Component registries
	LLMProviderRegistry *LLMProviderRegistry
	FeatureRegistry     *FeatureRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	LLMProviders    int
	RolloutFeatures int
	BlockedTools    int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	if c.FeatureRegistry != nil {
		s.RolloutFeatures = c.FeatureRegistry.Len()
	}
	if c.Policy != nil {
		s.BlockedTools = len(c.Policy.Tenant.BlockedTools)
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// GetFeature retrieves rollout feature settings by name.
// This is a convenience method that wraps FeatureRegistry.Get().
func (c *Config) GetFeature(name string) (*FeatureSettings, error) {
	return c.FeatureRegistry.Get(name)
}

// LLMSelection returns the configured planner/fallback/autofill provider
// names with the autofill default applied.
func (c *Config) LLMSelection() LLMSelection {
	sel := LLMSelection{}
	if c.Defaults != nil && c.Defaults.LLM != nil {
		sel = *c.Defaults.LLM
	}
	if sel.AutofillProvider == "" {
		sel.AutofillProvider = sel.PlannerProvider
	}
	return sel
}
