package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// BraidYAMLConfig represents the complete braid.yaml file structure
type BraidYAMLConfig struct {
	System          *SystemYAMLConfig          `yaml:"system"`
	Registry        *RegistryConfig            `yaml:"registry"`
	Pending         *PendingConfig             `yaml:"pending"`
	Catalog         *CatalogConfig             `yaml:"catalog"`
	Executor        *ExecutorConfig            `yaml:"executor"`
	Autonomous      *AutonomousConfig          `yaml:"autonomous"`
	Policy          *PolicyConfig              `yaml:"policy"`
	RolloutFeatures map[string]FeatureSettings `yaml:"rollout_features"`
	Defaults        *Defaults                  `yaml:"defaults"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Guides    *GuidesYAMLConfig `yaml:"guides"`
	Retention *RetentionConfig  `yaml:"retention"`
}

// GuidesYAMLConfig holds API-guide settings from YAML.
type GuidesYAMLConfig struct {
	Dir      string `yaml:"dir,omitempty"`
	CacheTTL string `yaml:"cache_ttl,omitempty"` // Parsed to time.Duration
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Build in-memory registries
//  6. Apply default values
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"rollout_features", stats.RolloutFeatures,
		"blocked_tools", stats.BlockedTools)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load braid.yaml (registry dirs, pending, executor, policy, features, defaults)
	braidConfig, err := loader.loadBraidYAML()
	if err != nil {
		return nil, NewLoadError("braid.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)
	features := mergeRolloutFeatures(builtin.RolloutFeatures, braidConfig.RolloutFeatures)

	// 5. Build registries
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)
	featureRegistry := NewFeatureRegistry(features)

	// 6. Resolve defaults (YAML overrides built-in)
	defaults := braidConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.LLM == nil {
		sel := builtin.DefaultLLM
		defaults.LLM = &sel
	}
	if defaults.Masking == nil {
		defaults.Masking = &MaskingDefaults{
			Enabled:      true,
			PatternGroup: "secrets",
		}
	}

	// Resolve component configs (merge user YAML with built-in defaults).
	// Start with defaults, then merge user config on top to preserve unset defaults.
	registryCfg := resolveSection(braidConfig.Registry, &RegistryConfig{
		SpecsDir:     filepath.Join(configDir, "specs"),
		ContractsDir: filepath.Join(configDir, "contracts"),
	})
	pendingCfg := resolveSection(braidConfig.Pending, DefaultPendingConfig())
	catalogCfg := resolveSection(braidConfig.Catalog, DefaultCatalogConfig())
	executorCfg := resolveSection(braidConfig.Executor, DefaultExecutorConfig())
	autonomousCfg := resolveSection(braidConfig.Autonomous, DefaultAutonomousConfig())

	policyCfg := braidConfig.Policy
	if policyCfg == nil {
		policyCfg = &PolicyConfig{}
	}

	guidesCfg := resolveGuidesConfig(braidConfig.System, configDir)
	retentionCfg := resolveRetentionConfig(braidConfig.System)

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Registry:            registryCfg,
		Pending:             pendingCfg,
		Catalog:             catalogCfg,
		Executor:            executorCfg,
		Autonomous:          autonomousCfg,
		Policy:              policyCfg,
		Guides:              guidesCfg,
		Retention:           retentionCfg,
		LLMProviderRegistry: llmProviderRegistry,
		FeatureRegistry:     featureRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

// resolveSection merges a user-supplied YAML section into its defaults.
// Non-zero user values override; unset values keep the default.
func resolveSection[T any](user *T, defaults *T) *T {
	if user == nil {
		return defaults
	}
	if err := mergo.Merge(defaults, user, mergo.WithOverride); err != nil {
		slog.Warn("Failed to merge config section, using user values as-is", "error", err)
		return user
	}
	return defaults
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadBraidYAML() (*BraidYAMLConfig, error) {
	var config BraidYAMLConfig

	// Initialize map to avoid nil map
	config.RolloutFeatures = make(map[string]FeatureSettings)

	if err := l.loadYAML("braid.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}

// resolveGuidesConfig resolves API-guide configuration from system YAML, applying defaults.
func resolveGuidesConfig(sys *SystemYAMLConfig, configDir string) *GuidesConfig {
	cfg := &GuidesConfig{
		Dir:      filepath.Join(configDir, "guides"),
		CacheTTL: 5 * time.Minute,
	}

	if sys == nil || sys.Guides == nil {
		return cfg
	}

	g := sys.Guides
	if g.Dir != "" {
		cfg.Dir = g.Dir
	}
	if g.CacheTTL != "" {
		if d, err := time.ParseDuration(g.CacheTTL); err == nil {
			cfg.CacheTTL = d
		} else {
			slog.Warn("Invalid cache_ttl in guides config, using default",
				"value", g.CacheTTL,
				"default", cfg.CacheTTL,
				"error", err)
		}
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.CommandLogRetentionDays > 0 {
		cfg.CommandLogRetentionDays = r.CommandLogRetentionDays
	}
	if r.StepLogRetentionDays > 0 {
		cfg.StepLogRetentionDays = r.StepLogRetentionDays
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}
