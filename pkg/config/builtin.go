package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data: default LLM
// providers, rollout features, and masking patterns. User YAML overrides
// entries with the same key.
type BuiltinConfig struct {
	LLMProviders    map[string]LLMProviderConfig
	RolloutFeatures map[string]FeatureSettings
	MaskingPatterns map[string]MaskingPattern
	PatternGroups   map[string][]string
	DefaultLLM      LLMSelection
}

// MaskingPattern is one regex-based redaction rule.
type MaskingPattern struct {
	Pattern     string
	Replacement string
	Description string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		LLMProviders:    initBuiltinLLMProviders(),
		RolloutFeatures: initBuiltinRolloutFeatures(),
		MaskingPatterns: initBuiltinMaskingPatterns(),
		PatternGroups:   initBuiltinPatternGroups(),
		DefaultLLM: LLMSelection{
			PlannerProvider:  "openai-default",
			FallbackProvider: "anthropic-fallback",
		},
	}
}

func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"openai-default": {
			Type:            LLMProviderTypeOpenAI,
			Model:           "gpt-4o",
			APIKeyEnv:       "OPENAI_API_KEY",
			TimeoutSec:      60,
			MaxOutputTokens: 4096,
		},
		"anthropic-fallback": {
			Type:            LLMProviderTypeAnthropic,
			Model:           "claude-sonnet-4-20250514",
			APIKeyEnv:       "ANTHROPIC_API_KEY",
			TimeoutSec:      60,
			MaxOutputTokens: 4096,
		},
	}
}

// initBuiltinRolloutFeatures returns the feature flags the orchestrator
// consults. skill_v2 gates autonomous execution; atomic_overhaul is a
// shadow-only observability flag read by the evaluators.
func initBuiltinRolloutFeatures() map[string]FeatureSettings {
	return map[string]FeatureSettings{
		"skill_v2": {
			Enabled:               true,
			ShadowMode:            true,
			TrafficPercent:        0,
			LegacyFallbackEnabled: true,
		},
		"atomic_overhaul": {
			Enabled:               false,
			ShadowMode:            true,
			TrafficPercent:        0,
			LegacyFallbackEnabled: true,
		},
	}
}

func initBuiltinMaskingPatterns() map[string]MaskingPattern {
	return map[string]MaskingPattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
			Replacement: `api_key=__MASKED_API_KEY__`,
			Description: "API keys",
		},
		"password": {
			Pattern:     `(?i)(?:password|pwd|pass)["']?\s*[:=]\s*["']?([^"'\s\n;]{6,})["']?`,
			Replacement: `password=__MASKED_PASSWORD__`,
			Description: "Passwords",
		},
		"token": {
			Pattern:     `(?i)(?:token|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `token=__MASKED_TOKEN__`,
			Description: "Access tokens",
		},
		"bearer": {
			Pattern:     `(?i)bearer\s+[A-Za-z0-9_\-\.]{16,}`,
			Replacement: `Bearer __MASKED_TOKEN__`,
			Description: "Bearer authorization values",
		},
		"email": {
			Pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9]+(?:[.-][A-Za-z0-9]+)*\.[A-Za-z]{2,63}\b`,
			Replacement: `__MASKED_EMAIL__`,
			Description: "Email addresses",
		},
		"github_token": {
			Pattern:     `gh[ps]_[A-Za-z0-9_]{36,255}`,
			Replacement: `__MASKED_GITHUB_TOKEN__`,
			Description: "GitHub tokens",
		},
		"slack_token": {
			Pattern:     `(?i)xox[baprs]-[A-Za-z0-9-]{10,72}`,
			Replacement: `__MASKED_SLACK_TOKEN__`,
			Description: "Slack tokens",
		},
	}
}

// initBuiltinPatternGroups returns predefined groups of masking patterns.
func initBuiltinPatternGroups() map[string][]string {
	return map[string][]string{
		"basic":   {"api_key", "password"},
		"secrets": {"api_key", "password", "token", "bearer"},
		"all":     {"api_key", "password", "token", "bearer", "email", "github_token", "slack_token"},
	}
}
