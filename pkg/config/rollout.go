package config

import (
	"fmt"
	"sync"
)

// FeatureSettings controls one rollout feature. TrafficPercent buckets are
// deterministic per user; Allowlist short-circuits bucketing entirely.
type FeatureSettings struct {
	Enabled               bool     `yaml:"enabled"`
	ShadowMode            bool     `yaml:"shadow_mode"`
	Allowlist             []string `yaml:"allowlist,omitempty"`
	TrafficPercent        int      `yaml:"traffic_percent"`
	LegacyFallbackEnabled bool     `yaml:"legacy_fallback_enabled"`
}

// FeatureRegistry stores rollout feature settings in memory with
// thread-safe access.
type FeatureRegistry struct {
	features map[string]*FeatureSettings
	mu       sync.RWMutex
}

// NewFeatureRegistry creates a new rollout feature registry
func NewFeatureRegistry(features map[string]*FeatureSettings) *FeatureRegistry {
	copied := make(map[string]*FeatureSettings, len(features))
	for k, v := range features {
		copied[k] = v
	}
	return &FeatureRegistry{
		features: copied,
	}
}

// Get retrieves feature settings by name (thread-safe)
func (r *FeatureRegistry) Get(name string) (*FeatureSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	feature, exists := r.features[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFeatureNotFound, name)
	}
	return feature, nil
}

// GetAll returns all feature settings (thread-safe, returns copy)
func (r *FeatureRegistry) GetAll() map[string]*FeatureSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*FeatureSettings, len(r.features))
	for k, v := range r.features {
		result[k] = v
	}
	return result
}

// Has checks if a feature exists in the registry (thread-safe)
func (r *FeatureRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.features[name]
	return exists
}

// Len returns the number of features in the registry (thread-safe)
func (r *FeatureRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.features)
}
