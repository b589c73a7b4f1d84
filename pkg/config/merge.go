package config

// mergeLLMProviders merges built-in and user-defined LLM provider configurations.
// User-defined providers override built-in providers with the same name.
func mergeLLMProviders(builtinProviders map[string]LLMProviderConfig, userProviders map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	result := make(map[string]*LLMProviderConfig)

	// First, add built-in providers
	for name, provider := range builtinProviders {
		providerCopy := provider
		result[name] = &providerCopy
	}

	// Then, override with user-defined providers (or add new ones)
	for name, userProvider := range userProviders {
		providerCopy := userProvider
		result[name] = &providerCopy
	}

	return result
}

// mergeRolloutFeatures merges built-in and user-defined rollout features.
// User-defined features override built-in features with the same name.
func mergeRolloutFeatures(builtinFeatures map[string]FeatureSettings, userFeatures map[string]FeatureSettings) map[string]*FeatureSettings {
	result := make(map[string]*FeatureSettings)

	// First, add built-in features
	for name, feature := range builtinFeatures {
		featureCopy := feature
		result[name] = &featureCopy
	}

	// Then, override with user-defined features (or add new ones)
	for name, userFeature := range userFeatures {
		featureCopy := userFeature
		result[name] = &featureCopy
	}

	return result
}
