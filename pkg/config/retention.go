package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// CommandLogRetentionDays is how many days to keep command_logs rows.
	CommandLogRetentionDays int `yaml:"command_log_retention_days"`

	// StepLogRetentionDays is how many days to keep pipeline_step_logs rows.
	StepLogRetentionDays int `yaml:"step_log_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		CommandLogRetentionDays: 90,
		StepLogRetentionDays:    30,
		CleanupInterval:         12 * time.Hour,
	}
}
