package config

// LLMProviderType defines supported LLM providers
type LLMProviderType string

const (
	// LLMProviderTypeOpenAI is the OpenAI chat completions API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeAnthropic is the Anthropic messages API
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeOpenAI, LLMProviderTypeAnthropic:
		return true
	default:
		return false
	}
}

// PendingStoreMode selects the pending-action store backend.
type PendingStoreMode string

const (
	// PendingStoreMemory keeps slot-collection state in process memory
	PendingStoreMemory PendingStoreMode = "memory"
	// PendingStoreDB persists slot-collection state in pending_actions
	PendingStoreDB PendingStoreMode = "db"
	// PendingStoreAuto tries the DB and degrades to memory per operation
	PendingStoreAuto PendingStoreMode = "auto"
)

// IsValid checks if the pending store mode is valid
func (m PendingStoreMode) IsValid() bool {
	switch m {
	case PendingStoreMemory, PendingStoreDB, PendingStoreAuto:
		return true
	default:
		return false
	}
}
