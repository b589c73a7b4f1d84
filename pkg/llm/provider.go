// Package llm is the provider layer: a timeout-aware completion interface
// with OpenAI and Anthropic implementations, a primary/fallback client,
// and the prompt builders for planning, stepwise decomposition, payload
// autofill, summarisation, and the autonomous action loop.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/braid-labs/braid/pkg/config"
)

// Provider errors.
var (
	ErrNoAPIKey     = errors.New("provider API key not set")
	ErrEmptyAnswer  = errors.New("provider returned an empty answer")
	ErrNoJSONObject = errors.New("no JSON object in provider answer")
)

// CompletionRequest is one provider call. MaxTokens of zero uses the
// provider's configured cap.
type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Provider is a single LLM backend. Complete blocks until the provider
// answers or ctx/the provider timeout expires.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// NewProvider builds a provider from its configuration. The API key is
// read from the configured environment variable at construction time.
func NewProvider(name string, cfg *config.LLMProviderConfig) (Provider, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s (env %s)", ErrNoAPIKey, name, cfg.APIKeyEnv)
	}

	switch cfg.Type {
	case config.LLMProviderTypeOpenAI:
		return newOpenAIProvider(name, cfg, apiKey), nil
	case config.LLMProviderTypeAnthropic:
		return newAnthropicProvider(name, cfg, apiKey), nil
	default:
		return nil, fmt.Errorf("unsupported provider type %q", cfg.Type)
	}
}

// Client pairs a primary provider with an optional fallback. Any primary
// failure (transport error, empty answer, unparseable JSON) retries the
// same request once against the fallback.
type Client struct {
	primary  Provider
	fallback Provider
}

// NewClient creates a client; fallback may be nil.
func NewClient(primary, fallback Provider) *Client {
	return &Client{primary: primary, fallback: fallback}
}

// Primary returns the primary provider's name.
func (c *Client) Primary() string {
	if c.primary == nil {
		return ""
	}
	return c.primary.Name()
}

// Complete asks the primary provider and falls back on failure. It
// returns the answer and the name of the provider that produced it.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, string, error) {
	if c.primary == nil {
		return "", "", errors.New("no LLM provider configured")
	}

	answer, err := c.primary.Complete(ctx, req)
	if err == nil && strings.TrimSpace(answer) != "" {
		return answer, c.primary.Name(), nil
	}
	if err == nil {
		err = ErrEmptyAnswer
	}

	if c.fallback == nil {
		return "", c.primary.Name(), err
	}

	answer, fbErr := c.fallback.Complete(ctx, req)
	if fbErr != nil {
		return "", c.fallback.Name(), fmt.Errorf("primary %s failed (%v); fallback %s failed: %w",
			c.primary.Name(), err, c.fallback.Name(), fbErr)
	}
	if strings.TrimSpace(answer) == "" {
		return "", c.fallback.Name(), ErrEmptyAnswer
	}
	return answer, c.fallback.Name(), nil
}

// CompleteJSON asks for an answer and decodes the first well-formed JSON
// object in it. A primary answer without a JSON object triggers the
// fallback before giving up.
func (c *Client) CompleteJSON(ctx context.Context, req CompletionRequest) (map[string]any, string, error) {
	if c.primary == nil {
		return nil, "", errors.New("no LLM provider configured")
	}

	answer, err := c.primary.Complete(ctx, req)
	if err == nil {
		if obj, jsonErr := ParseFirstJSONObject(answer); jsonErr == nil {
			return obj, c.primary.Name(), nil
		} else {
			err = jsonErr
		}
	}

	if c.fallback == nil {
		return nil, c.primary.Name(), err
	}

	answer, fbErr := c.fallback.Complete(ctx, req)
	if fbErr != nil {
		return nil, c.fallback.Name(), fmt.Errorf("primary %s failed (%v); fallback %s failed: %w",
			c.primary.Name(), err, c.fallback.Name(), fbErr)
	}
	obj, jsonErr := ParseFirstJSONObject(answer)
	if jsonErr != nil {
		return nil, c.fallback.Name(), jsonErr
	}
	return obj, c.fallback.Name(), nil
}

// ParseFirstJSONObject decodes the whole answer as a JSON object, or the
// greedy {...} span between the first opening and last closing brace.
func ParseFirstJSONObject(answer string) (map[string]any, error) {
	answer = strings.TrimSpace(answer)

	var obj map[string]any
	if err := json.Unmarshal([]byte(answer), &obj); err == nil {
		return obj, nil
	}

	open := strings.Index(answer, "{")
	close := strings.LastIndex(answer, "}")
	if open < 0 || close <= open {
		return nil, ErrNoJSONObject
	}
	if err := json.Unmarshal([]byte(answer[open:close+1]), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSONObject, err)
	}
	return obj, nil
}
