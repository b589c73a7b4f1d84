package llm

import (
	"context"
	"fmt"

	openailib "github.com/sashabaranov/go-openai"

	"github.com/braid-labs/braid/pkg/config"
)

// openaiProvider answers completions through the OpenAI chat API.
type openaiProvider struct {
	name   string
	cfg    *config.LLMProviderConfig
	client *openailib.Client
}

func newOpenAIProvider(name string, cfg *config.LLMProviderConfig, apiKey string) *openaiProvider {
	clientConfig := openailib.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &openaiProvider{
		name:   name,
		cfg:    cfg,
		client: openailib.NewClientWithConfig(clientConfig),
	}
}

func (p *openaiProvider) Name() string { return p.name }

func (p *openaiProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout())
	defer cancel()

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.cfg.MaxOutputTokens
	}

	var messages []openailib.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openailib.ChatCompletionMessage{
			Role:    openailib.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openailib.ChatCompletionMessage{
		Role:    openailib.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openailib.ChatCompletionRequest{
		Model:       p.cfg.Model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion (%s): %w", p.cfg.Model, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyAnswer
	}
	return resp.Choices[0].Message.Content, nil
}
