package llm

import (
	"context"
	"fmt"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/braid-labs/braid/pkg/config"
)

// anthropicProvider answers completions through the Anthropic messages API.
type anthropicProvider struct {
	name   string
	cfg    *config.LLMProviderConfig
	client sdk.Client
}

func newAnthropicProvider(name string, cfg *config.LLMProviderConfig, apiKey string) *anthropicProvider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &anthropicProvider{
		name:   name,
		cfg:    cfg,
		client: sdk.NewClient(opts...),
	}
}

func (p *anthropicProvider) Name() string { return p.name }

func (p *anthropicProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout())
	defer cancel()

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.cfg.MaxOutputTokens
	}
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(p.cfg.Model),
		MaxTokens: int64(maxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic completion (%s): %w", p.cfg.Model, err)
	}

	var answer string
	for _, block := range msg.Content {
		if block.Type == "text" {
			answer += block.Text
		}
	}
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	return answer, nil
}
