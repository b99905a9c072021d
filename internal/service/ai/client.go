package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	openaiacl "github.com/cloudwego/eino-ext/libs/acl/openai"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"

	"gameuigo/internal/config"
)

const claudeMaxTokens = 512

// NewChatModels builds chat models for the configured provider. textModel
// serves free-text completions, jsonModel strict-JSON ones. Both are nil
// when no credential is set for the provider; callers branch on nil rather
// than on an error, because an absent credential is a normal configuration
// state.
func NewChatModels(ctx context.Context, cfg *config.Config) (textModel, jsonModel model.BaseChatModel, err error) {
	token := cfg.APIKey()
	if token == "" {
		return nil, nil, nil
	}

	switch cfg.Provider {
	case "openai":
		textModel, err = einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.Model,
			APIKey:  token,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("init openai chat model: %w", err)
		}
		jsonModel, err = einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.Model,
			APIKey:  token,
			ResponseFormat: &openaiacl.ChatCompletionResponseFormat{
				Type: openaiacl.ChatCompletionResponseFormatTypeJSONObject,
			},
		})
		if err != nil {
			return nil, nil, fmt.Errorf("init openai json chat model: %w", err)
		}
		return textModel, jsonModel, nil

	case "claude":
		chatModel, err := claude.NewChatModel(ctx, &claude.Config{
			APIKey:    token,
			Model:     cfg.Model,
			MaxTokens: claudeMaxTokens,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("init claude chat model: %w", err)
		}
		// No construction-time JSON mode; the prompts carry the format.
		return chatModel, chatModel, nil

	case "gemini":
		client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: token})
		if err != nil {
			return nil, nil, fmt.Errorf("init gemini client: %w", err)
		}
		chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
			Client: client,
			Model:  cfg.Model,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("init gemini chat model: %w", err)
		}
		return chatModel, chatModel, nil

	default:
		return nil, nil, fmt.Errorf("invalid provider: %s", cfg.Provider)
	}
}
