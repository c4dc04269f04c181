package agent

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"google.golang.org/genai"

	logx "github.com/HKYM39/my-recipe-agents-chat/pkg/logger"
)

// ModelConfig holds the chat model settings, sourced from the environment.
type ModelConfig struct {
	Model       string  `envconfig:"CHAT_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"CHAT_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"CHAT_TEMPERATURE" default:"0.4"`
}

// NewChatModel creates the Gemini-backed chat model the step delegates to.
func NewChatModel(ctx context.Context, apiKey, baseURL string, cfg ModelConfig) (*gemini.ChatModel, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientCfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("failed to create Gemini client")
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	cm, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model,
		Temperature: &cfg.Temperature,
		MaxTokens:   &cfg.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Str("model", cfg.Model).Msg("failed to create chat model")
		return nil, fmt.Errorf("create chat model %s: %w", cfg.Model, err)
	}

	logx.Debug().Str("model", cfg.Model).Msg("chat model ready")
	return cm, nil
}
