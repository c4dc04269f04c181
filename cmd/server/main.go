package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/HKYM39/my-recipe-agents-chat/internal/agent"
	"github.com/HKYM39/my-recipe-agents-chat/internal/core"
	"github.com/HKYM39/my-recipe-agents-chat/internal/server"
	logx "github.com/HKYM39/my-recipe-agents-chat/pkg/logger"
)

// AppConfig defines all configurable parameters for the chat server,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	Server server.Config

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	Model  agent.ModelConfig
	Prompt agent.PromptConfig
}

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		logx.Warn().Err(err).Msg("could not load .env file")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logx.Fatal().Err(err).Msg("failed to process environment config")
	}
	logx.Init(logx.Opts{Environment: core.ParseEnvironment(cfg.Environment)})

	cm, err := agent.NewChatModel(ctx, cfg.APIKey, cfg.BaseURL, cfg.Model)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise chat model")
	}

	systemPrompt, err := agent.RenderSystemPrompt(ctx, cfg.Prompt)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to render system prompt")
	}

	registry := agent.NewRegistry()
	registry.Register(agent.StepID, agent.NewStep(cm, systemPrompt, agent.ResolvePricing(cfg.Model.Model)))

	srv := server.New(cfg.Server, registry)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			logx.Fatal().Err(err).Msg("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logx.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("shutdown did not complete cleanly")
	}
}
