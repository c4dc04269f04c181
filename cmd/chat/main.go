// Command chat is a terminal client for the recipe chat server. It keeps the
// conversation in Redis, posts each turn to the server, and renders replies
// through the message segmenter.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/HKYM39/my-recipe-agents-chat/internal/client"
	"github.com/HKYM39/my-recipe-agents-chat/internal/core"
	"github.com/HKYM39/my-recipe-agents-chat/internal/history"
	logx "github.com/HKYM39/my-recipe-agents-chat/pkg/logger"
	pkgredis "github.com/HKYM39/my-recipe-agents-chat/pkg/redis"
)

// AppConfig defines all configurable parameters for the chat client.
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	Redis   pkgredis.Config
	Gateway client.Config

	// ConversationID selects which persisted conversation this session uses.
	ConversationID string `split_words:"true" default:"default"`
}

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

	rdb, err := cfg.Redis.New()
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()

	store := history.NewStore(history.NewRedisKV(rdb), cfg.ConversationID)
	ctrl := client.NewController(client.NewHTTPGateway(cfg.Gateway), store)

	for _, m := range ctrl.Hydrate(ctx) {
		renderMessage(m)
	}
	fmt.Println("(/clear resets the conversation, /quit exits)")

	repl(ctx, ctrl)
}

func repl(ctx context.Context, ctrl *client.Controller) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		prompt(ctrl)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "/quit":
			return
		case "/clear":
			for _, m := range ctrl.Clear(ctx) {
				renderMessage(m)
			}
			continue
		case "":
			// Empty input resubmits the restored text after a failure.
			line = ctrl.Input()
			if line == "" {
				continue
			}
		}

		before := len(ctrl.Conversation())
		if !ctrl.Submit(ctx, line) {
			continue
		}
		if msg := ctrl.Err(); msg != "" {
			fmt.Printf("error: %s\n", msg)
			continue
		}
		for _, m := range ctrl.Conversation()[before:] {
			renderMessage(m)
		}
	}
}

func prompt(ctrl *client.Controller) {
	if restored := ctrl.Input(); restored != "" {
		fmt.Printf("you (enter to retry %q)> ", restored)
		return
	}
	fmt.Print("you> ")
}
