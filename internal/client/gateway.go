package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/HKYM39/my-recipe-agents-chat/internal/chat"
)

// Gateway sends one turn's message list to the chat API. An error return
// means the transport itself failed; an error-shaped ChatResponse means the
// server rejected the turn. The controller treats both the same way.
type Gateway interface {
	Send(ctx context.Context, messages []chat.Message) (*chat.ChatResponse, error)
}

// Config holds the client connection settings, sourced from the environment.
type Config struct {
	ServerURL      string `split_words:"true" default:"http://localhost:8080"`
	RequestTimeout int    `split_words:"true" default:"60"`
}

// HTTPGateway talks to POST /api/chat over plain HTTP.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway builds a gateway for the given server.
func NewHTTPGateway(cfg Config) *HTTPGateway {
	return &HTTPGateway{
		baseURL: cfg.ServerURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
	}
}

func (g *HTTPGateway) Send(ctx context.Context, messages []chat.Message) (*chat.ChatResponse, error) {
	body, err := json.Marshal(chat.ChatRequest{Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post chat: %w", err)
	}
	defer resp.Body.Close()

	// Error envelopes ride on 4xx/5xx statuses; decode them the same way.
	var out chat.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

var _ Gateway = (*HTTPGateway)(nil)
