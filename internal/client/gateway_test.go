package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HKYM39/my-recipe-agents-chat/internal/chat"
)

func TestHTTPGatewaySend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chat.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "hi", req.Messages[0].Content)

		json.NewEncoder(w).Encode(chat.ChatResponse{
			Message: &chat.Message{Role: chat.RoleAssistant, Content: "hello"},
			RunID:   "r1",
		})
	}))
	defer srv.Close()

	gw := NewHTTPGateway(Config{ServerURL: srv.URL, RequestTimeout: 5})
	resp, err := gw.Send(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "hi"}})

	require.NoError(t, err)
	assert.False(t, resp.IsError())
	assert.Equal(t, "hello", resp.Message.Content)
	assert.Equal(t, "r1", resp.RunID)
}

func TestHTTPGatewayDecodesErrorEnvelopeFromStatus500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(chat.ChatResponse{Error: "boom"})
	}))
	defer srv.Close()

	gw := NewHTTPGateway(Config{ServerURL: srv.URL, RequestTimeout: 5})
	resp, err := gw.Send(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "hi"}})

	require.NoError(t, err, "an error envelope is a response, not a transport failure")
	assert.True(t, resp.IsError())
	assert.Equal(t, "boom", resp.Error)
}

func TestHTTPGatewayTransportFailure(t *testing.T) {
	gw := NewHTTPGateway(Config{ServerURL: "http://127.0.0.1:1", RequestTimeout: 1})

	_, err := gw.Send(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "hi"}})

	assert.Error(t, err)
}

func TestHTTPGatewayMalformedBodyIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	gw := NewHTTPGateway(Config{ServerURL: srv.URL, RequestTimeout: 5})
	_, err := gw.Send(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "hi"}})

	assert.Error(t, err)
}
