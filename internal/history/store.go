// Package history persists one session's conversation under a single durable
// key. Malformed or missing state never surfaces as an error: the store
// degrades to a fresh welcome conversation and carries on.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/HKYM39/my-recipe-agents-chat/internal/chat"
	logx "github.com/HKYM39/my-recipe-agents-chat/pkg/logger"
)

// WelcomeText seeds every new conversation.
const WelcomeText = "Hi! Tell me about your food preferences - cuisines you " +
	"love, ingredients you avoid - and I'll suggest recipes you might enjoy."

// Store reads and writes the conversation for one session key.
type Store struct {
	kv       KV
	key      string
	hydrated bool
}

// NewStore builds a store persisting under the given conversation id.
func NewStore(kv KV, conversationID string) *Store {
	return &Store{
		kv:  kv,
		key: fmt.Sprintf("chat:conversation:%s", conversationID),
	}
}

// Load hydrates the conversation from the durable key. A missing key, a
// parse failure, a non-sequence payload, or an empty sequence all degrade to
// the one-element welcome conversation; Load never fails.
func (s *Store) Load(ctx context.Context) chat.Conversation {
	defer func() { s.hydrated = true }()

	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logx.Warn().Err(err).Str("key", s.key).Msg("history read failed, starting fresh")
		}
		return welcomeConversation()
	}

	var conv chat.Conversation
	if err := json.Unmarshal([]byte(raw), &conv); err != nil {
		logx.Warn().Err(err).Str("key", s.key).Msg("persisted history is malformed, starting fresh")
		return welcomeConversation()
	}
	if len(conv) == 0 {
		return welcomeConversation()
	}
	return conv
}

// Save overwrites the durable key with the full conversation. Saving before
// the first Load of the session is refused so a default never clobbers
// unread history.
func (s *Store) Save(ctx context.Context, conv chat.Conversation) error {
	if !s.hydrated {
		logx.Warn().Str("key", s.key).Msg("save before initial load refused")
		return nil
	}

	b, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("marshal conversation: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(b)); err != nil {
		logx.Error().Err(err).Str("key", s.key).Msg("failed to persist conversation")
		return err
	}
	return nil
}

// Clear resets to a freshly generated welcome conversation and persists it.
func (s *Store) Clear(ctx context.Context) chat.Conversation {
	conv := welcomeConversation()
	s.hydrated = true
	if err := s.Save(ctx, conv); err != nil {
		logx.Error().Err(err).Str("key", s.key).Msg("failed to persist cleared conversation")
	}
	return conv
}

func welcomeConversation() chat.Conversation {
	return chat.Conversation{chat.NewAssistantMessage("", WelcomeText, nil)}
}
