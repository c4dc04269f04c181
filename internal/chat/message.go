package chat

import (
	"github.com/google/uuid"
)

// Role identifies the sender of a message. The set is closed; anything else
// must be rejected at the API boundary.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// Valid reports whether the role belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// Message is the wire shape exchanged with the chat API: role plus content,
// nothing else. Immutable once created.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Usage carries token accounting for an assistant reply. All fields are
// informational; a zero/absent field means "unknown", not zero consumption.
type Usage struct {
	InputTokens       int `json:"inputTokens,omitempty"`
	OutputTokens      int `json:"outputTokens,omitempty"`
	TotalTokens       int `json:"totalTokens,omitempty"`
	CachedInputTokens int `json:"cachedInputTokens,omitempty"`
	ReasoningTokens   int `json:"reasoningTokens,omitempty"`
}

// UIMessage is a Message enriched with a locally generated identifier and
// optional usage metadata. Identifiers are client-local and never trusted
// from the server, with one exception: a successful turn's run id may be
// reused as the assistant message id.
type UIMessage struct {
	ID      string `json:"id"`
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Usage   *Usage `json:"usage,omitempty"`
}

// NewUserMessage builds a user UIMessage with a fresh identifier.
func NewUserMessage(content string) UIMessage {
	return UIMessage{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Content: content,
	}
}

// NewAssistantMessage builds an assistant UIMessage. An empty id is replaced
// with a fresh one.
func NewAssistantMessage(id, content string, usage *Usage) UIMessage {
	if id == "" {
		id = uuid.NewString()
	}
	return UIMessage{
		ID:      id,
		Role:    RoleAssistant,
		Content: content,
		Usage:   usage,
	}
}
