// Package client drives one user turn against the chat API: optimistic
// append, network call, then reconciliation. Failures roll the optimistic
// message back completely and restore the input so the user can retry.
package client

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/HKYM39/my-recipe-agents-chat/internal/chat"
	"github.com/HKYM39/my-recipe-agents-chat/internal/history"
	logx "github.com/HKYM39/my-recipe-agents-chat/pkg/logger"
)

const (
	// FallbackReply fills in when a success payload carries no content.
	FallbackReply = "no answer available, please retry"
	// FallbackError is shown when a failure carries no message of its own.
	FallbackError = "something went wrong, please try again"
)

// Controller owns the conversation state for one session. All methods are
// meant for a single goroutine of control; the in-flight flag only guards
// against re-entrant submits, it is not a general lock.
type Controller struct {
	gw    Gateway
	store *history.Store

	inFlight atomic.Bool

	conv   chat.Conversation
	input  string
	errMsg string
}

// NewController builds a controller; call Hydrate before the first submit.
func NewController(gw Gateway, store *history.Store) *Controller {
	return &Controller{gw: gw, store: store}
}

// Hydrate loads the persisted conversation (or the welcome fallback) and
// returns it.
func (c *Controller) Hydrate(ctx context.Context) chat.Conversation {
	c.conv = c.store.Load(ctx)
	return c.conv
}

// Conversation returns the current conversation state.
func (c *Controller) Conversation() chat.Conversation {
	return c.conv
}

// Input returns the restorable input text (set after a failed turn).
func (c *Controller) Input() string {
	return c.input
}

// Err returns the visible error message for the last turn, empty when the
// last turn succeeded.
func (c *Controller) Err() string {
	return c.errMsg
}

// Submitting reports whether a turn is in flight.
func (c *Controller) Submitting() bool {
	return c.inFlight.Load()
}

// Clear resets the conversation to a fresh welcome state.
func (c *Controller) Clear(ctx context.Context) chat.Conversation {
	c.conv = c.store.Clear(ctx)
	c.input = ""
	c.errMsg = ""
	return c.conv
}

// Submit runs one turn: append the user message optimistically, call the
// gateway with the full message list, then reconcile. It reports false when
// the text is blank or another turn is already in flight (that attempt is
// dropped, not queued). Either branch leaves the controller idle again.
func (c *Controller) Submit(ctx context.Context, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if !c.inFlight.CompareAndSwap(false, true) {
		return false
	}
	defer c.inFlight.Store(false)

	userMsg := chat.NewUserMessage(trimmed)
	c.conv = c.conv.Append(userMsg)
	c.persist(ctx)
	c.input = ""
	c.errMsg = ""

	resp, err := c.gw.Send(ctx, c.conv.Wire())
	if err != nil || resp.IsError() {
		c.rollback(ctx, userMsg.ID, trimmed, resp, err)
		return true
	}

	c.conv = c.conv.Append(assistantMessage(resp))
	c.persist(ctx)
	return true
}

// rollback removes the optimistic user message entirely, restores the input
// text, and surfaces one error message. No partial state stays visible.
func (c *Controller) rollback(ctx context.Context, userMsgID, text string, resp *chat.ChatResponse, err error) {
	c.conv = c.conv.RemoveByID(userMsgID)
	c.persist(ctx)
	c.input = text

	switch {
	case resp != nil && resp.Error != "":
		c.errMsg = resp.Error
	default:
		c.errMsg = FallbackError
	}
	if err != nil {
		logx.Warn().Err(err).Msg("chat request failed")
	}
}

// assistantMessage builds the assistant UIMessage from a success envelope:
// id from the run id when present, role defaulting to assistant, content
// defaulting to the fallback reply, usage copied verbatim.
func assistantMessage(resp *chat.ChatResponse) chat.UIMessage {
	content := FallbackReply
	if resp.Message != nil && resp.Message.Content != "" {
		content = resp.Message.Content
	}
	msg := chat.NewAssistantMessage(resp.RunID, content, resp.Usage)
	if resp.Message != nil && resp.Message.Role.Valid() {
		msg.Role = resp.Message.Role
	}
	return msg
}

// persist is write-after-mutate and fire-and-forget: a storage failure is
// logged, never surfaced to the turn.
func (c *Controller) persist(ctx context.Context) {
	if err := c.store.Save(ctx, c.conv); err != nil {
		logx.Warn().Err(err).Msg("failed to persist conversation")
	}
}
