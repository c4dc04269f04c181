// Package agent holds the single delegation step between the chat API and
// the language model: map the message list to the model's shape, invoke it
// once, normalize the reply. There is no retry and no orchestration beyond
// that one call.
package agent

import (
	"context"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/HKYM39/my-recipe-agents-chat/internal/chat"
	logx "github.com/HKYM39/my-recipe-agents-chat/pkg/logger"
)

// Status is the execution outcome of a step.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Extra keys a model implementation may populate with provider metadata.
const (
	extraResponseID = "response_id"
	extraTraceID    = "trace_id"
)

// Result is the step outcome envelope. On success Message carries the
// assistant reply; on failure Err carries the cause and Message is zero.
type Result struct {
	Status  Status
	Message chat.Message
	Usage   *chat.Usage
	RunID   string
	Err     error
}

// Step maps a normalized message list to one model invocation.
type Step struct {
	cm           model.BaseChatModel
	systemPrompt string
	pricing      Pricing
}

// NewStep builds the delegation step. The system prompt, when non-empty, is
// prepended to every invocation and never echoed back into conversations.
func NewStep(cm model.BaseChatModel, systemPrompt string, pricing Pricing) *Step {
	return &Step{cm: cm, systemPrompt: systemPrompt, pricing: pricing}
}

// Execute invokes the model exactly once with the given messages and
// normalizes its reply. A model failure propagates as a failed Result; it is
// never retried here.
func (s *Step) Execute(ctx context.Context, messages []chat.Message) Result {
	out, err := s.cm.Generate(ctx, s.toSchema(messages))
	if err != nil {
		logx.Error().Err(err).Int("messages", len(messages)).Msg("model invocation failed")
		return Result{Status: StatusFailed, Err: err}
	}

	content := ""
	if out != nil {
		content = out.Content
	}
	usage := usageFrom(out)
	logUsageCost(usage, s.pricing)

	return Result{
		Status:  StatusSuccess,
		Message: chat.Message{Role: chat.RoleAssistant, Content: content},
		Usage:   usage,
		RunID:   runIDFrom(out),
	}
}

// toSchema converts the wire messages into the model's shape, prepending the
// system prompt when configured. Only role and content cross this boundary.
func (s *Step) toSchema(messages []chat.Message) []*schema.Message {
	msgs := make([]*schema.Message, 0, len(messages)+1)
	if s.systemPrompt != "" {
		msgs = append(msgs, schema.SystemMessage(s.systemPrompt))
	}
	for _, m := range messages {
		msgs = append(msgs, &schema.Message{
			Role:    toSchemaRole(m.Role),
			Content: m.Content,
		})
	}
	return msgs
}

func toSchemaRole(r chat.Role) schema.RoleType {
	switch r {
	case chat.RoleAssistant:
		return schema.Assistant
	case chat.RoleSystem:
		return schema.System
	default:
		return schema.User
	}
}

// usageFrom copies token usage out of the model reply, or nil when the
// provider reported none.
func usageFrom(out *schema.Message) *chat.Usage {
	if out == nil || out.ResponseMeta == nil || out.ResponseMeta.Usage == nil {
		return nil
	}
	u := out.ResponseMeta.Usage
	return &chat.Usage{
		InputTokens:  u.PromptTokens,
		OutputTokens: u.CompletionTokens,
		TotalTokens:  u.TotalTokens,
	}
}

// runIDFrom derives the run id from provider metadata: the response id when
// present, else the trace id, else empty (the caller falls back to its own).
func runIDFrom(out *schema.Message) string {
	if out == nil || out.Extra == nil {
		return ""
	}
	if id, ok := out.Extra[extraResponseID].(string); ok && id != "" {
		return id
	}
	if id, ok := out.Extra[extraTraceID].(string); ok && id != "" {
		return id
	}
	return ""
}
