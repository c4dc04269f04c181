package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HKYM39/my-recipe-agents-chat/internal/chat"
)

// fakeModel records its input and replays a canned reply or error.
type fakeModel struct {
	reply *schema.Message
	err   error

	calls int
	got   []*schema.Message
}

func (f *fakeModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.calls++
	f.got = input
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func TestExecuteInvokesModelOnceWithMappedMessages(t *testing.T) {
	fm := &fakeModel{reply: schema.AssistantMessage("try pad thai", nil)}
	step := NewStep(fm, "be helpful", Pricing{})

	res := step.Execute(context.Background(), []chat.Message{
		{Role: chat.RoleUser, Content: "I like Thai food"},
		{Role: chat.RoleAssistant, Content: "Noted!"},
		{Role: chat.RoleUser, Content: "What should I cook?"},
	})

	require.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, 1, fm.calls)

	require.Len(t, fm.got, 4)
	assert.Equal(t, schema.System, fm.got[0].Role)
	assert.Equal(t, "be helpful", fm.got[0].Content)
	assert.Equal(t, schema.User, fm.got[1].Role)
	assert.Equal(t, "I like Thai food", fm.got[1].Content)
	assert.Equal(t, schema.Assistant, fm.got[2].Role)
	assert.Equal(t, schema.User, fm.got[3].Role)
}

func TestExecuteWithoutSystemPromptSendsMessagesAsIs(t *testing.T) {
	fm := &fakeModel{reply: schema.AssistantMessage("ok", nil)}
	step := NewStep(fm, "", Pricing{})

	step.Execute(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "hi"}})

	require.Len(t, fm.got, 1)
	assert.Equal(t, schema.User, fm.got[0].Role)
}

func TestExecuteNormalizesReply(t *testing.T) {
	reply := schema.AssistantMessage("stir-fry tonight", nil)
	reply.ResponseMeta = &schema.ResponseMeta{
		Usage: &schema.TokenUsage{PromptTokens: 12, CompletionTokens: 7, TotalTokens: 19},
	}
	fm := &fakeModel{reply: reply}
	step := NewStep(fm, "", Pricing{})

	res := step.Execute(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "dinner?"}})

	require.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, chat.RoleAssistant, res.Message.Role)
	assert.Equal(t, "stir-fry tonight", res.Message.Content)
	require.NotNil(t, res.Usage)
	assert.Equal(t, 12, res.Usage.InputTokens)
	assert.Equal(t, 7, res.Usage.OutputTokens)
	assert.Equal(t, 19, res.Usage.TotalTokens)
}

func TestExecuteMissingUsageStaysNil(t *testing.T) {
	fm := &fakeModel{reply: schema.AssistantMessage("ok", nil)}
	step := NewStep(fm, "", Pricing{})

	res := step.Execute(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "hi"}})

	assert.Nil(t, res.Usage)
}

func TestExecuteRunIDDerivation(t *testing.T) {
	withExtra := func(extra map[string]any) *fakeModel {
		reply := schema.AssistantMessage("ok", nil)
		reply.Extra = extra
		return &fakeModel{reply: reply}
	}

	res := NewStep(withExtra(map[string]any{"response_id": "resp-1", "trace_id": "trace-1"}), "", Pricing{}).
		Execute(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "hi"}})
	assert.Equal(t, "resp-1", res.RunID)

	res = NewStep(withExtra(map[string]any{"trace_id": "trace-1"}), "", Pricing{}).
		Execute(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "hi"}})
	assert.Equal(t, "trace-1", res.RunID)

	res = NewStep(withExtra(nil), "", Pricing{}).
		Execute(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "hi"}})
	assert.Empty(t, res.RunID)
}

func TestExecuteModelFailureIsNotRetried(t *testing.T) {
	fm := &fakeModel{err: errors.New("quota exceeded")}
	step := NewStep(fm, "", Pricing{})

	res := step.Execute(context.Background(), []chat.Message{{Role: chat.RoleUser, Content: "hi"}})

	assert.Equal(t, StatusFailed, res.Status)
	assert.ErrorContains(t, res.Err, "quota exceeded")
	assert.Equal(t, 1, fm.calls)
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Resolve(StepID)
	assert.False(t, ok)

	step := NewStep(&fakeModel{reply: schema.AssistantMessage("ok", nil)}, "", Pricing{})
	r.Register(StepID, step)

	got, ok := r.Resolve(StepID)
	require.True(t, ok)
	assert.Same(t, step, got)
}

func TestComputeCost(t *testing.T) {
	usage := &chat.Usage{InputTokens: 1_000_000, OutputTokens: 2_000_000}
	in, out, total := ComputeCost(usage, Pricing{InputPerM: 0.30, OutputPerM: 2.50})

	assert.InDelta(t, 0.30, in, 1e-9)
	assert.InDelta(t, 5.00, out, 1e-9)
	assert.InDelta(t, 5.30, total, 1e-9)

	in, out, total = ComputeCost(nil, Pricing{InputPerM: 0.30, OutputPerM: 2.50})
	assert.Zero(t, in)
	assert.Zero(t, out)
	assert.Zero(t, total)
}
