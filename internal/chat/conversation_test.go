package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAssistant.Valid())
	assert.True(t, RoleSystem.Valid())
	assert.False(t, Role("tool").Valid())
	assert.False(t, Role("").Valid())
}

func TestConversationAppendAndRemove(t *testing.T) {
	conv := Conversation{}
	user := NewUserMessage("hello")
	conv = conv.Append(user)
	conv = conv.Append(NewAssistantMessage("r1", "hi there", nil))
	require.Len(t, conv, 2)

	conv = conv.RemoveByID(user.ID)
	require.Len(t, conv, 1)
	assert.Equal(t, "r1", conv[0].ID)

	// removing an unknown id is a no-op
	assert.Len(t, conv.RemoveByID("nope"), 1)
}

func TestConversationWireStripsIdentifiers(t *testing.T) {
	conv := Conversation{
		NewAssistantMessage("w1", "welcome", &Usage{TotalTokens: 5}),
		NewUserMessage("I like noodles"),
	}

	wire := conv.Wire()

	require.Len(t, wire, 2)
	assert.Equal(t, Message{Role: RoleAssistant, Content: "welcome"}, wire[0])
	assert.Equal(t, Message{Role: RoleUser, Content: "I like noodles"}, wire[1])
}

func TestNewMessagesGenerateUniqueIDs(t *testing.T) {
	a := NewUserMessage("x")
	b := NewUserMessage("x")
	assert.NotEqual(t, a.ID, b.ID)

	// empty assistant id is replaced, explicit one kept
	assert.NotEmpty(t, NewAssistantMessage("", "x", nil).ID)
	assert.Equal(t, "r1", NewAssistantMessage("r1", "x", nil).ID)
}
