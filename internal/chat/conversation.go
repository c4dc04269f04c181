package chat

// Conversation is the ordered message history of one session. Insertion order
// is display order is chronological order.
type Conversation []UIMessage

// Append returns the conversation with msg added at the end.
func (c Conversation) Append(msg UIMessage) Conversation {
	return append(c, msg)
}

// RemoveByID returns the conversation without the message carrying id. Used
// for rolling back an optimistic append; removing an unknown id is a no-op.
func (c Conversation) RemoveByID(id string) Conversation {
	out := make(Conversation, 0, len(c))
	for _, m := range c {
		if m.ID == id {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Wire strips identifiers and usage, producing the role+content list sent to
// the server in conversation order.
func (c Conversation) Wire() []Message {
	msgs := make([]Message, 0, len(c))
	for _, m := range c {
		msgs = append(msgs, Message{Role: m.Role, Content: m.Content})
	}
	return msgs
}

// Last returns the final message and true, or a zero message and false when
// the conversation is empty.
func (c Conversation) Last() (UIMessage, bool) {
	if len(c) == 0 {
		return UIMessage{}, false
	}
	return c[len(c)-1], true
}
