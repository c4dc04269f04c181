package chat

// ChatRequest is the body of POST /api/chat: the full conversation so far,
// role and content only, in conversation order.
type ChatRequest struct {
	Messages []Message `json:"messages"`
}

// ChatResponse is the closed two-variant response envelope. The variants are
// distinguished structurally: Error present means failure, otherwise Message
// and RunID are set (Usage stays optional). Never both, never neither.
type ChatResponse struct {
	Message *Message `json:"message,omitempty"`
	Usage   *Usage   `json:"usage,omitempty"`
	RunID   string   `json:"runId,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// IsError reports whether the envelope carries the failure variant.
func (r *ChatResponse) IsError() bool {
	return r.Error != ""
}
