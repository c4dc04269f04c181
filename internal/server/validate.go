package server

import (
	"fmt"
	"strings"

	"github.com/HKYM39/my-recipe-agents-chat/internal/chat"
)

// validateRequest checks the inbound message list against the wire contract:
// a non-empty sequence where every message has a role from the closed set and
// non-empty content. It returns every violation it finds, not just the first,
// so the caller can join them into one 400 message.
func validateRequest(req *chat.ChatRequest) []string {
	if len(req.Messages) == 0 {
		return []string{"messages must be a non-empty array"}
	}

	var issues []string
	for i, m := range req.Messages {
		if !m.Role.Valid() {
			issues = append(issues, fmt.Sprintf("messages[%d].role must be one of user, assistant, system", i))
		}
		if strings.TrimSpace(m.Content) == "" {
			issues = append(issues, fmt.Sprintf("messages[%d].content must be a non-empty string", i))
		}
	}
	return issues
}
