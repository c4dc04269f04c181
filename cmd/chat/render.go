package main

import (
	"fmt"
	"strings"

	"github.com/HKYM39/my-recipe-agents-chat/internal/chat"
	"github.com/HKYM39/my-recipe-agents-chat/internal/segment"
)

const dividerWidth = 40

// renderMessage prints one message. Assistant content goes through the
// segmenter; user text is echoed as-is.
func renderMessage(m chat.UIMessage) {
	switch m.Role {
	case chat.RoleUser:
		fmt.Printf("you> %s\n", m.Content)
	case chat.RoleAssistant:
		fmt.Println("assistant>")
		renderSegments(segment.Split(m.Content))
		if m.Usage != nil && m.Usage.TotalTokens > 0 {
			fmt.Printf("  (%d tokens)\n", m.Usage.TotalTokens)
		}
	}
}

func renderSegments(segments []segment.Segment) {
	for _, s := range segments {
		switch s.Kind {
		case segment.KindHeading:
			fmt.Printf("  %s %s\n", strings.Repeat("#", s.Level), s.Text)
		case segment.KindParagraph:
			fmt.Printf("  %s\n", s.Text)
		case segment.KindList:
			for _, item := range s.Items {
				fmt.Printf("    * %s\n", item)
			}
		case segment.KindDivider:
			fmt.Printf("  %s\n", strings.Repeat("-", dividerWidth))
		}
	}
}
