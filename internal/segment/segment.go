// Package segment turns raw assistant reply text into structural segments
// (headings, paragraphs, lists, dividers) for terminal rendering. The
// projection is rendering-only: segments are never persisted and never
// reassembled back into message content.
package segment

import (
	"strings"
)

// Kind discriminates the segment variants.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindList
	KindDivider
)

// Segment is one structural chunk of a message. Which fields are meaningful
// depends on Kind: Level and Text for headings, Text for paragraphs, Items
// for lists, nothing for dividers.
type Segment struct {
	Kind  Kind
	Level int
	Text  string
	Items []string
}

// Heading builds a heading segment.
func Heading(level int, text string) Segment {
	return Segment{Kind: KindHeading, Level: level, Text: text}
}

// Paragraph builds a paragraph segment.
func Paragraph(text string) Segment {
	return Segment{Kind: KindParagraph, Text: text}
}

// List builds a list segment.
func List(items []string) Segment {
	return Segment{Kind: KindList, Items: items}
}

// Divider builds a divider segment.
func Divider() Segment {
	return Segment{Kind: KindDivider}
}

// Split parses content line by line into an ordered segment sequence. The
// function is pure and total: any input yields a (possibly empty) sequence,
// never an error. Consecutive list lines accumulate into a single list
// segment; ordered and unordered markers are merged into one list type. A
// blank line, a divider, a heading, or a plain paragraph line flushes the
// pending list first, so output order always matches input line order.
func Split(content string) []Segment {
	var (
		segments []Segment
		pending  []string
	)

	flushList := func() {
		if len(pending) == 0 {
			return
		}
		segments = append(segments, List(pending))
		pending = nil
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flushList()

		case trimmed == "---":
			flushList()
			segments = append(segments, Divider())

		case headingLevel(trimmed) > 0:
			flushList()
			level := headingLevel(trimmed)
			text := strings.TrimSpace(trimmed[level:])
			segments = append(segments, Heading(level, text))

		case isBulletItem(trimmed):
			pending = append(pending, strings.TrimSpace(trimmed[2:]))

		case orderedMarkerLen(trimmed) > 0:
			pending = append(pending, strings.TrimSpace(trimmed[orderedMarkerLen(trimmed):]))

		default:
			flushList()
			segments = append(segments, Paragraph(trimmed))
		}
	}

	flushList()
	return segments
}

// headingLevel returns the heading level (1-4) when the line is a heading,
// else 0. A heading is a run of 1-4 '#' followed by whitespace.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 4 {
		return 0
	}
	if n >= len(line) || !isSpace(line[n]) {
		return 0
	}
	return n
}

// isBulletItem reports whether the line is an unordered list item:
// '-' or '*' followed by whitespace.
func isBulletItem(line string) bool {
	if len(line) < 2 {
		return false
	}
	if line[0] != '-' && line[0] != '*' {
		return false
	}
	return isSpace(line[1])
}

// orderedMarkerLen returns the length of an ordered-list marker prefix
// (digits, '.', whitespace), or 0 when the line carries none.
func orderedMarkerLen(line string) int {
	n := 0
	for n < len(line) && line[n] >= '0' && line[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0
	}
	if n >= len(line) || line[n] != '.' {
		return 0
	}
	n++
	if n >= len(line) || !isSpace(line[n]) {
		return 0
	}
	return n + 1
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
