// Package markdown renders assistant output to ANSI-styled terminal
// text using goldmark for parsing and lipgloss for styling. Inline
// LaTeX passes through verbatim as text; typesetting beyond markdown
// structure is out of scope.
package markdown

import (
	"strings"

	"proofpad"
)

// Render parses a markdown fragment and returns ANSI-styled terminal
// output word-wrapped to width. Code blocks keep their lines intact.
func Render(source string, width int, theme proofpad.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}

// RenderMessage segments assistant content on the key-step markup and
// renders each segment: normal text as markdown, key steps inside a
// framed block headed by the theorem invoked. The parser is total, so
// malformed markup degrades to literal text rather than failing.
func RenderMessage(content string, width int, theme proofpad.Theme) string {
	var parts []string
	for _, seg := range proofpad.ParseSegments(content) {
		switch s := seg.(type) {
		case proofpad.NormalSegment:
			if strings.TrimSpace(s.Text) == "" {
				continue
			}
			parts = append(parts, Render(strings.TrimSpace(s.Text), width, theme))
		case proofpad.KeyStepSegment:
			parts = append(parts, renderKeyStep(s, width, theme))
		}
	}
	return strings.Join(parts, "\n\n")
}
