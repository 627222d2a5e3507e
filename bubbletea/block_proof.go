package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"proofpad"
	"proofpad/markdown"
)

var _ MessageBlock = ProofBlock{}

// ProofBlock renders an assistant message: segment-parsed markdown
// when expanded, a one-line preview behind a toggle indicator when
// collapsed. While its message is mid-reveal the block receives the
// visible prefix as content and is always expanded.
type ProofBlock struct {
	content   string
	collapsed bool
	focused   bool
	theme     proofpad.Theme
	styles    Styles
}

// NewProofBlock creates a block for an assistant message.
func NewProofBlock(content string, collapsed, focused bool, theme proofpad.Theme, styles Styles) ProofBlock {
	return ProofBlock{
		content:   content,
		collapsed: collapsed,
		focused:   focused,
		theme:     theme,
		styles:    styles,
	}
}

func (b ProofBlock) View(width int) string {
	indicator := "▼"
	if b.collapsed {
		indicator = "▶"
	}
	header := indicator + " Answer"
	if b.focused {
		header += " (tab to toggle)"
	}
	headerStyled := b.styles.Muted.Render(lipgloss.NewStyle().Width(width).Render(header))

	if b.collapsed {
		return headerStyled + "\n" + b.styles.Muted.Render(preview(b.content, width))
	}
	return headerStyled + "\n" + markdown.RenderMessage(b.content, width, b.theme)
}

// preview returns the first line of content truncated to width runes,
// with key-step markup stripped so collapsed messages read cleanly.
func preview(content string, width int) string {
	var b strings.Builder
	for _, seg := range proofpad.ParseSegments(content) {
		switch s := seg.(type) {
		case proofpad.NormalSegment:
			b.WriteString(s.Text)
		case proofpad.KeyStepSegment:
			b.WriteString(s.Text)
		}
	}
	line := strings.TrimSpace(b.String())
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	runes := []rune(line)
	if width > 1 && len(runes) > width-1 {
		line = string(runes[:width-1]) + "…"
	}
	return line
}
