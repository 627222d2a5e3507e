package markdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"proofpad"
)

// renderKeyStep renders a key-step segment as a left-bordered frame
// with a header naming the theorem invoked.
func renderKeyStep(seg proofpad.KeyStepSegment, width int, theme proofpad.Theme) string {
	color := ansiColor(theme.KeyStep)
	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(color).
		PaddingLeft(1)
	headerStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	header := "Key step"
	if seg.Theorem != "" {
		header += ": " + seg.Theorem
	}
	if seg.ID != "" {
		header += " [" + seg.ID + "]"
	}

	innerWidth := width - 2 // border + padding
	if innerWidth < 10 {
		innerWidth = 10
	}
	body := Render(strings.TrimSpace(seg.Text), innerWidth, theme)

	content := headerStyle.Render(header)
	if body != "" {
		content += "\n" + body
	}
	return frame.Render(content)
}
