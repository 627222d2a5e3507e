package bubbletea

import "github.com/charmbracelet/lipgloss"

var _ MessageBlock = UserMessageBlock{}

// UserMessageBlock renders a user message with the user background.
// User messages are never revealed or collapsed.
type UserMessageBlock struct {
	text   string
	styles Styles
}

// NewUserMessageBlock creates a block for a user message.
func NewUserMessageBlock(text string, styles Styles) UserMessageBlock {
	return UserMessageBlock{text: text, styles: styles}
}

func (b UserMessageBlock) View(width int) string {
	wrap := lipgloss.NewStyle().Width(width - 2)
	label := b.styles.UserMsg.Render("You")
	return b.styles.UserBg.Render(label + "\n" + wrap.Render(b.text))
}
