package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"proofpad"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	UserMsg   lipgloss.Style
	KeyStep   lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	UserBg    lipgloss.Style
	ActiveTab lipgloss.Style
	Tab       lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t proofpad.Theme) Styles {
	return Styles{
		UserMsg:   lipgloss.NewStyle().Foreground(ansiColor(t.UserMsg)).Bold(true),
		KeyStep:   lipgloss.NewStyle().Foreground(ansiColor(t.KeyStep)),
		Error:     lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success:   lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:     lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:    lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		UserBg:    lipgloss.NewStyle().Background(ansiColor(t.UserBg)).PaddingLeft(1),
		ActiveTab: lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true).Underline(true),
		Tab:       lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
