// Package bubbletea provides the Bubble Tea TUI for proofpad.
package bubbletea

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"proofpad"
)

// AnswerFunc performs one request to the answering service. It blocks
// until the response arrives, the request fails, or ctx is cancelled.
type AnswerFunc func(ctx context.Context, req proofpad.AnswerRequest) (proofpad.AnswerResponse, error)

// Config carries display settings for the TUI.
type Config struct {
	// ModelName is the model label sent with each request and shown in
	// the status line.
	ModelName string
	// TickInterval is the reveal cadence. Zero uses 20ms.
	TickInterval time.Duration
}

// Run creates and runs the Bubble Tea TUI program. It blocks until the
// program exits. When ctx is cancelled the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// AnswerDoneMsg signals that the answering service call has completed.
type AnswerDoneMsg struct {
	Messages []proofpad.ChatMessage
	Err      error
}

// RevealTickMsg advances the typewriter reveal. It carries the
// generation it was scheduled for; the engine discards stale ticks.
type RevealTickMsg struct {
	Generation int
}
