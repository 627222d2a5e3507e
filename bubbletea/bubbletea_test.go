package bubbletea_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"proofpad"
	bt "proofpad/bubbletea"
)

// nopAnswer replies to every request with a fixed assistant message.
func nopAnswer(_ context.Context, req proofpad.AnswerRequest) (proofpad.AnswerResponse, error) {
	msgs := append([]proofpad.ChatMessage{}, req.Messages...)
	msgs = append(msgs, proofpad.ChatMessage{Role: proofpad.RoleAssistant, Content: "Hello!"})
	return proofpad.AnswerResponse{Messages: msgs, RawContent: "Hello!"}, nil
}

func newModel(answer bt.AnswerFunc) bt.Model {
	engine := proofpad.NewEngine()
	theme := proofpad.DefaultTheme()
	return bt.New(answer, engine, theme, bt.Config{ModelName: proofpad.ModelDeepSeek})
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, answer bt.AnswerFunc) bt.Model {
	t.Helper()
	return initModelWithSize(t, answer, 80, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, answer bt.AnswerFunc, width, height int) bt.Model {
	t.Helper()
	m := newModel(answer)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// submitText types text and presses Enter, returning the updated model
// and the command produced by the submit.
func submitText(t *testing.T, m bt.Model, text string) (bt.Model, tea.Cmd) {
	t.Helper()
	m.Input.SetValue(text)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model, cmd
}

// completeAnswer runs the submit command synchronously and feeds its
// result back into the model, as the Bubble Tea runtime would.
func completeAnswer(t *testing.T, m bt.Model, cmd tea.Cmd) bt.Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	done, ok := msg.(bt.AnswerDoneMsg)
	require.True(t, ok)
	return updateModel(t, m, done)
}

// drainReveal feeds reveal ticks until the engine returns to idle.
func drainReveal(t *testing.T, m bt.Model) bt.Model {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if m.Engine().Phase() != proofpad.PhaseRevealing {
			return m
		}
		m = updateModel(t, m, bt.RevealTickMsg{Generation: m.Engine().Generation()})
	}
	t.Fatal("reveal did not complete")
	return m
}
