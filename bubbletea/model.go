package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"proofpad"
)

var _ tea.Model = Model{}

const defaultTickInterval = 20 * time.Millisecond

// latexCommand attaches supplementary LaTeX input to the next submit.
const latexCommand = "/latex "

var errCancelled = errors.New("request cancelled")

// Model is the Bubble Tea model for the proofpad TUI. All conversation
// state lives in the engine; the model translates terminal events into
// engine transitions and renders the result.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	engine *proofpad.Engine
	answer AnswerFunc
	theme  proofpad.Theme
	styles Styles
	config Config

	pendingLaTeX string
	focus        int // index of focused assistant message (-1 = none)
	cancel       context.CancelFunc
	ready        bool
}

// New creates a new TUI Model with the given answer function, engine,
// and theme.
func New(answer AnswerFunc, engine *proofpad.Engine, theme proofpad.Theme, config Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about functional analysis..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	if config.TickInterval <= 0 {
		config.TickInterval = defaultTickInterval
	}

	return Model{
		Input:  ti,
		engine: engine,
		answer: answer,
		theme:  theme,
		styles: NewStyles(theme),
		config: config,
		focus:  -1,
	}
}

// Engine returns the underlying engine. Exported for test access.
func (m Model) Engine() *proofpad.Engine { return m.engine }

// PendingLaTeX returns the LaTeX input staged for the next submit.
func (m Model) PendingLaTeX() string { return m.pendingLaTeX }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case AnswerDoneMsg:
		return m.handleAnswerDone(msg)

	case RevealTickMsg:
		return m.handleRevealTick(msg)
	}

	// Pass remaining messages to sub-components. Viewport always
	// receives messages for scrolling (keyboard and mouse).
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if m.engine.Phase() != proofpad.PhaseLoading {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n")
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	// Tab bar, status line and input each take a row, plus a row of
	// separation.
	vpHeight := msg.Height - 4
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m = m.updateFocus()
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
		m.Viewport.SetContent(m.renderContent())
	}

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	loading := m.engine.Phase() == proofpad.PhaseLoading

	switch msg.Type {
	case tea.KeyCtrlC:
		if loading {
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		if loading {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submitInput(text)

	case tea.KeyCtrlN:
		if _, err := m.engine.NewSession(); err != nil {
			return m, nil
		}
		m.pendingLaTeX = ""
		m = m.updateFocus()
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoTop()
		return m, nil

	case tea.KeyCtrlP:
		return m.cycleSession(-1), nil

	case tea.KeyCtrlO:
		return m.cycleSession(1), nil

	case tea.KeyTab:
		if !loading && m.focus >= 0 {
			m.engine.ToggleCollapse(m.focus)
			m.Viewport.SetContent(m.renderContent())
		}
		return m, nil

	case tea.KeyShiftTab:
		if !loading {
			m = m.cycleFocusPrev()
			m.Viewport.SetContent(m.renderContent())
		}
		return m, nil
	}

	// When idle, pass keys to both input (for typing) and viewport
	// (for scrolling). Only forward non-character keys to viewport to
	// avoid conflicts (e.g. 'j'/'k' are viewport scroll AND text).
	if !loading {
		var cmd tea.Cmd
		var cmds []tea.Cmd

		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")

	// Stage LaTeX for the next question instead of submitting it.
	if rest, ok := strings.CutPrefix(text, latexCommand); ok {
		m.pendingLaTeX = strings.TrimSpace(rest)
		return m, nil
	}

	msgs, err := m.engine.Submit(text)
	if err != nil {
		return m, nil
	}

	req := proofpad.AnswerRequest{
		Messages: msgs,
		LaTeX:    m.pendingLaTeX,
		Model:    m.config.ModelName,
	}
	m.pendingLaTeX = ""

	m = m.updateFocus()
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.Input.Blur()

	return m, startAnswer(m.answer, ctx, req)
}

func (m Model) handleAnswerDone(msg AnswerDoneMsg) (tea.Model, tea.Cmd) {
	m.cancel = nil

	switch {
	case errors.Is(msg.Err, context.Canceled):
		m.engine.ResponseFailed(errCancelled)
	case msg.Err != nil:
		m.engine.ResponseFailed(msg.Err)
	default:
		m.engine.ResponseReceived(msg.Messages)
	}

	m = m.updateFocus()
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	cmds := []tea.Cmd{m.Input.Focus()}
	if m.engine.Phase() == proofpad.PhaseRevealing {
		cmds = append(cmds, m.tickCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleRevealTick(msg RevealTickMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.engine.Generation() {
		// Stale tick from a superseded reveal.
		return m, nil
	}
	done := m.engine.Tick(msg.Generation)
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	if done {
		return m, nil
	}
	return m, m.tickCmd()
}

// tickCmd schedules the next reveal tick stamped with the current
// generation.
func (m Model) tickCmd() tea.Cmd {
	gen := m.engine.Generation()
	return tea.Tick(m.config.TickInterval, func(time.Time) tea.Msg {
		return RevealTickMsg{Generation: gen}
	})
}

func (m Model) cycleSession(delta int) Model {
	sessions := m.engine.Sessions()
	if len(sessions) < 2 {
		return m
	}
	cur := 0
	for i, s := range sessions {
		if s.ID == m.engine.ActiveSessionID() {
			cur = i
			break
		}
	}
	next := (cur + delta + len(sessions)) % len(sessions)
	if err := m.engine.SelectSession(sessions[next].ID); err != nil {
		return m
	}
	m.pendingLaTeX = ""
	m = m.updateFocus()
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

// updateFocus points focus at the last assistant message, the one Tab
// toggles by default. ShiftTab cycles to earlier assistant messages.
func (m Model) updateFocus() Model {
	m.focus = proofpad.LastAssistantIndex(m.engine.Messages())
	return m
}

// cycleFocusPrev moves focus to the previous assistant message,
// wrapping around.
func (m Model) cycleFocusPrev() Model {
	msgs := m.engine.Messages()
	if m.focus < 0 {
		return m.updateFocus()
	}
	for off := 1; off <= len(msgs); off++ {
		idx := (m.focus - off + len(msgs)) % len(msgs)
		if msgs[idx].Role == proofpad.RoleAssistant {
			m.focus = idx
			return m
		}
	}
	return m
}

func (m Model) renderContent() string {
	msgs := m.engine.VisibleMessages()
	if len(msgs) == 0 {
		return m.styles.Muted.Render("New conversation. Ask a question to begin.")
	}

	revealing := m.engine.RevealIndex()
	idle := m.engine.Phase() == proofpad.PhaseIdle

	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		var block MessageBlock
		switch msg.Role {
		case proofpad.RoleAssistant:
			collapsed := m.engine.IsCollapsed(i) && i != revealing
			focused := idle && i == m.focus
			block = NewProofBlock(msg.Content, collapsed, focused, m.theme, m.styles)
		default:
			block = NewUserMessageBlock(msg.Content, m.styles)
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

func (m Model) tabBar() string {
	sessions := m.engine.Sessions()
	active := m.engine.ActiveSessionID()
	parts := make([]string, len(sessions))
	for i, s := range sessions {
		if s.ID == active {
			parts[i] = m.styles.ActiveTab.Render(s.Title)
		} else {
			parts[i] = m.styles.Tab.Render(s.Title)
		}
	}
	return strings.Join(parts, m.styles.Muted.Render(" | "))
}

func (m Model) statusLine() string {
	if err := m.engine.Err(); err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", err))
	}
	if m.engine.Phase() == proofpad.PhaseLoading {
		return m.styles.Muted.Render("Thinking...")
	}

	hints := "Enter to send | Ctrl+N new chat | Ctrl+P/Ctrl+O switch chat | Tab to toggle | Ctrl+C to quit"
	if m.pendingLaTeX != "" {
		return m.styles.Success.Render("LaTeX attached") + " " + m.styles.Muted.Render(hints)
	}
	return m.styles.Muted.Render(hints)
}

// startAnswer runs the answering request in a goroutine and delivers
// the result as an AnswerDoneMsg.
func startAnswer(answer AnswerFunc, ctx context.Context, req proofpad.AnswerRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := answer(ctx, req)
		return AnswerDoneMsg{Messages: resp.Messages, Err: err}
	}
}
