package proofpad

import (
	"strings"
	"unicode/utf8"
)

// Phase names the engine's current state. Each external event maps to
// exactly one transition; everything else is a no-op.
type Phase int

const (
	PhaseIdle      Phase = iota // waiting for input
	PhaseLoading                // a request to the answering service is outstanding
	PhaseRevealing              // typewriter reveal of the newest assistant message
	PhaseErrored                // last request failed; cleared on the next submit
)

// maxTitleLen bounds auto-generated session titles in runes.
const maxTitleLen = 24

// Engine is the client-side state machine driving the chat view. It
// owns the session store, the reveal controller and the collapse
// registry, and is the single writer for all three. It performs no
// I/O: the caller submits, delivers responses and failures, and ticks
// the reveal on its own cadence.
//
// Engine assumes single-threaded cooperative scheduling; it is not
// safe for concurrent use.
type Engine struct {
	store    *Store
	reveal   Reveal
	collapse CollapseMap
	phase    Phase
	err      error
}

// NewEngine returns an Engine with one empty active session.
func NewEngine() *Engine {
	e := &Engine{
		store:    NewStore(),
		collapse: NewCollapseMap(),
	}
	e.store.CreateSession()
	return e
}

// Submit records the user's message on the active session and enters
// the loading phase. It returns the message list snapshot to send to
// the answering service. While a request is outstanding it returns
// ErrBusy: overlapping submissions are rejected, not queued.
func (e *Engine) Submit(text string) ([]ChatMessage, error) {
	if e.phase == PhaseLoading {
		return nil, ErrBusy
	}
	e.err = nil

	msgs := e.store.ActiveMessages()
	if len(msgs) == 0 {
		e.store.RenameActive(titleFor(text))
	}
	msgs = append(msgs, ChatMessage{Role: RoleUser, Content: text})
	e.store.ReplaceActiveMessages(msgs)

	e.reveal.Clear()
	e.phase = PhaseLoading
	return msgs, nil
}

// ResponseReceived installs the finalized message list from the
// answering service and arms the reveal for its last assistant
// message. Responses arriving outside the loading phase are stale and
// discarded.
func (e *Engine) ResponseReceived(msgs []ChatMessage) {
	if e.phase != PhaseLoading {
		return
	}
	e.err = nil
	e.store.ReplaceActiveMessages(msgs)

	idx := LastAssistantIndex(msgs)
	if idx < 0 {
		e.reveal.Clear()
		e.phase = PhaseIdle
		return
	}
	e.reveal.Arm(idx, msgs[idx].Content)
	if !e.reveal.Active() {
		// Empty message: complete immediately, no ticking.
		e.collapse.SetCollapsed(idx, true)
		e.phase = PhaseIdle
		return
	}
	e.phase = PhaseRevealing
}

// ResponseFailed surfaces a request failure. Message history is left
// untouched and no retry is attempted; the user must resubmit.
func (e *Engine) ResponseFailed(err error) {
	if e.phase != PhaseLoading {
		return
	}
	e.err = err
	e.phase = PhaseErrored
}

// Tick advances the reveal by one step. Ticks carrying a stale
// generation are discarded. It reports whether this tick completed the
// reveal; on completion the revealed message auto-collapses and the
// engine returns to idle.
func (e *Engine) Tick(generation int) (done bool) {
	if !e.reveal.Advance(generation) {
		return false
	}
	e.collapse.SetCollapsed(e.reveal.Index(), true)
	e.phase = PhaseIdle
	return true
}

// NewSession creates a fresh session, makes it active and resets the
// per-session view state. It is rejected while a request is
// outstanding.
func (e *Engine) NewSession() (string, error) {
	if e.phase == PhaseLoading {
		return "", ErrBusy
	}
	id := e.store.CreateSession()
	e.resetView()
	return id, nil
}

// SelectSession makes the session with the given id active. Unknown
// ids are silently ignored with the view state untouched. Selection is
// rejected while a request is outstanding.
func (e *Engine) SelectSession(id string) error {
	if e.phase == PhaseLoading {
		return ErrBusy
	}
	if !e.store.SelectSession(id) {
		return nil
	}
	e.resetView()
	return nil
}

// resetView re-derives the per-session view state: reveal cleared,
// collapse decisions back to default expanded, error slot emptied.
func (e *Engine) resetView() {
	e.reveal.Clear()
	e.collapse = NewCollapseMap()
	e.err = nil
	e.phase = PhaseIdle
}

// ToggleCollapse flips the collapsed state of the message at index.
func (e *Engine) ToggleCollapse(index int) {
	e.collapse.Toggle(index)
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Err returns the error from the last failed request, if any.
func (e *Engine) Err() error { return e.err }

// Generation returns the reveal generation to stamp onto tick events.
func (e *Engine) Generation() int { return e.reveal.Generation() }

// RevealIndex returns the index of the message being revealed, or -1
// when no reveal is in progress.
func (e *Engine) RevealIndex() int {
	if !e.reveal.Active() {
		return -1
	}
	return e.reveal.Index()
}

// IsCollapsed reports whether the message at index is collapsed.
func (e *Engine) IsCollapsed(index int) bool { return e.collapse.IsCollapsed(index) }

// Messages returns a copy of the active session's full message list.
func (e *Engine) Messages() []ChatMessage { return e.store.ActiveMessages() }

// VisibleMessages returns the active session's messages as they should
// be rendered: while a reveal is in progress, the target message's
// content is replaced by the visible prefix.
func (e *Engine) VisibleMessages() []ChatMessage {
	msgs := e.store.ActiveMessages()
	if e.reveal.Active() && e.reveal.Index() < len(msgs) {
		msgs[e.reveal.Index()].Content = e.reveal.Visible()
	}
	return msgs
}

// Sessions returns the session list in creation order.
func (e *Engine) Sessions() []Session { return e.store.Sessions() }

// ActiveSessionID returns the active session's id.
func (e *Engine) ActiveSessionID() string { return e.store.ActiveID() }

// titleFor derives a session display title from the first submitted
// message: its first line, truncated to maxTitleLen runes.
func titleFor(text string) string {
	line := text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if utf8.RuneCountInString(line) <= maxTitleLen {
		return line
	}
	runes := []rune(line)
	return string(runes[:maxTitleLen]) + "…"
}
