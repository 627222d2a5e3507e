package proofpad

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Store holds the ordered collection of chat sessions. Exactly one
// session is active once any exists. Sessions never share message
// slices: message lists are copied on read and on replace so callers
// cannot alias the stored history.
type Store struct {
	sessions []Session
	active   int // index into sessions; -1 before the first session
	created  int // total sessions ever created, for display titles
}

// NewStore returns an empty Store with no active session.
func NewStore() *Store {
	return &Store{active: -1}
}

// CreateSession appends a new empty session with an auto-generated
// title, makes it active, and returns its id.
func (s *Store) CreateSession() string {
	s.created++
	id, err := gonanoid.New(10)
	if err != nil {
		// crypto/rand failure; fall back to the creation counter.
		id = fmt.Sprintf("session-%d", s.created)
	}
	s.sessions = append(s.sessions, Session{
		ID:    id,
		Title: fmt.Sprintf("Chat %d", s.created),
	})
	s.active = len(s.sessions) - 1
	return id
}

// SelectSession makes the session with the given id active. Unknown
// ids are silently ignored and it reports false; the active session is
// unchanged.
func (s *Store) SelectSession(id string) bool {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			s.active = i
			return true
		}
	}
	return false
}

// ReplaceActiveMessages overwrites the active session's message list
// with a copy of msgs. This is the sole mutation entry point for
// message history. It is a no-op before any session exists.
func (s *Store) ReplaceActiveMessages(msgs []ChatMessage) {
	if s.active < 0 {
		return
	}
	cp := make([]ChatMessage, len(msgs))
	copy(cp, msgs)
	s.sessions[s.active].Messages = cp
}

// RenameActive sets the active session's display title.
func (s *Store) RenameActive(title string) {
	if s.active < 0 {
		return
	}
	s.sessions[s.active].Title = title
}

// ActiveID returns the active session's id, or "" when none exists.
func (s *Store) ActiveID() string {
	if s.active < 0 {
		return ""
	}
	return s.sessions[s.active].ID
}

// ActiveTitle returns the active session's title, or "" when none
// exists.
func (s *Store) ActiveTitle() string {
	if s.active < 0 {
		return ""
	}
	return s.sessions[s.active].Title
}

// ActiveMessages returns a copy of the active session's message list.
func (s *Store) ActiveMessages() []ChatMessage {
	if s.active < 0 {
		return nil
	}
	msgs := s.sessions[s.active].Messages
	cp := make([]ChatMessage, len(msgs))
	copy(cp, msgs)
	return cp
}

// Len returns the number of sessions.
func (s *Store) Len() int { return len(s.sessions) }

// Sessions returns the session list in creation order with copied
// message slices.
func (s *Store) Sessions() []Session {
	out := make([]Session, len(s.sessions))
	for i, sess := range s.sessions {
		cp := make([]ChatMessage, len(sess.Messages))
		copy(cp, sess.Messages)
		out[i] = Session{ID: sess.ID, Title: sess.Title, Messages: cp}
	}
	return out
}
