package bubbletea

// MessageBlock is a renderable element in the conversation. View takes
// a width parameter so the root model controls layout and blocks are
// testable in isolation. Blocks are built fresh from engine state on
// each render; collapse and reveal state live in the engine, not here.
type MessageBlock interface {
	View(width int) string
}
