package proofpad

// Session is an isolated, named conversation history.
type Session struct {
	ID       string
	Title    string
	Messages []ChatMessage
}
