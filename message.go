package proofpad

// ChatMessage is a single conversation message. Messages are immutable
// once appended to a session; a session's message list is only ever
// replaced wholesale with the list returned by the answering service.
type ChatMessage struct {
	Role    Role
	Content string
}

// LastAssistantIndex returns the index of the last assistant-authored
// message in msgs, or -1 if there is none.
func LastAssistantIndex(msgs []ChatMessage) int {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == RoleAssistant {
			return i
		}
	}
	return -1
}
