// Package gemini implements [proofpad.Answerer] for the Google Gemini
// API. It wraps the google.golang.org/genai SDK, translating between
// proofpad's messages and genai Contents. A single non-streaming
// GenerateContent call serves each turn; progressive display is the
// client's reveal simulation, not transport streaming.
package gemini

const (
	defaultModel     = "gemini-3.1-pro-preview"
	defaultMaxTokens = 65536
)
