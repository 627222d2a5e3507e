// Package deepseek implements [proofpad.Answerer] over the DeepSeek
// chat API, which speaks the OpenAI wire protocol. The same client
// serves the gpt-5 label through an OpenAI-compatible relay endpoint by
// overriding the base URL.
package deepseek

const (
	defaultBaseURL = "https://api.deepseek.com/v1"
	defaultModel   = "deepseek-chat"
)
