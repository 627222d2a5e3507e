package proofpad

import (
	"context"
	"fmt"
)

// Model labels accepted from the user. Providers map these to their
// own wire-level model names.
const (
	ModelDeepSeek = "deepseek-v3.2"
	ModelGPT5     = "gpt-5"
	ModelGemini   = "gemini"
)

// KnownModel reports whether label is a recognized model label. The
// empty label means the provider default and is always accepted.
func KnownModel(label string) bool {
	switch label {
	case "", ModelDeepSeek, ModelGPT5, ModelGemini:
		return true
	}
	return false
}

// AnswerRequest carries the conversation so far plus optional
// supplementary LaTeX input to the answering service.
type AnswerRequest struct {
	Messages []ChatMessage
	LaTeX    string
	Model    string // model label; empty = provider default
}

// Validate checks universal constraints on AnswerRequest. Providers
// may apply additional provider-specific validation.
func (r AnswerRequest) Validate() error {
	if len(r.Messages) == 0 {
		return fmt.Errorf("messages must not be empty: %w", ErrValidation)
	}
	if !KnownModel(r.Model) {
		return fmt.Errorf("model %q: %w", r.Model, ErrUnknownModel)
	}
	return nil
}

// AnswerResponse is the answering service's reply: the new full
// message list, which replaces the client's history wholesale, plus
// the final assistant content as a convenience.
type AnswerResponse struct {
	Messages   []ChatMessage
	RawContent string
}

// Answerer is a strategy pattern interface for answering services.
// An implementation performs exactly one request per call and returns
// the finalized message list; there is no client-side merge logic.
type Answerer interface {
	Answer(ctx context.Context, req AnswerRequest) (AnswerResponse, error)
}
