package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"proofpad"
)

// Interface compliance check.
var _ proofpad.Answerer = (*Client)(nil)

// Client implements [proofpad.Answerer] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is gemini-3.1-pro-preview.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{client: gc, model: defaultModel}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Answer performs one GenerateContent round trip with the same prompt
// preparation as the DeepSeek client: hint prepended, LaTeX appended,
// and neither visible in the returned history.
func (c *Client) Answer(ctx context.Context, req proofpad.AnswerRequest) (proofpad.AnswerResponse, error) {
	if err := req.Validate(); err != nil {
		return proofpad.AnswerResponse{}, err
	}
	switch req.Model {
	case "", proofpad.ModelGemini:
	default:
		return proofpad.AnswerResponse{}, fmt.Errorf("model %q: %w", req.Model, proofpad.ErrUnknownModel)
	}

	contents := ConvertMessages(proofpad.PrepareMessages(req.Messages, req.LaTeX))
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: defaultMaxTokens,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return proofpad.AnswerResponse{}, fmt.Errorf("gemini: %w", err)
	}
	content := responseText(resp)

	out := make([]proofpad.ChatMessage, 0, len(req.Messages)+1)
	out = append(out, req.Messages...)
	out = append(out, proofpad.ChatMessage{Role: proofpad.RoleAssistant, Content: content})
	return proofpad.AnswerResponse{Messages: out, RawContent: content}, nil
}

// ConvertMessages converts proofpad messages to genai Contents.
// Exported for testing.
func ConvertMessages(msgs []proofpad.ChatMessage) []*genai.Content {
	var result []*genai.Content
	for _, msg := range msgs {
		role := "user"
		if msg.Role == proofpad.RoleAssistant {
			role = "model"
		}
		result = append(result, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}
	return result
}

// responseText concatenates the non-thought text parts of the first
// candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && p.Text != "" && !p.Thought {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
