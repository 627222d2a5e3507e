package deepseek

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"proofpad"
)

// Interface compliance check.
var _ proofpad.Answerer = (*Client)(nil)

// Client implements [proofpad.Answerer] for OpenAI-compatible chat
// endpoints, DeepSeek's in particular.
type Client struct {
	api   *openai.Client
	model string
}

type config struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*config)

// WithBaseURL overrides the API base URL. Default is the DeepSeek
// endpoint.
func WithBaseURL(u string) Option {
	return func(c *config) { c.baseURL = u }
}

// WithModel sets the default wire-level model used when the request
// carries no model label. Default is deepseek-chat.
func WithModel(model string) Option {
	return func(c *config) { c.model = model }
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) { c.httpClient = hc }
}

// New creates a new DeepSeek [Client] with the given API key and
// options.
func New(apiKey string, opts ...Option) *Client {
	cfg := config{baseURL: defaultBaseURL, model: defaultModel}
	for _, o := range opts {
		o(&cfg)
	}
	oc := openai.DefaultConfig(apiKey)
	oc.BaseURL = cfg.baseURL
	if cfg.httpClient != nil {
		oc.HTTPClient = cfg.httpClient
	}
	return &Client{api: openai.NewClientWithConfig(oc), model: cfg.model}
}

// Answer performs one chat completion round trip. The outgoing message
// list is the request history with a task-type hint prepended and the
// raw LaTeX input appended; the returned list is the request history
// plus the new assistant message, so internal hints are never shown to
// the user. On any failure the response is zero and the caller's
// history is untouched.
func (c *Client) Answer(ctx context.Context, req proofpad.AnswerRequest) (proofpad.AnswerResponse, error) {
	if err := req.Validate(); err != nil {
		return proofpad.AnswerResponse{}, err
	}
	model, err := resolveModel(req.Model, c.model)
	if err != nil {
		return proofpad.AnswerResponse{}, err
	}

	prepared := proofpad.PrepareMessages(req.Messages, req.LaTeX)
	wire := make([]openai.ChatCompletionMessage, len(prepared))
	for i, m := range prepared {
		wire[i] = openai.ChatCompletionMessage{
			Role:    wireRole(m.Role),
			Content: m.Content,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: wire,
	})
	if err != nil {
		return proofpad.AnswerResponse{}, fmt.Errorf("deepseek: %w", err)
	}
	if len(resp.Choices) == 0 {
		return proofpad.AnswerResponse{}, fmt.Errorf("deepseek: response contained no choices")
	}
	content := resp.Choices[0].Message.Content

	out := make([]proofpad.ChatMessage, 0, len(req.Messages)+1)
	out = append(out, req.Messages...)
	out = append(out, proofpad.ChatMessage{Role: proofpad.RoleAssistant, Content: content})
	return proofpad.AnswerResponse{Messages: out, RawContent: content}, nil
}

// resolveModel maps a user-facing model label to the wire-level model
// name. The empty label means the client default.
func resolveModel(label, fallback string) (string, error) {
	switch label {
	case "":
		return fallback, nil
	case proofpad.ModelDeepSeek:
		return "deepseek-chat", nil
	case proofpad.ModelGPT5:
		return "gpt-5", nil
	}
	return "", fmt.Errorf("model %q: %w", label, proofpad.ErrUnknownModel)
}

func wireRole(r proofpad.Role) string {
	if r == proofpad.RoleAssistant {
		return openai.ChatMessageRoleAssistant
	}
	return openai.ChatMessageRoleUser
}
