package llm

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// Service defines the text completion contract consumed by the chat pipeline.
// A single attempt per call; any error (including timeout) means the remote
// answer path is unavailable for this request.
type Service interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// client implements Service on top of a gollem LLM client
type client struct {
	llmClient gollem.LLMClient
	timeout   time.Duration
}

// Option is a functional option for client configuration
type Option func(*client)

// WithTimeout bounds each completion call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.timeout = d
	}
}

// New creates a completion Service with the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient: llmClient,
		timeout:   30 * time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Complete sends one completion request and returns the generated text
func (c *client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(userMessage))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate completion")
	}
	if resp == nil || len(resp.Texts) == 0 {
		return "", goerr.New("completion response contains no text")
	}

	text := strings.TrimSpace(strings.Join(resp.Texts, "\n"))
	if text == "" {
		return "", goerr.New("completion response is empty")
	}

	return text, nil
}
