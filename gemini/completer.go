// Package gemini provides an implementation of warmline.Completer backed by
// the Google Gemini API.
package gemini

import (
	"context"

	"github.com/warmlinehq/warmline"
	"google.golang.org/genai"
)

// DefaultModel is the completion model used for extraction.
const DefaultModel = "gemini-2.5-flash"

// DefaultMaxTokens bounds the response size of a single completion.
const DefaultMaxTokens = 16384

// Ensure Completer implements warmline.Completer at compile time.
var _ warmline.Completer = (*Completer)(nil)

// Completer sends single-turn completion requests to Gemini.
type Completer struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

// Option configures a Completer.
type Option func(*Completer)

// WithModel sets the completion model.
func WithModel(model string) Option {
	return func(c *Completer) {
		c.model = model
	}
}

// WithMaxTokens sets the maximum output size of a completion.
func WithMaxTokens(n int32) Option {
	return func(c *Completer) {
		c.maxTokens = n
	}
}

// NewCompleter creates a new Completer using the given genai client.
func NewCompleter(client *genai.Client, opts ...Option) *Completer {
	c := &Completer{
		client:    client,
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends one completion request and returns the response text plus a
// truncation signal derived from the candidate finish reason.
func (c *Completer) Complete(ctx context.Context, prompt string) (*warmline.Completion, error) {
	if c.client == nil {
		return nil, warmline.Errorf(warmline.ECONFIG, "gemini client required")
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: c.maxTokens,
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, warmline.Errorf(warmline.ECOMPLETION, "completion service error: %v", err)
	}
	if result == nil {
		return nil, warmline.Errorf(warmline.ECOMPLETION, "gemini returned nil result")
	}

	truncated := len(result.Candidates) > 0 &&
		result.Candidates[0].FinishReason == genai.FinishReasonMaxTokens

	return &warmline.Completion{
		Text:      result.Text(),
		Truncated: truncated,
	}, nil
}
