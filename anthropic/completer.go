// Package anthropic provides an implementation of warmline.Completer backed
// by the Anthropic messages API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/warmlinehq/warmline"
)

// DefaultBaseURL is the Anthropic API endpoint.
const DefaultBaseURL = "https://api.anthropic.com"

// DefaultModel is the completion model used for extraction.
const DefaultModel = "claude-sonnet-4-5-20250929"

// DefaultMaxTokens bounds the response size of a single completion.
const DefaultMaxTokens = 16384

// apiVersion is the required anthropic-version header value.
const apiVersion = "2023-06-01"

// Ensure Completer implements warmline.Completer at compile time.
var _ warmline.Completer = (*Completer)(nil)

// Completer sends single-turn completion requests to the Anthropic messages
// API. One request per invocation; no streaming, no automatic retry.
type Completer struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
}

// Option configures a Completer.
type Option func(*Completer)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Completer) {
		c.client = client
	}
}

// WithBaseURL overrides the API endpoint. Primarily for tests.
func WithBaseURL(u string) Option {
	return func(c *Completer) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithModel sets the completion model.
func WithModel(model string) Option {
	return func(c *Completer) {
		c.model = model
	}
}

// WithMaxTokens sets the maximum output size of a completion.
func WithMaxTokens(n int) Option {
	return func(c *Completer) {
		c.maxTokens = n
	}
}

// NewCompleter creates a new Completer with the given API key.
func NewCompleter(apiKey string, opts ...Option) *Completer {
	c := &Completer{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: 120 * time.Second}
	}
	return c
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Complete sends one completion request and returns the response text plus a
// truncation signal. Returns ECONFIG before any network call if the API key
// is missing, and ECOMPLETION with the upstream status and body for a
// non-success response.
func (c *Completer) Complete(ctx context.Context, prompt string) (*warmline.Completion, error) {
	if c.apiKey == "" {
		return nil, warmline.Errorf(warmline.ECONFIG, "anthropic API key required")
	}

	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, warmline.Errorf(warmline.ECOMPLETION, "completion request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, warmline.Errorf(warmline.ECOMPLETION, "failed to read completion response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, warmline.Errorf(warmline.ECOMPLETION, "completion service returned status %d: %s", resp.StatusCode, raw)
	}

	var decoded messagesResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, warmline.Errorf(warmline.ECOMPLETION, "failed to decode completion response: %v", err)
	}
	if len(decoded.Content) == 0 {
		return nil, warmline.Errorf(warmline.ECOMPLETION, "completion response contained no content")
	}

	var sb strings.Builder
	for _, block := range decoded.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return &warmline.Completion{
		Text:      sb.String(),
		Truncated: decoded.StopReason == "max_tokens",
	}, nil
}
