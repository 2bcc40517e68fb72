// Package perplexity implements the ChatClient port against the Perplexity
// chat-completion API.
package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/guptatavish/compliance-coordinator/internal/domain/ai"
)

const (
	defaultBaseURL = "https://api.perplexity.ai"
	defaultModel   = "llama-3.1-sonar-large-128k-online"

	maxAttempts       = 3
	transportInterval = 2 * time.Second
)

type Client struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

type Option func(*Client)

// WithModel overrides the default completion model.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL points the client at a different endpoint. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient swaps the underlying transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// New builds a client around a caller-supplied API key. The socket timeout
// bounds each individual attempt, not the whole retry sequence.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	RandomSeed  int           `json:"random_seed,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// transportError marks a network-level failure, retried on a constant
// interval rather than the exponential schedule used for throttling.
type transportError struct{ err error }

func (e transportError) Error() string { return e.err.Error() }
func (e transportError) Unwrap() error { return e.err }

// Complete sends one system/user exchange and returns the raw answer text.
// HTTP 429 is retried with exponential backoff (1s, 2s, 4s), network errors
// with a constant interval, both capped at three attempts. Any other non-2xx
// status fails immediately.
func (c *Client) Complete(ctx context.Context, msg ai.Message, opts ai.Options) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: msg.System},
			{Role: "user", Content: msg.User},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		RandomSeed:  opts.Seed,
	})
	if err != nil {
		return "", fmt.Errorf("perplexity: marshal request: %w", err)
	}

	throttle := backoff.NewExponentialBackOff()
	throttle.InitialInterval = time.Second
	throttle.Multiplier = 2
	throttle.RandomizationFactor = 0

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		content, err := c.once(ctx, payload)
		if err == nil {
			return content, nil
		}
		lastErr = err

		var wait time.Duration
		switch {
		case isRateLimited(err):
			wait = throttle.NextBackOff()
		case isTransport(err):
			wait = transportInterval
		default:
			return "", err
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(wait):
		}
	}
	return "", lastErr
}

func (c *Client) once(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("perplexity: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", transportError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("perplexity: %w", ai.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("perplexity: api error %d: %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("perplexity: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("perplexity: empty choices in response")
	}
	return parsed.Choices[0].Message.Content, nil
}

func isRateLimited(err error) bool {
	return errors.Is(err, ai.ErrRateLimited)
}

func isTransport(err error) bool {
	var te transportError
	return errors.As(err, &te)
}
