// Package mistral implements the TextEnhancer port against the Mistral API.
// Chat calls go through the OpenAI-compatible endpoint; document OCR uses
// the dedicated /ocr route.
package mistral

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultBaseURL = "https://api.mistral.ai/v1"
	defaultModel   = "mistral-large-latest"
	ocrModel       = "mistral-ocr-latest"

	// chunkSize splits large corpora for per-chunk summarisation.
	chunkSize = 8000
	// maxCleanupChars bounds the OCR cleanup prompt.
	maxCleanupChars = 4000
)

type Client struct {
	chat    *openai.Client
	httpc   *http.Client
	apiKey  string
	model   string
	baseURL string
}

type Option func(*Client)

// WithBaseURL points the client at a different endpoint. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
		cfg := openai.DefaultConfig(c.apiKey)
		cfg.BaseURL = url
		c.chat = openai.NewClientWithConfig(cfg)
	}
}

// WithModel overrides the chat model.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

func New(apiKey string, opts ...Option) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = defaultBaseURL
	c := &Client{
		chat:    openai.NewClientWithConfig(cfg),
		httpc:   &http.Client{Timeout: 60 * time.Second},
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Enabled() bool { return true }

// CleanOCR asks the model to repair spacing and recognition errors in raw
// OCR output. Callers treat failures as non-fatal and keep the input text.
func (c *Client) CleanOCR(ctx context.Context, text string) (string, error) {
	trimmed := text
	if len(trimmed) > maxCleanupChars {
		trimmed = trimmed[:maxCleanupChars]
	}
	prompt := fmt.Sprintf(`I need help cleaning and structuring OCR text extracted from a financial or compliance document.
The text may have errors, missing spaces, or formatting issues. Please fix any obvious OCR errors,
add proper spacing and paragraph breaks, and format the document in a readable way.
Focus especially on numbers, dates, and financial terms which might be critical.

Here is the raw OCR text:

%s`, trimmed)

	return c.complete(ctx, prompt, 4000)
}

// Summarize condenses a large document corpus chunk by chunk, then merges
// the chunk summaries into a single analysis.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	var chunks []string
	for i := 0; i < len(text); i += chunkSize {
		end := i + chunkSize
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[i:end])
	}

	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		prompt := fmt.Sprintf(`You are a financial and regulatory specialist.
Please extract and summarize all key financial and compliance information from this document.
Focus on identifying:
1. Financial metrics and data
2. Regulatory requirements mentioned
3. Compliance status indicators
4. Risk factors
5. Deadlines or important dates

This is chunk %d of %d from the full document:

%s`, i+1, len(chunks), chunk)

		s, err := c.complete(ctx, prompt, 2000)
		if err != nil {
			return "", err
		}
		summaries = append(summaries, s)
	}

	if len(summaries) == 1 {
		return summaries[0], nil
	}

	meta := fmt.Sprintf(`I have summarized a large document in chunks. Please provide a cohesive,
unified summary that combines all these summaries into a single coherent analysis.
Organize the information logically by topic rather than by chunk:

%s`, strings.Join(summaries, "\n\n"))

	return c.complete(ctx, meta, 3000)
}

func (c *Client) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := c.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		Temperature: 0.1,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("mistral: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("mistral: empty choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

type ocrRequest struct {
	Model    string      `json:"model"`
	Document ocrDocument `json:"document"`
}

type ocrDocument struct {
	Type        string `json:"type"`
	DocumentURL string `json:"document_url"`
}

type ocrResponse struct {
	Pages []struct {
		Markdown string `json:"markdown"`
	} `json:"pages"`
}

// OCRDocument sends a binary document to the OCR endpoint as a base64 data
// URL and concatenates the recognised page text.
func (c *Client) OCRDocument(ctx context.Context, fileName string, payload []byte) (string, error) {
	mime := "application/pdf"
	if !strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		mime = "application/octet-stream"
	}
	body, err := json.Marshal(ocrRequest{
		Model: ocrModel,
		Document: ocrDocument{
			Type:        "document_url",
			DocumentURL: fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(payload)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("mistral: marshal ocr request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ocr", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("mistral: build ocr request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("mistral: ocr request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("mistral: ocr error %d: %s", resp.StatusCode, string(errBody))
	}

	var parsed ocrResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("mistral: decode ocr response: %w", err)
	}

	var b strings.Builder
	for _, page := range parsed.Pages {
		b.WriteString(page.Markdown)
		b.WriteString("\n")
	}
	return b.String(), nil
}
