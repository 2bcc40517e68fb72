package ai

import "context"

// Message is a system/user prompt pair sent to a chat-completion endpoint.
type Message struct {
	System string
	User   string
}

// Options tune one completion call.
type Options struct {
	Temperature float32
	MaxTokens   int
	// Seed is a best-effort determinism hint forwarded to the provider.
	Seed int
}

// ChatClient is the outbound port to a hosted chat-completion API.
type ChatClient interface {
	Complete(ctx context.Context, msg Message, opts Options) (string, error)
}

// TextEnhancer is the capability-gated port to the secondary LLM used for
// document OCR and cleanup. When no provider is configured the no-op
// implementation is wired in and every call degrades gracefully.
type TextEnhancer interface {
	// Enabled reports whether a real provider backs this enhancer.
	Enabled() bool
	// CleanOCR fixes spacing and recognition errors in raw OCR output.
	CleanOCR(ctx context.Context, text string) (string, error)
	// Summarize condenses a large document corpus into key compliance facts.
	Summarize(ctx context.Context, text string) (string, error)
	// OCRDocument recognises text in a binary document (scanned PDF).
	OCRDocument(ctx context.Context, fileName string, payload []byte) (string, error)
}
