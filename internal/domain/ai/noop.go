package ai

import "context"

// NoopEnhancer is the TextEnhancer used when no secondary provider is
// configured: cleanup passes text through untouched, summarisation and OCR
// yield nothing.
type NoopEnhancer struct{}

func (NoopEnhancer) Enabled() bool { return false }

func (NoopEnhancer) CleanOCR(_ context.Context, text string) (string, error) {
	return text, nil
}

func (NoopEnhancer) Summarize(context.Context, string) (string, error) {
	return "", nil
}

func (NoopEnhancer) OCRDocument(context.Context, string, []byte) (string, error) {
	return "", nil
}
