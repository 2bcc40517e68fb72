package ingest

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/guptatavish/compliance-coordinator/internal/domain/ai"
	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

func newTestIngester() *Ingester {
	return New(ai.NoopEnhancer{}, zerolog.Nop())
}

func TestExtractTextDocument(t *testing.T) {
	in := newTestIngester()
	docs := []report.Document{{
		FileName: "notes.txt",
		Content:  base64.StdEncoding.EncodeToString([]byte("annual filing records")),
	}}

	got := in.Extract(context.Background(), docs)
	assert.Contains(t, got, "--- Document: notes.txt ---")
	assert.Contains(t, got, "annual filing records")
}

func TestExtractDataURLPayload(t *testing.T) {
	in := newTestIngester()
	payload := "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("payroll summary"))
	docs := []report.Document{{FileName: "payroll.md", Content: payload}}

	got := in.Extract(context.Background(), docs)
	assert.Contains(t, got, "payroll summary")
}

func TestExtractRawFallback(t *testing.T) {
	// Content that is not valid base64 is taken as plain text.
	in := newTestIngester()
	docs := []report.Document{{FileName: "plain.txt", Content: "not base64 at all!!!"}}

	got := in.Extract(context.Background(), docs)
	assert.Contains(t, got, "not base64 at all!!!")
}

func TestExtractSkipsUnknownAndEmpty(t *testing.T) {
	in := newTestIngester()
	docs := []report.Document{
		{FileName: "binary.exe", Content: base64.StdEncoding.EncodeToString([]byte{0x01, 0x02})},
		{FileName: "empty.txt", Content: ""},
	}

	assert.Equal(t, "", in.Extract(context.Background(), docs))
}

func TestExtractMalformedPDFDoesNotFail(t *testing.T) {
	in := newTestIngester()
	docs := []report.Document{
		{FileName: "broken.pdf", Content: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 garbage"))},
		{FileName: "ok.txt", Content: base64.StdEncoding.EncodeToString([]byte("still readable"))},
	}

	got := in.Extract(context.Background(), docs)
	assert.Contains(t, got, "still readable")
}

type stubEnhancer struct {
	summarized bool
}

func (s *stubEnhancer) Enabled() bool { return true }
func (s *stubEnhancer) CleanOCR(_ context.Context, text string) (string, error) {
	return text, nil
}
func (s *stubEnhancer) Summarize(_ context.Context, _ string) (string, error) {
	s.summarized = true
	return "condensed overview", nil
}
func (s *stubEnhancer) OCRDocument(_ context.Context, _ string, _ []byte) (string, error) {
	return "", nil
}

func TestExtractSummarizesLargeAggregates(t *testing.T) {
	enh := &stubEnhancer{}
	in := New(enh, zerolog.Nop())

	big := strings.Repeat("regulatory filing text. ", 600)
	docs := []report.Document{{
		FileName: "big.txt",
		Content:  base64.StdEncoding.EncodeToString([]byte(big)),
	}}

	got := in.Extract(context.Background(), docs)
	assert.True(t, enh.summarized)
	assert.Contains(t, got, "# Document Summary")
	assert.Contains(t, got, "condensed overview")
	assert.Contains(t, got, "# Full Document Text")
}

func TestNoopEnhancerSkipsSummarization(t *testing.T) {
	in := newTestIngester()

	big := strings.Repeat("regulatory filing text. ", 600)
	docs := []report.Document{{
		FileName: "big.txt",
		Content:  base64.StdEncoding.EncodeToString([]byte(big)),
	}}

	got := in.Extract(context.Background(), docs)
	assert.NotContains(t, got, "# Document Summary")
}
