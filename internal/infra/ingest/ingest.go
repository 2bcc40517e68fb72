// Package ingest turns uploaded documents into prompt context text. Every
// step is best-effort: a document that cannot be decoded or read is logged
// and skipped, never failing the analysis request.
package ingest

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"

	"github.com/guptatavish/compliance-coordinator/internal/domain/ai"
	"github.com/guptatavish/compliance-coordinator/internal/domain/report"
)

const (
	// minTextLen is the threshold below which a PDF text layer is treated
	// as a scan and handed to OCR.
	minTextLen = 100
	// summarizeThreshold triggers the chunked summarisation pass.
	summarizeThreshold = 10000
)

type Ingester struct {
	enhancer ai.TextEnhancer
	log      zerolog.Logger
}

func New(enhancer ai.TextEnhancer, log zerolog.Logger) *Ingester {
	return &Ingester{enhancer: enhancer, log: log}
}

// Extract decodes and reads every document, concatenating the recovered
// text. Large aggregates get a summary prepended when the enhancer is
// configured.
func (in *Ingester) Extract(ctx context.Context, docs []report.Document) string {
	var b strings.Builder

	for _, doc := range docs {
		text, err := in.readDocument(ctx, doc)
		if err != nil {
			in.log.Warn().Err(err).Str("file", doc.FileName).Msg("skipping document")
			continue
		}
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "\n\n--- Document: %s ---\n\n%s", doc.FileName, text)
	}

	all := b.String()
	if len(all) > summarizeThreshold && in.enhancer.Enabled() {
		summary, err := in.enhancer.Summarize(ctx, all)
		if err != nil {
			in.log.Warn().Err(err).Msg("document summarization failed, using raw text")
		} else if summary != "" {
			all = fmt.Sprintf("# Document Summary\n\n%s\n\n# Full Document Text\n\n%s", summary, all)
		}
	}
	return all
}

func (in *Ingester) readDocument(ctx context.Context, doc report.Document) (string, error) {
	if doc.Content == "" {
		return "", nil
	}
	data := decodePayload(doc.Content)

	name := strings.ToLower(doc.FileName)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return in.readPDF(ctx, doc.FileName, data)
	case strings.HasSuffix(name, ".txt"), strings.HasSuffix(name, ".md"), strings.HasSuffix(name, ".csv"):
		return string(data), nil
	default:
		return "", nil
	}
}

// decodePayload strips a data-URL prefix and base64-decodes the content,
// falling back to the raw bytes when decoding fails.
func decodePayload(content string) []byte {
	if strings.HasPrefix(content, "data:") {
		if i := strings.Index(content, ","); i >= 0 {
			content = content[i+1:]
		}
	}
	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return []byte(content)
	}
	return data
}

// readPDF tries the text layer first and falls back to OCR when the layer
// is missing or too thin to be useful.
func (in *Ingester) readPDF(ctx context.Context, fileName string, data []byte) (string, error) {
	text, err := pdfText(data)
	if err != nil {
		in.log.Debug().Err(err).Str("file", fileName).Msg("pdf text layer unreadable, trying ocr")
		text = ""
	}
	if len(strings.TrimSpace(text)) >= minTextLen {
		return text, nil
	}

	if !in.enhancer.Enabled() {
		return text, nil
	}
	ocr, err := in.enhancer.OCRDocument(ctx, fileName, data)
	if err != nil || strings.TrimSpace(ocr) == "" {
		if err != nil {
			in.log.Warn().Err(err).Str("file", fileName).Msg("ocr failed, keeping text layer")
		}
		return text, nil
	}
	cleaned, err := in.enhancer.CleanOCR(ctx, ocr)
	if err != nil || strings.TrimSpace(cleaned) == "" {
		return ocr, nil
	}
	return cleaned, nil
}

func pdfText(data []byte) (text string, err error) {
	// The pdf package can panic on malformed input; a bad document must
	// not take the request down.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(plain)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
