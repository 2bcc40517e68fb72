package mistral

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOCRDocument(t *testing.T) {
	var gotReq ocrRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ocr", r.URL.Path)
		require.Equal(t, "Bearer mk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]any{
			"pages": []map[string]string{
				{"markdown": "Page one text."},
				{"markdown": "Page two text."},
			},
		})
	}))
	defer srv.Close()

	c := New("mk-test", WithBaseURL(srv.URL))
	got, err := c.OCRDocument(context.Background(), "scan.pdf", []byte("fake pdf bytes"))
	require.NoError(t, err)

	assert.Equal(t, "Page one text.\nPage two text.\n", got)
	assert.Equal(t, "mistral-ocr-latest", gotReq.Model)
	assert.Equal(t, "document_url", gotReq.Document.Type)
	assert.True(t, strings.HasPrefix(gotReq.Document.DocumentURL, "data:application/pdf;base64,"))
}

func TestOCRDocumentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	c := New("mk-test", WithBaseURL(srv.URL))
	_, err := c.OCRDocument(context.Background(), "scan.pdf", []byte("fake"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "402")
}

func TestCleanOCRTruncatesInput(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		gotPrompt = req.Messages[0].Content

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "cleaned text"}},
			},
		})
	}))
	defer srv.Close()

	c := New("mk-test", WithBaseURL(srv.URL))
	got, err := c.CleanOCR(context.Background(), strings.Repeat("x", maxCleanupChars*2))
	require.NoError(t, err)

	assert.Equal(t, "cleaned text", got)
	assert.LessOrEqual(t, strings.Count(gotPrompt, "x"), maxCleanupChars)
}
