package perplexity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guptatavish/compliance-coordinator/internal/domain/ai"
)

func completionBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(b)
}

func TestCompleteSuccess(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(completionBody("the answer")))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL), WithModel("test-model"))
	got, err := c.Complete(context.Background(), ai.Message{System: "sys", User: "usr"}, ai.Options{
		Temperature: 0.1,
		MaxTokens:   4000,
		Seed:        1234,
	})
	require.NoError(t, err)
	assert.Equal(t, "the answer", got)

	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "usr", gotReq.Messages[1].Content)
	assert.Equal(t, 1234, gotReq.RandomSeed)
}

func TestCompleteRetriesRateLimit(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(completionBody("after retry")))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))
	got, err := c.Complete(context.Background(), ai.Message{User: "usr"}, ai.Options{})
	require.NoError(t, err)
	assert.Equal(t, "after retry", got)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestCompleteGivesUpAfterMaxAttempts(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))
	_, err := c.Complete(context.Background(), ai.Message{User: "usr"}, ai.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ai.ErrRateLimited)
	assert.Equal(t, int64(maxAttempts), atomic.LoadInt64(&calls))
}

func TestCompleteFailsFastOnServerError(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))
	_, err := c.Complete(context.Background(), ai.Message{User: "usr"}, ai.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestCompleteCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New("test-key", WithBaseURL(srv.URL))
	_, err := c.Complete(ctx, ai.Message{User: "usr"}, ai.Options{})
	require.Error(t, err)
}
