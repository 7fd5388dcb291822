package journal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiClient_Summarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"monthly recap"}]}}]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "test-key")
	text, err := c.Summarize(context.Background(), "summarize this")
	require.NoError(t, err)
	assert.Equal(t, "monthly recap", text)
}

// A success status with an unexpected body shape must be an error, not
// a panic from indexing into missing candidates.
func TestGeminiClient_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "k")
	_, err := c.Summarize(context.Background(), "p")
	require.Error(t, err)
}

func TestGeminiClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "k")
	_, err := c.Summarize(context.Background(), "p")
	require.Error(t, err)
}
