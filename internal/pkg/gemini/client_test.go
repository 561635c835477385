package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "describe the room", req.Contents[0].Parts[0].Text)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  A fine room.\n"}]}}]}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("secret", "test-model", srv.URL)
	got, err := c.Generate(context.Background(), "describe the room")

	require.NoError(t, err)
	assert.Equal(t, "A fine room.", got)
}

func TestGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("secret", "test-model", srv.URL)
	_, err := c.Generate(context.Background(), "describe the room")

	assert.ErrorContains(t, err, "quota exceeded")
}

func TestGenerateEmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("secret", "test-model", srv.URL)
	_, err := c.Generate(context.Background(), "describe the room")

	assert.ErrorContains(t, err, "empty completion")
}

func TestGenerateUnconfigured(t *testing.T) {
	c := New("", "test-model")

	assert.False(t, c.IsConfigured())
	_, err := c.Generate(context.Background(), "describe the room")
	assert.ErrorContains(t, err, "not configured")
}
