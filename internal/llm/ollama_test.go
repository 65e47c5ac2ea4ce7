package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOllamaProvider verifies that ollamaProvider builds the right requests for
// the Ollama API and parses its replies. An httptest server stands in for Ollama.
func TestOllamaProvider(t *testing.T) {
	var capturedMethod, capturedPath string
	var capturedBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedMethod = r.Method
		capturedPath = r.URL.Path
		capturedBody = nil
		if r.Body != nil && r.Method == http.MethodPost {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&capturedBody))
		}

		switch r.URL.Path {
		case "/api/chat":
			w.Header().Set("Content-Type", "application/json")
			if capturedBody["stream"] == true {
				_, _ = w.Write([]byte(`{"model":"llama3.2","message":{"role":"assistant","content":"Hel"},"done":false}` + "\n"))
				_, _ = w.Write([]byte("\n"))
				_, _ = w.Write([]byte(`{"model":"llama3.2","message":{"role":"assistant","content":"lo"},"done":false}` + "\n"))
				_, _ = w.Write([]byte(`{"model":"llama3.2","message":{"role":"assistant","content":""},"done":true}` + "\n"))
				return
			}
			_, _ = w.Write([]byte(`{"model":"llama3.2","message":{"role":"assistant","content":"Hello!"},"done":true}`))
		case "/api/tags":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"models":[{"name":"llama3.2:latest","model":"llama3.2:latest","size":42}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL)
	ctx := context.Background()

	t.Run("Generate", func(t *testing.T) {
		resp, err := provider.Generate(ctx, &GenerateRequest{
			Model:    "llama3.2",
			Messages: []Message{{Role: "user", Content: "Hi"}},
			Format:   json.RawMessage(`{"type":"object"}`),
		})

		require.NoError(t, err)
		assert.Equal(t, "Hello!", resp.Response)
		assert.True(t, resp.Done)
		assert.Equal(t, http.MethodPost, capturedMethod)
		assert.Equal(t, "/api/chat", capturedPath)
		assert.Equal(t, false, capturedBody["stream"])
		assert.Equal(t, map[string]any{"type": "object"}, capturedBody["format"])
	})

	t.Run("GenerateOmitsEmptyFormatAndImages", func(t *testing.T) {
		_, err := provider.Generate(ctx, &GenerateRequest{
			Model:    "llama3.2",
			Messages: []Message{{Role: "user", Content: "Hi"}},
		})

		require.NoError(t, err)
		assert.NotContains(t, capturedBody, "format")
		messages := capturedBody["messages"].([]any)
		assert.NotContains(t, messages[0].(map[string]any), "images")
	})

	t.Run("GenerateStream", func(t *testing.T) {
		ch := make(chan StreamResponse, 10)
		err := provider.GenerateStream(ctx, &GenerateRequest{Model: "llama3.2"}, ch)
		require.NoError(t, err)

		var content string
		var done bool
		for chunk := range ch {
			assert.Empty(t, chunk.Error)
			content += chunk.Content
			done = chunk.Done
		}
		assert.Equal(t, "Hello", content)
		assert.True(t, done)
		assert.Equal(t, true, capturedBody["stream"])
	})

	t.Run("ListModels", func(t *testing.T) {
		list, err := provider.ListModels(ctx)

		require.NoError(t, err)
		require.Len(t, list.Models, 1)
		assert.Equal(t, "llama3.2:latest", list.Models[0].Name)
		assert.Equal(t, http.MethodGet, capturedMethod)
		assert.Equal(t, "/api/tags", capturedPath)
	})
}

func TestOllamaProvider_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model 'nope' not found"}`))
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL)

	_, err := provider.Generate(context.Background(), &GenerateRequest{Model: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	ch := make(chan StreamResponse, 1)
	err = provider.GenerateStream(context.Background(), &GenerateRequest{Model: "nope"}, ch)
	require.Error(t, err)
	_, open := <-ch
	assert.False(t, open, "channel must be closed on failure")

	_, err = provider.ListModels(context.Background())
	assert.Error(t, err)
}

func TestOllamaProvider_GenerateStreamClosesOnCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"Hel"},"done":false}` + "\n"))
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"lo"},"done":false}` + "\n"))
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan StreamResponse)
	errCh := make(chan error, 1)
	go func() {
		errCh <- NewOllamaProvider(server.URL).GenerateStream(ctx, &GenerateRequest{Model: "llama3.2"}, ch)
	}()

	first, open := <-ch
	require.True(t, open)
	assert.Equal(t, "Hel", first.Content)
	cancel()

	// Ranging must end: the provider closes ch on the cancellation path too.
	for range ch {
	}
	assert.Error(t, <-errCh)
}
