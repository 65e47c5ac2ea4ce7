package extract

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "github.com/agmada-asa/Nexus/internal/errors"
	"github.com/agmada-asa/Nexus/internal/llm"
	mock_llm "github.com/agmada-asa/Nexus/internal/llm/mocks"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func requireKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrExtraction)
	var extractErr *Error
	require.True(t, errors.As(err, &extractErr))
	assert.Equal(t, kind, extractErr.Kind)
}

func TestSquashWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"first of each class only", " a b\nc\nd\te\tf\rg\rh", "ab\ncd\te\tf\rg\rh"},
		{"order matters", "x y z", "xy z"},
		{"only whitespace", " \n\t\r", EmptyPageText},
		{"empty", "", EmptyPageText},
		{"no whitespace", "abc", "abc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, squashWhitespace(tc.in))
		})
	}
}

func TestPageFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/page":
			_, _ = w.Write([]byte(`<html><head><title>T</title></head><body><p>Hello world</p><p>Second line</p></body></html>`))
		case "/empty":
			_, _ = w.Write([]byte(`<html><body></body></html>`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	fetcher := NewPageFetcher(server.Client())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		text, err := fetcher.Fetch(ctx, server.URL+"/page")
		require.NoError(t, err)
		assert.Equal(t, "Helloworld"+"Second line", text)
	})

	t.Run("Empty body falls back", func(t *testing.T) {
		text, err := fetcher.Fetch(ctx, server.URL+"/empty")
		require.NoError(t, err)
		assert.Equal(t, EmptyPageText, text)
	})

	t.Run("Non-2xx status", func(t *testing.T) {
		_, err := fetcher.Fetch(ctx, server.URL+"/broken")
		requireKind(t, err, KindWebPage)
	})

	t.Run("Malformed URL", func(t *testing.T) {
		_, err := fetcher.Fetch(ctx, "://nope")
		requireKind(t, err, KindWebPage)
	})
}

func TestFileReader_Read(t *testing.T) {
	ctx := context.Background()
	reader, err := NewFileReader(ctx)
	require.NoError(t, err)

	t.Run("Plain text", func(t *testing.T) {
		path := writeFile(t, "notes.txt", []byte("some notes"))
		text, err := reader.Read(ctx, path, "txt")
		require.NoError(t, err)
		assert.Equal(t, "some notes", text)
	})

	t.Run("Unknown extension read as text", func(t *testing.T) {
		path := writeFile(t, "main.go", []byte("package main"))
		text, err := reader.Read(ctx, path, "go")
		require.NoError(t, err)
		assert.Equal(t, "package main", text)
	})

	t.Run("HTML uses body text", func(t *testing.T) {
		path := writeFile(t, "page.html", []byte(`<html><body><h1>Title</h1><p>Body text</p></body></html>`))
		text, err := reader.Read(ctx, path, "html")
		require.NoError(t, err)
		assert.Contains(t, text, "Title")
		assert.Contains(t, text, "Body text")
	})

	t.Run("Binary content", func(t *testing.T) {
		path := writeFile(t, "blob.bin", []byte{0x00, 0xff, 0xfe, 0x01})
		_, err := reader.Read(ctx, path, "bin")
		requireKind(t, err, KindText)
	})

	t.Run("Broken PDF", func(t *testing.T) {
		path := writeFile(t, "broken.pdf", []byte("not a pdf"))
		_, err := reader.Read(ctx, path, "pdf")
		requireKind(t, err, KindPDF)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := reader.Read(ctx, filepath.Join(t.TempDir(), "missing.txt"), "txt")
		requireKind(t, err, KindText)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestTranscriber_Transcribe(t *testing.T) {
	ctx := context.Background()

	t.Run("Captures stdout", func(t *testing.T) {
		text, err := NewTranscriber("echo transcript of").Transcribe(ctx, "/tmp/talk.mp3")
		require.NoError(t, err)
		assert.Equal(t, "transcript of /tmp/talk.mp3\n", text)
	})

	t.Run("Non-zero exit", func(t *testing.T) {
		_, err := NewTranscriber("false").Transcribe(ctx, "/tmp/talk.mp3")
		requireKind(t, err, KindTranscription)
	})

	t.Run("Empty command", func(t *testing.T) {
		_, err := NewTranscriber("  ").Transcribe(ctx, "/tmp/talk.mp3")
		requireKind(t, err, KindTranscription)
	})
}

func TestImageReader(t *testing.T) {
	ctx := context.Background()
	imageBytes := []byte("\x89PNG fake image")
	path := writeFile(t, "photo.png", imageBytes)

	t.Run("OCR", func(t *testing.T) {
		reader := NewImageReader(mock_llm.NewMockLLMProvider(t), "llava-llama3", "echo")
		text, err := reader.OCR(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, path+" stdout\n", text)
	})

	t.Run("Describe sends the image to the vision model", func(t *testing.T) {
		provider := mock_llm.NewMockLLMProvider(t)
		provider.On("Generate", mock.Anything, mock.MatchedBy(func(req *llm.GenerateRequest) bool {
			return req.Model == "llava-llama3" &&
				len(req.Messages) == 1 &&
				req.Messages[0].Content == describeImagePrompt &&
				len(req.Messages[0].Images) == 1 &&
				req.Messages[0].Images[0] == base64.StdEncoding.EncodeToString(imageBytes)
		})).Return(&llm.GenerateResponse{Response: "a cat"}, nil).Once()

		reader := NewImageReader(provider, "llava-llama3", "echo")
		desc, err := reader.Describe(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "a cat", desc)
	})

	t.Run("Describe model failure", func(t *testing.T) {
		provider := mock_llm.NewMockLLMProvider(t)
		provider.On("Generate", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		_, err := NewImageReader(provider, "llava-llama3", "echo").Describe(ctx, path)
		requireKind(t, err, KindImage)
	})
}
