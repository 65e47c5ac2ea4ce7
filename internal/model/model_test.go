package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatSession(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewChatSession(now)

	assert.Equal(t, DefaultSessionTitle, s.Title)
	assert.Equal(t, now, s.CreatedAt)
	assert.False(t, s.HasContext())

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"messages":[]`)
	assert.Contains(t, string(raw), `"contextFiles":[]`)
	assert.Contains(t, string(raw), `"contextUrls":[]`)
}

func TestChatSession_Normalize(t *testing.T) {
	s := &ChatSession{}
	s.Normalize()
	assert.NotNil(t, s.Messages)
	assert.NotNil(t, s.ContextFiles)
	assert.NotNil(t, s.ContextURLs)

	s.ContextURLs = append(s.ContextURLs, "https://example.com")
	assert.True(t, s.HasContext())
}

func TestWithoutLoggerMessages(t *testing.T) {
	messages := []ChatMessage{
		{Content: "hi", Role: RoleUser},
		{Content: ModelErrorMessage, Role: RoleLogger},
		{Content: "hello", Role: RoleAssistant},
		{Content: "again", Role: RoleUser},
	}

	filtered := WithoutLoggerMessages(messages)

	require.Len(t, filtered, 3)
	assert.Equal(t, "hi", filtered[0].Content)
	assert.Equal(t, "hello", filtered[1].Content)
	assert.Equal(t, "again", filtered[2].Content)
	assert.Len(t, messages, 4, "input must not be modified")
}

func TestCatalog(t *testing.T) {
	for _, id := range []string{"mistral-nemo", "llama3.2", "gemma3:12b", "gemma2:9b", "phi4", "deepseek-r1:8b", "deepseek-r1:14b"} {
		assert.True(t, IsValidModel(id), id)
	}
	assert.False(t, IsValidModel("gpt-4"))
	assert.False(t, IsValidModel(""))

	info, ok := LookupModel("deepseek-r1:8b")
	require.True(t, ok)
	assert.Equal(t, "R1-8B", info.DisplayName)
	assert.True(t, info.Reasoning)

	models := Models()
	require.Len(t, models, 7)
	models[0].DisplayName = "changed"
	assert.NotEqual(t, "changed", Models()[0].DisplayName)
}

func TestChatMessage_JSONKeys(t *testing.T) {
	msg := ChatMessage{
		Content:       "look",
		Role:          RoleUser,
		ModelUsed:     "phi4",
		AttachedFiles: []UploadedFile{{FilePath: "/a.pdf", DisplayName: "a.pdf", FileExtension: "pdf"}},
		AttachedURLs:  []string{"https://example.com"},
	}

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	for _, key := range []string{"content", "role", "timestamp", "modelUsed", "attachedFiles", "attachedUrls"} {
		assert.Contains(t, generic, key)
	}
	file := generic["attachedFiles"].([]any)[0].(map[string]any)
	assert.Equal(t, "/a.pdf", file["filePath"])
	assert.Equal(t, "a.pdf", file["displayName"])
	assert.Equal(t, "pdf", file["fileExtension"])
}
