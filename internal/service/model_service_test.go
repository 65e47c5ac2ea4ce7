package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agmada-asa/Nexus/internal/llm"
	"github.com/agmada-asa/Nexus/internal/llm/mocks"
	"github.com/agmada-asa/Nexus/internal/service"
)

func setupModelService(t *testing.T) (*service.ModelService, *mocks.MockLLMProvider) {
	mockLLMProvider := mocks.NewMockLLMProvider(t)
	modelService := service.NewModelService(mockLLMProvider)
	return modelService, mockLLMProvider
}

func TestModelService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Marks installed models", func(t *testing.T) {
		modelService, mockLLMProvider := setupModelService(t)
		mockLLMProvider.On("ListModels", ctx).Return(&llm.ListModelsResponse{
			Models: []llm.Model{{Name: "llama3.2:latest"}, {Name: "gemma3:12b"}, {Name: "nomic-embed-text:latest"}},
		}, nil).Once()

		statuses, err := modelService.List(ctx)

		require.NoError(t, err)
		require.Len(t, statuses, 7)
		installed := map[string]bool{}
		for _, s := range statuses {
			installed[s.ID] = s.Installed
		}
		assert.True(t, installed["llama3.2"])
		assert.True(t, installed["gemma3:12b"])
		assert.False(t, installed["phi4"])
	})

	t.Run("Runtime unreachable still returns the catalog", func(t *testing.T) {
		modelService, mockLLMProvider := setupModelService(t)
		mockLLMProvider.On("ListModels", ctx).Return(nil, errors.New("connection refused")).Once()

		statuses, err := modelService.List(ctx)

		require.NoError(t, err)
		require.Len(t, statuses, 7)
		for _, s := range statuses {
			assert.False(t, s.Installed)
		}
	})
}
