package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/agmada-asa/Nexus/internal/llm"
	"github.com/agmada-asa/Nexus/internal/model"
)

// ModelStatus is a catalog entry plus whether the runtime has it pulled.
type ModelStatus struct {
	model.ModelInfo
	Installed bool `json:"installed"`
}

// ModelService handles the business logic for the model catalog.
type ModelService struct {
	llm llm.LLMProvider
}

// NewModelService creates a new ModelService.
func NewModelService(llmProvider llm.LLMProvider) *ModelService {
	return &ModelService{llm: llmProvider}
}

// List returns every allow-listed model. When the runtime cannot be reached
// the catalog is still returned, with every model marked as not installed.
func (s *ModelService) List(ctx context.Context) ([]ModelStatus, error) {
	installed := map[string]bool{}
	resp, err := s.llm.ListModels(ctx)
	if err != nil {
		slog.Warn("Could not list installed models", "error", err)
	} else {
		for _, m := range resp.Models {
			installed[m.Name] = true
			installed[strings.TrimSuffix(m.Name, ":latest")] = true
		}
	}

	catalog := model.Models()
	statuses := make([]ModelStatus, 0, len(catalog))
	for _, info := range catalog {
		statuses = append(statuses, ModelStatus{ModelInfo: info, Installed: installed[info.ID]})
	}
	return statuses, nil
}
