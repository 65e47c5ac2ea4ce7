package api

import (
	"net/http"

	"github.com/agmada-asa/Nexus/internal/interfaces"
)

// ModelHandler handles HTTP requests for the model catalog.
type ModelHandler struct {
	service interfaces.ModelService
}

func NewModelHandler(svc interfaces.ModelService) *ModelHandler {
	return &ModelHandler{service: svc}
}

// HandleListModels godoc
// @Summary      List models
// @Description  Gets the allow-listed models and whether each is installed in Ollama.
// @Tags         Models
// @Produce      json
// @Success      200  {array}   service.ModelStatus
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/models [get]
func (h *ModelHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models)
}
