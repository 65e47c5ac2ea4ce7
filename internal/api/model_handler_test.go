package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/agmada-asa/Nexus/internal/api"
	"github.com/agmada-asa/Nexus/internal/interfaces/mocks"
	"github.com/agmada-asa/Nexus/internal/model"
	"github.com/agmada-asa/Nexus/internal/service"
)

func TestModelHandler_HandleListModels(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockModelSvc := mocks.NewMockModelService(t)
		handler := api.NewModelHandler(mockModelSvc)
		statuses := []service.ModelStatus{{ModelInfo: model.ModelInfo{ID: "phi4", DisplayName: "Phi4", Family: "phi"}, Installed: true}}
		mockModelSvc.On("List", mock.Anything).Return(statuses, nil).Once()

		rr := httptest.NewRecorder()
		handler.HandleListModels(rr, httptest.NewRequest(http.MethodGet, "/api/v1/models", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"id":"phi4","display_name":"Phi4","family":"phi","reasoning":false,"installed":true}]`, rr.Body.String())
	})

	t.Run("Failure", func(t *testing.T) {
		mockModelSvc := mocks.NewMockModelService(t)
		handler := api.NewModelHandler(mockModelSvc)
		mockModelSvc.On("List", mock.Anything).Return(nil, errors.New("boom")).Once()

		rr := httptest.NewRecorder()
		handler.HandleListModels(rr, httptest.NewRequest(http.MethodGet, "/api/v1/models", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
