package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/culinate/recipe-engine/internal/mocks"
	"github.com/culinate/recipe-engine/internal/model"
	"github.com/culinate/recipe-engine/internal/service"
	"github.com/culinate/recipe-engine/internal/store"
)

func setupRouter(recipes store.RecipeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	search := service.NewSearchService(recipes, service.NewMemorySessionStore(0), logger)

	router := gin.New()
	handler := NewSearchHandler(search, logger)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func performSearch(router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/v1/search", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSearchEndpoint(t *testing.T) {
	recipes := new(mocks.MockRecipeStore)
	recipes.On("Search", mock.Anything, mock.Anything).Return([]model.Recipe{
		{ID: 1, Title: "Chicken Pasta", Ingredients: model.JSONBStringArray{"chicken", "pasta"}},
	}, nil)
	router := setupRouter(recipes)

	w := performSearch(router, map[string]interface{}{
		"query":      "chicken pasta",
		"session_id": "s1",
		"limit":      5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, float64(1), response["count"])
	assert.Equal(t, "s1", response["session_id"])
	assert.Contains(t, response, "recipes")
	assert.Contains(t, response, "filters_applied")
	assert.Contains(t, response, "search_metadata")
}

func TestSearchEndpointMintsSessionID(t *testing.T) {
	recipes := new(mocks.MockRecipeStore)
	recipes.On("Search", mock.Anything, mock.Anything).Return([]model.Recipe{}, nil)
	router := setupRouter(recipes)

	w := performSearch(router, map[string]interface{}{"query": "chicken"})
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["session_id"])
}

func TestSearchEndpointRequiresQuery(t *testing.T) {
	router := setupRouter(new(mocks.MockRecipeStore))

	w := performSearch(router, map[string]interface{}{"session_id": "s1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchEndpointStoreFailure(t *testing.T) {
	recipes := new(mocks.MockRecipeStore)
	recipes.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	router := setupRouter(recipes)

	w := performSearch(router, map[string]interface{}{"query": "chicken"})
	require.Equal(t, http.StatusBadGateway, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.NotEmpty(t, response["error"])
}

func TestGetRecipeEndpoint(t *testing.T) {
	recipes := new(mocks.MockRecipeStore)
	recipes.On("GetByID", mock.Anything, int64(42)).Return(&model.Recipe{ID: 42, Title: "Chicken Pasta"}, nil)
	router := setupRouter(recipes)

	req := httptest.NewRequest("GET", "/api/v1/recipes/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var recipe model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, "Chicken Pasta", recipe.Title)
}

func TestGetRecipeEndpointInvalidID(t *testing.T) {
	router := setupRouter(new(mocks.MockRecipeStore))

	req := httptest.NewRequest("GET", "/api/v1/recipes/not-a-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
