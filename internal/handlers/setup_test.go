package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/nassaupro/marketplace-api/internal/cache"
	"github.com/nassaupro/marketplace-api/internal/domain/catalog/catalogtest"
	ucCategory "github.com/nassaupro/marketplace-api/internal/usecase/category"
	ucClient "github.com/nassaupro/marketplace-api/internal/usecase/client"
	ucService "github.com/nassaupro/marketplace-api/internal/usecase/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router     *gin.Engine
	categories *catalogtest.CategoryRepo
	clients    *catalogtest.ClientRepo
	services   *catalogtest.ServiceRepo
}

func newTestEnv() *testEnv {
	env := &testEnv{
		router:     gin.New(),
		categories: catalogtest.NewCategoryRepo(),
		clients:    catalogtest.NewClientRepo(),
		services:   catalogtest.NewServiceRepo(),
	}

	store := cache.NewNoop()

	categoryHandler := NewCategoryHandler(
		env.categories,
		ucCategory.NewCreateCategory(env.categories),
		ucCategory.NewUpdateCategory(env.categories),
		store,
	)

	clientHandler := NewClientHandler(
		env.clients,
		ucClient.NewCreateClient(env.clients),
		ucClient.NewUpdateClient(env.clients),
		store,
	)

	serviceHandler := NewServiceHandler(
		env.services,
		ucService.NewCreateService(env.services, env.categories, env.clients),
		ucService.NewUpdateService(env.services),
		store,
	)

	categories := env.router.Group("/categories")
	{
		categories.GET("/list", categoryHandler.List)
		categories.GET("/list/:id", categoryHandler.GetByID)
		categories.POST("/create", categoryHandler.Create)
		categories.PUT("/change/:id", categoryHandler.Update)
		categories.DELETE("/delete/:id", categoryHandler.Delete)
	}

	clients := env.router.Group("/clients")
	{
		clients.GET("/list", clientHandler.List)
		clients.GET("/list/:id", clientHandler.GetByID)
		clients.POST("/create", clientHandler.Create)
		clients.PUT("/change/:id", clientHandler.Update)
		clients.DELETE("/delete/:id", clientHandler.Delete)
	}

	services := env.router.Group("/services")
	{
		services.GET("/list", serviceHandler.List)
		services.GET("/list/:id", serviceHandler.GetByID)
		services.POST("/create", serviceHandler.Create)
		services.PUT("/change/:id", serviceHandler.Update)
		services.DELETE("/delete/:id", serviceHandler.Delete)
	}

	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}
