package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servicePayload() map[string]any {
	return map[string]any{
		"name":        "Serviço de Personal Trainer",
		"description": "Treinamento personalizado para condicionamento físico",
		"price":       25.0,
		"categoryId":  1,
		"clientId":    1,
	}
}

func (env *testEnv) seedCategoryAndClient(t *testing.T) {
	t.Helper()
	w := env.do(t, http.MethodPost, "/categories/create", map[string]any{"name": "Fitness"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/clients/create", clientPayload())
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestServiceCreate(t *testing.T) {
	env := newTestEnv()
	env.seedCategoryAndClient(t)

	w := env.do(t, http.MethodPost, "/services/create", servicePayload())

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Serviço cadastrado com sucesso!")
}

func TestServiceCreate_WithoutCategory(t *testing.T) {
	env := newTestEnv()
	// só cliente cadastrado, nenhuma categoria
	env.do(t, http.MethodPost, "/clients/create", clientPayload())

	w := env.do(t, http.MethodPost, "/services/create", servicePayload())

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(),
		"Você não pode criar um serviço sem ter uma categoria para vincular")
}

func TestServiceCreate_WithoutClient(t *testing.T) {
	env := newTestEnv()
	env.do(t, http.MethodPost, "/categories/create", map[string]any{"name": "Fitness"})

	w := env.do(t, http.MethodPost, "/services/create", servicePayload())

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(),
		"Você não pode criar um serviço sem ter um usuário para vincular")
}

func TestServiceList_Empty(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/services/list", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Não há serviço cadastrado"}`, w.Body.String())
}

func TestServiceGet_NotFound(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/services/list/3", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Serviço não encontrado com o ID: 3")
}

func TestServiceUpdate_BlankName(t *testing.T) {
	env := newTestEnv()
	env.seedCategoryAndClient(t)
	env.do(t, http.MethodPost, "/services/create", servicePayload())

	w := env.do(t, http.MethodPut, "/services/change/1", map[string]any{"name": ""})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "O campo nome não pode estar vazio")
}

func TestServiceUpdate(t *testing.T) {
	env := newTestEnv()
	env.seedCategoryAndClient(t)
	env.do(t, http.MethodPost, "/services/create", servicePayload())

	w := env.do(t, http.MethodPut, "/services/change/1", map[string]any{
		"name": "Serviço de Crossfit",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Serviço atualizado com sucesso")
}

func TestServiceDelete(t *testing.T) {
	env := newTestEnv()
	env.seedCategoryAndClient(t)
	env.do(t, http.MethodPost, "/services/create", servicePayload())

	w := env.do(t, http.MethodDelete, "/services/delete/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Serviço deletado com sucesso")

	w = env.do(t, http.MethodDelete, "/services/delete/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
