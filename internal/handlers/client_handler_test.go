package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientPayload() map[string]any {
	return map[string]any{
		"firstName":   "Melo",
		"lastName":    "Meloso",
		"email":       "melo@x.com",
		"password":    "Melo123456",
		"cpf":         "69475441069",
		"phoneNumber": "81912345678",
		"userType":    "CLIENT",
	}
}

func TestClientCreate(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/clients/create", clientPayload())

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Cliente cadastrado com sucesso!")
}

func TestClientCreate_DuplicateCPF(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/clients/create", clientPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	// repetir o mesmo CPF é 400 com a mensagem de duplicidade
	w = env.do(t, http.MethodPost, "/clients/create", clientPayload())
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "O CPF 69475441069 já está em uso")
}

func TestClientCreate_ValidationCollectsAll(t *testing.T) {
	env := newTestEnv()

	payload := clientPayload()
	payload["firstName"] = "Melo123"
	payload["email"] = "not-an-email"

	w := env.do(t, http.MethodPost, "/clients/create", payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "O nome só deve conter letras")
	assert.Contains(t, w.Body.String(), "não é um endereço de e-mail válido")
}

func TestClientList_HidesPasswordAndCPF(t *testing.T) {
	env := newTestEnv()
	env.do(t, http.MethodPost, "/clients/create", clientPayload())

	w := env.do(t, http.MethodGet, "/clients/list", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Melo")
	assert.Contains(t, body, "melo@x.com")
	assert.NotContains(t, body, "Melo123456")
	assert.NotContains(t, body, "69475441069")
}

func TestClientList_Empty(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/clients/list", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Não há cliente cadastrado"}`, w.Body.String())
}

func TestClientUpdate_InvalidEmailLeavesRecordUntouched(t *testing.T) {
	env := newTestEnv()
	env.do(t, http.MethodPost, "/clients/create", clientPayload())

	w := env.do(t, http.MethodPut, "/clients/change/1", map[string]any{
		"email": "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "não é um endereço de e-mail válido")

	// o registro persistido mantém o email original
	w = env.do(t, http.MethodGet, "/clients/list/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "melo@x.com")
}

func TestClientUpdate_PhoneOnly(t *testing.T) {
	env := newTestEnv()
	env.do(t, http.MethodPost, "/clients/create", clientPayload())

	w := env.do(t, http.MethodPut, "/clients/change/1", map[string]any{
		"phoneNumber": "81998765432",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dados atualizados com sucesso!")
}

func TestClientUpdate_NotFound(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPut, "/clients/change/9", map[string]any{
		"phoneNumber": "81998765432",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Cliente não encontrado com o ID: 9")
}

func TestClientDelete_TwiceIsNotFoundBothTimes(t *testing.T) {
	env := newTestEnv()
	env.do(t, http.MethodPost, "/clients/create", clientPayload())

	w := env.do(t, http.MethodDelete, "/clients/delete/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/clients/delete/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, "/clients/delete/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
