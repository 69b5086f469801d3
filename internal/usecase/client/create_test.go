package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nassaupro/marketplace-api/internal/domain/catalog"
	"github.com/nassaupro/marketplace-api/internal/domain/catalog/catalogtest"
	"github.com/nassaupro/marketplace-api/internal/httperr"
	"github.com/nassaupro/marketplace-api/internal/validation"
)

func validInput() CreateClientInput {
	return CreateClientInput{
		FirstName:   "Melo",
		LastName:    "Meloso",
		Email:       "melo@x.com",
		Password:    "Melo123456",
		CPF:         "69475441069",
		PhoneNumber: "81912345678",
		UserType:    "CLIENT",
	}
}

func TestCreateClient(t *testing.T) {
	repo := catalogtest.NewClientRepo()
	uc := NewCreateClient(repo)

	created, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "69475441069", stored.CPF)
	// a senha é armazenada como recebida
	assert.Equal(t, "Melo123456", stored.Password)
}

func TestCreateClient_DuplicateCPF(t *testing.T) {
	repo := catalogtest.NewClientRepo()
	uc := NewCreateClient(repo)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Email = "outro@x.com"
	_, err = uc.Execute(context.Background(), in)
	require.Error(t, err)

	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "cpf_taken", be.Code)
	assert.Equal(t, "O CPF 69475441069 já está em uso", be.Message)

	assert.Equal(t, 1, repo.Count())
}

func TestCreateClient_DuplicateCPFFromSave(t *testing.T) {
	repo := catalogtest.NewClientRepo()
	uc := NewCreateClient(repo)

	// o pre-check passa, mas o índice único acusa no insert
	repo.SaveErr = catalog.ErrDuplicate

	_, err := uc.Execute(context.Background(), validInput())
	require.Error(t, err)

	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "cpf_taken", be.Code)
	assert.Equal(t, "O CPF 69475441069 já está em uso", be.Message)
}

func TestCreateClient_CPFOptional(t *testing.T) {
	repo := catalogtest.NewClientRepo()
	uc := NewCreateClient(repo)

	in := validInput()
	in.CPF = ""
	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// dois clientes sem CPF não conflitam entre si
	in2 := validInput()
	in2.CPF = ""
	in2.Email = "outro@x.com"
	_, err = uc.Execute(context.Background(), in2)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.Count())
}

func TestCreateClient_AllViolationsTogether(t *testing.T) {
	repo := catalogtest.NewClientRepo()
	uc := NewCreateClient(repo)

	_, err := uc.Execute(context.Background(), CreateClientInput{
		FirstName:   "Melo123",
		LastName:    "Meloso",
		Email:       "not-an-email",
		Password:    "123",
		CPF:         "69475441069",
		PhoneNumber: "123",
		UserType:    "CLIENT",
	})
	require.Error(t, err)

	var v validation.Violations
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v, "O nome só deve conter letras")
	assert.Contains(t, v, "O campo 'email' não é um endereço de e-mail válido")
	assert.Contains(t, v, "A senha deve conter no mínimo 6 caracteres")
	assert.Contains(t, v, "O celular deve conter 11 números")

	assert.Zero(t, repo.Count())
}
