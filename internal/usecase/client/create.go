package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/nassaupro/marketplace-api/internal/domain/catalog"
	"github.com/nassaupro/marketplace-api/internal/httperr"
	"github.com/nassaupro/marketplace-api/internal/models"
	"github.com/nassaupro/marketplace-api/internal/validation"
)

// ======================================================
// INPUT
// ======================================================

type CreateClientInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	CPF         string // opcional
	PhoneNumber string
	UserType    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateClient struct {
	clients catalog.ClientRepository
}

func NewCreateClient(clients catalog.ClientRepository) *CreateClient {
	return &CreateClient{clients: clients}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	in CreateClientInput,
) (*models.Client, error) {

	client := &models.Client{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Password:    in.Password,
		CPF:         in.CPF,
		PhoneNumber: in.PhoneNumber,
		UserType:    models.UserType(in.UserType),
	}

	// --------------------------------------------------
	// 1️⃣ Validação de campos (todas as violações juntas)
	// --------------------------------------------------
	if v := validation.CheckClient(client); !v.Empty() {
		return nil, v
	}

	// --------------------------------------------------
	// 2️⃣ CPF único quando informado
	// --------------------------------------------------
	if client.CPF != "" {
		taken, err := uc.clients.ExistsByCPF(ctx, client.CPF)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errCPFTaken(client.CPF)
		}
	}

	// --------------------------------------------------
	// 3️⃣ Persistência
	// --------------------------------------------------
	if err := uc.clients.Save(ctx, client); err != nil {
		if errors.Is(err, catalog.ErrDuplicate) {
			return nil, errCPFTaken(client.CPF)
		}
		return nil, err
	}

	return client, nil
}

func errCPFTaken(cpf string) error {
	return httperr.ErrBusiness(
		"cpf_taken",
		fmt.Sprintf("O CPF %s já está em uso", cpf),
	)
}
