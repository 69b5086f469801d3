package service

import (
	"context"

	"github.com/nassaupro/marketplace-api/internal/domain/catalog"
	"github.com/nassaupro/marketplace-api/internal/httperr"
	"github.com/nassaupro/marketplace-api/internal/models"
	"github.com/nassaupro/marketplace-api/internal/validation"
)

// ======================================================
// INPUT
// ======================================================

type CreateServiceInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  uint
	ClientID    uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateService struct {
	services   catalog.ServiceRepository
	categories catalog.CategoryRepository
	clients    catalog.ClientRepository
}

func NewCreateService(
	services catalog.ServiceRepository,
	categories catalog.CategoryRepository,
	clients catalog.ClientRepository,
) *CreateService {
	return &CreateService{
		services:   services,
		categories: categories,
		clients:    clients,
	}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	in CreateServiceInput,
) (*models.Service, error) {

	svc := &models.Service{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		ClientID:    in.ClientID,
	}

	// --------------------------------------------------
	// 1️⃣ Validação de campos (todas as violações juntas)
	// --------------------------------------------------
	if v := validation.CheckService(svc); !v.Empty() {
		return nil, v
	}

	// --------------------------------------------------
	// 2️⃣ Pré-condição referencial: precisa existir ao
	//    menos uma categoria e um cliente cadastrados.
	//    O check é propositalmente grosso (qualquer linha
	//    serve); o id apontado é resolvido pelo FK do banco.
	// --------------------------------------------------
	hasCategory, err := uc.categories.HasAny(ctx)
	if err != nil {
		return nil, err
	}
	if !hasCategory {
		return nil, httperr.ErrBusiness(
			"missing_category_dependency",
			"Você não pode criar um serviço sem ter uma categoria para vincular",
		)
	}

	hasClient, err := uc.clients.HasAny(ctx)
	if err != nil {
		return nil, err
	}
	if !hasClient {
		return nil, httperr.ErrBusiness(
			"missing_client_dependency",
			"Você não pode criar um serviço sem ter um usuário para vincular",
		)
	}

	// --------------------------------------------------
	// 3️⃣ Persistência
	// --------------------------------------------------
	if err := uc.services.Save(ctx, svc); err != nil {
		return nil, err
	}

	return svc, nil
}
