package service

import (
	"context"
	"errors"

	"github.com/nassaupro/marketplace-api/internal/domain/catalog"
	"github.com/nassaupro/marketplace-api/internal/httperr"
	"github.com/nassaupro/marketplace-api/internal/models"
	"github.com/nassaupro/marketplace-api/internal/validation"
)

// UpdateServiceInput: campos nil não são tocados. Os vínculos de
// categoria e cliente não são mutáveis por esta rota.
type UpdateServiceInput struct {
	ID          uint
	Name        *string
	Description *string
	Price       *float64
}

type UpdateService struct {
	services catalog.ServiceRepository
}

func NewUpdateService(services catalog.ServiceRepository) *UpdateService {
	return &UpdateService{services: services}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	in UpdateServiceInput,
) (*models.Service, error) {

	svc, err := uc.services.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if !validation.NotBlank(*in.Name) {
			return nil, httperr.ErrBusiness(
				"blank_service_name",
				"O campo nome não pode estar vazio",
			)
		}
		if v := validation.ServiceNameLength(*in.Name); !v.Empty() {
			return nil, v
		}
		svc.Name = *in.Name
	}

	if in.Description != nil {
		if v := validation.ServiceDescription(*in.Description); !v.Empty() {
			return nil, v
		}
		svc.Description = *in.Description
	}

	if in.Price != nil {
		if v := validation.ServicePrice(*in.Price); !v.Empty() {
			return nil, v
		}
		svc.Price = *in.Price
	}

	if err := uc.services.Save(ctx, svc); err != nil {
		if errors.Is(err, catalog.ErrIntegrity) {
			return nil, httperr.ErrBusiness(
				"integrity_violation",
				"Não é possível atualizar o serviço devido a restrições de integridade de dados.",
			)
		}
		return nil, err
	}

	return svc, nil
}
