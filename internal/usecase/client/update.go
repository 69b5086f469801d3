package client

import (
	"context"

	"github.com/nassaupro/marketplace-api/internal/domain/catalog"
	"github.com/nassaupro/marketplace-api/internal/models"
	"github.com/nassaupro/marketplace-api/internal/validation"
)

// UpdateClientInput: campos nil não são tocados. Senha, CPF e tipo de
// usuário não são mutáveis por esta rota; vínculos também não.
type UpdateClientInput struct {
	ID          uint
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
}

type UpdateClient struct {
	clients catalog.ClientRepository
}

func NewUpdateClient(clients catalog.ClientRepository) *UpdateClient {
	return &UpdateClient{clients: clients}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	in UpdateClientInput,
) (*models.Client, error) {

	client, err := uc.clients.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	// Cada campo informado é validado isoladamente; qualquer falha
	// aborta o update inteiro sem tocar o registro persistido.
	if in.FirstName != nil {
		if v := validation.ClientFirstName(*in.FirstName); !v.Empty() {
			return nil, v
		}
		client.FirstName = *in.FirstName
	}

	if in.LastName != nil {
		if v := validation.ClientLastName(*in.LastName); !v.Empty() {
			return nil, v
		}
		client.LastName = *in.LastName
	}

	// Email só é revalidado/aplicado quando realmente mudou
	if in.Email != nil && *in.Email != client.Email {
		if !validation.ValidEmail(*in.Email) {
			return nil, validation.Violations{
				"O campo 'email' não é um endereço de e-mail válido",
			}
		}
		client.Email = *in.Email
	}

	if in.PhoneNumber != nil {
		if v := validation.ClientPhoneNumber(*in.PhoneNumber); !v.Empty() {
			return nil, v
		}
		client.PhoneNumber = *in.PhoneNumber
	}

	if err := uc.clients.Save(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}
