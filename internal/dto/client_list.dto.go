package dto

import "github.com/nassaupro/marketplace-api/internal/models"

// ClientListDTO expõe apenas os campos de exibição; a senha nunca
// sai pelas rotas de listagem.
type ClientListDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func FromClient(c models.Client) ClientListDTO {
	return ClientListDTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
}

func FromClients(clients []models.Client) []ClientListDTO {
	out := make([]ClientListDTO, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
