package dto

import (
	"strings"

	"github.com/nassaupro/marketplace-api/internal/models"
)

// ServiceListDTO achata categoria e cliente para campos de exibição
type ServiceListDTO struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CategoryName string  `json:"categoryName"`
	ClientName   string  `json:"clientName"`
}

func FromService(s models.Service) ServiceListDTO {
	return ServiceListDTO{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Price:        s.Price,
		CategoryName: s.Category.Name,
		ClientName:   strings.TrimSpace(s.Client.FirstName + " " + s.Client.LastName),
	}
}

func FromServices(services []models.Service) []ServiceListDTO {
	out := make([]ServiceListDTO, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
