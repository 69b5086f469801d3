package catalog

import (
	"context"
	"errors"

	"github.com/nassaupro/marketplace-api/internal/models"
)

// Erros sentinela produzidos pela camada de persistência a partir
// das violações de constraint do banco.
var (
	// ErrDuplicate: índice único violado (nome de categoria, CPF)
	ErrDuplicate = errors.New("duplicate key")

	// ErrIntegrity: violação de chave estrangeira / linhas dependentes
	ErrIntegrity = errors.New("integrity violation")
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)

	// HasAny indica se existe ao menos uma categoria cadastrada
	HasAny(ctx context.Context) (bool, error)

	Save(ctx context.Context, category *models.Category) error
	DeleteByID(ctx context.Context, id uint) error
}

type ClientRepository interface {
	FindAll(ctx context.Context) ([]models.Client, error)
	FindByID(ctx context.Context, id uint) (*models.Client, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)

	HasAny(ctx context.Context) (bool, error)

	Save(ctx context.Context, client *models.Client) error
	DeleteByID(ctx context.Context, id uint) error
}

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	FindByID(ctx context.Context, id uint) (*models.Service, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)

	Save(ctx context.Context, service *models.Service) error
	DeleteByID(ctx context.Context, id uint) error
}
