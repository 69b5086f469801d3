package category

import (
	"context"
	"errors"

	"github.com/nassaupro/marketplace-api/internal/domain/catalog"
	"github.com/nassaupro/marketplace-api/internal/models"
	"github.com/nassaupro/marketplace-api/internal/validation"
)

// UpdateCategoryInput: campos nil não são tocados (update parcial)
type UpdateCategoryInput struct {
	ID          uint
	Name        *string
	Description *string
}

type UpdateCategory struct {
	categories catalog.CategoryRepository
}

func NewUpdateCategory(categories catalog.CategoryRepository) *UpdateCategory {
	return &UpdateCategory{categories: categories}
}

func (uc *UpdateCategory) Execute(
	ctx context.Context,
	in UpdateCategoryInput,
) (*models.Category, error) {

	category, err := uc.categories.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	// Cada campo informado é validado isoladamente antes de
	// sobrescrever; qualquer falha aborta o update inteiro.
	if in.Name != nil {
		if v := validation.CategoryName(*in.Name); !v.Empty() {
			return nil, v
		}
		category.Name = *in.Name
	}

	if in.Description != nil {
		if v := validation.CategoryDescription(*in.Description); !v.Empty() {
			return nil, v
		}
		category.Description = *in.Description
	}

	if err := uc.categories.Save(ctx, category); err != nil {
		if errors.Is(err, catalog.ErrDuplicate) {
			return nil, errDuplicateName
		}
		return nil, err
	}

	return category, nil
}
