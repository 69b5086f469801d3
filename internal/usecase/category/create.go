package category

import (
	"context"
	"errors"

	"github.com/nassaupro/marketplace-api/internal/domain/catalog"
	"github.com/nassaupro/marketplace-api/internal/httperr"
	"github.com/nassaupro/marketplace-api/internal/models"
	"github.com/nassaupro/marketplace-api/internal/validation"
)

// ======================================================
// INPUT
// ======================================================

type CreateCategoryInput struct {
	Name        string
	Description string
}

// ======================================================
// USE CASE
// ======================================================

type CreateCategory struct {
	categories catalog.CategoryRepository
}

func NewCreateCategory(categories catalog.CategoryRepository) *CreateCategory {
	return &CreateCategory{categories: categories}
}

func (uc *CreateCategory) Execute(
	ctx context.Context,
	in CreateCategoryInput,
) (*models.Category, error) {

	category := &models.Category{
		Name:        in.Name,
		Description: in.Description,
	}

	// --------------------------------------------------
	// 1️⃣ Validação de campos (todas as violações juntas)
	// --------------------------------------------------
	if v := validation.CheckCategory(category); !v.Empty() {
		return nil, v
	}

	// --------------------------------------------------
	// 2️⃣ Unicidade do nome (pre-check; o índice único
	//    cobre a corrida entre check e insert)
	// --------------------------------------------------
	taken, err := uc.categories.ExistsByName(ctx, category.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errDuplicateName
	}

	// --------------------------------------------------
	// 3️⃣ Persistência
	// --------------------------------------------------
	if err := uc.categories.Save(ctx, category); err != nil {
		if errors.Is(err, catalog.ErrDuplicate) {
			return nil, errDuplicateName
		}
		return nil, err
	}

	return category, nil
}

var errDuplicateName = httperr.ErrBusiness(
	"category_name_taken",
	"Já existe uma categoria com o mesmo nome",
)
