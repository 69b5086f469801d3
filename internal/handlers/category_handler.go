package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nassaupro/marketplace-api/internal/cache"
	"github.com/nassaupro/marketplace-api/internal/domain/catalog"
	"github.com/nassaupro/marketplace-api/internal/httperr"
	"github.com/nassaupro/marketplace-api/internal/httpresp"
	ucCategory "github.com/nassaupro/marketplace-api/internal/usecase/category"
)

const (
	cacheKeyCategories = "categories:list"
	listCacheTTL       = 60 * time.Second
)

type CategoryHandler struct {
	repo     catalog.CategoryRepository
	createUC *ucCategory.CreateCategory
	updateUC *ucCategory.UpdateCategory
	cache    cache.Store
}

func NewCategoryHandler(
	repo catalog.CategoryRepository,
	createUC *ucCategory.CreateCategory,
	updateUC *ucCategory.UpdateCategory,
	store cache.Store,
) *CategoryHandler {
	return &CategoryHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		cache:    store,
	}
}

// --------- Requests ---------

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ======================================================
// LIST
// ======================================================
func (h *CategoryHandler) List(c *gin.Context) {
	if body, ok := h.cache.Get(c.Request.Context(), cacheKeyCategories); ok {
		c.Data(200, "application/json; charset=utf-8", []byte(body))
		return
	}

	categories, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "Ocorreu um erro ao buscar as categorias")
		return
	}

	// lista vazia é um resultado informativo, não um erro
	if len(categories) == 0 {
		httpresp.Message(c, "Não há categoria cadastrada")
		return
	}

	if body, err := json.Marshal(categories); err == nil {
		h.cache.Set(c.Request.Context(), cacheKeyCategories, string(body), listCacheTTL)
	}

	httpresp.OK(c, categories)
}

// ======================================================
// GET BY ID
// ======================================================
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err,
			fmt.Sprintf("Categoria não encontrada com o ID: %d", id),
			"Ocorreu um erro ao buscar a categoria pelo ID")
		return
	}

	httpresp.OK(c, category)
}

// ======================================================
// CREATE
// ======================================================
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	category, err := h.createUC.Execute(c.Request.Context(), ucCategory.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err, "", "Ocorreu um erro ao criar a categoria")
		return
	}

	h.cache.Del(c.Request.Context(), cacheKeyCategories)

	// categoria criada responde 200 com a entidade (diferente de
	// cliente/serviço, que respondem 201 com mensagem)
	httpresp.OK(c, category)
}

// ======================================================
// UPDATE (parcial)
// ======================================================
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	_, err := h.updateUC.Execute(c.Request.Context(), ucCategory.UpdateCategoryInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err,
			fmt.Sprintf("Não foi encontrada uma categoria com o ID: %d", id),
			"Ocorreu um erro ao atualizar a categoria")
		return
	}

	h.cache.Del(c.Request.Context(), cacheKeyCategories, cacheKeyServices)

	httpresp.Message(c, "Categoria atualizada com sucesso")
}

// ======================================================
// DELETE
// ======================================================
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	exists, err := h.repo.ExistsByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "internal_error", "Ocorreu um erro ao excluir a categoria")
		return
	}
	if !exists {
		httperr.NotFound(c, "not_found",
			fmt.Sprintf("Categoria não encontrada com o ID: %d", id))
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "internal_error", "Ocorreu um erro ao excluir a categoria")
		return
	}

	// o cascade também remove os serviços da categoria
	h.cache.Del(c.Request.Context(), cacheKeyCategories, cacheKeyServices)

	httpresp.Message(c, "Categoria deletada com sucesso")
}
