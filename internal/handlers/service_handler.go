package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/nassaupro/marketplace-api/internal/cache"
	"github.com/nassaupro/marketplace-api/internal/domain/catalog"
	"github.com/nassaupro/marketplace-api/internal/dto"
	"github.com/nassaupro/marketplace-api/internal/httperr"
	"github.com/nassaupro/marketplace-api/internal/httpresp"
	ucService "github.com/nassaupro/marketplace-api/internal/usecase/service"
)

const cacheKeyServices = "services:list"

type ServiceHandler struct {
	repo     catalog.ServiceRepository
	createUC *ucService.CreateService
	updateUC *ucService.UpdateService
	cache    cache.Store
}

func NewServiceHandler(
	repo catalog.ServiceRepository,
	createUC *ucService.CreateService,
	updateUC *ucService.UpdateService,
	store cache.Store,
) *ServiceHandler {
	return &ServiceHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		cache:    store,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  uint    `json:"categoryId"`
	ClientID    uint    `json:"clientId"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// ======================================================
// LIST (DTO: categoria/cliente achatados para exibição)
// ======================================================
func (h *ServiceHandler) List(c *gin.Context) {
	if body, ok := h.cache.Get(c.Request.Context(), cacheKeyServices); ok {
		c.Data(200, "application/json; charset=utf-8", []byte(body))
		return
	}

	services, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "Ocorreu um erro ao buscar os serviços")
		return
	}

	if len(services) == 0 {
		httpresp.Message(c, "Não há serviço cadastrado")
		return
	}

	list := dto.FromServices(services)

	if body, err := json.Marshal(list); err == nil {
		h.cache.Set(c.Request.Context(), cacheKeyServices, string(body), listCacheTTL)
	}

	httpresp.List(c, list)
}

// ======================================================
// GET BY ID
// ======================================================
func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	service, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err,
			fmt.Sprintf("Serviço não encontrado com o ID: %d", id),
			"Ocorreu um erro ao buscar o serviço pelo ID")
		return
	}

	httpresp.OK(c, dto.FromService(*service))
}

// ======================================================
// CREATE
// ======================================================
func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	_, err := h.createUC.Execute(c.Request.Context(), ucService.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ClientID:    req.ClientID,
	})
	if err != nil {
		writeError(c, err, "", "Ocorreu um erro ao criar o serviço")
		return
	}

	h.cache.Del(c.Request.Context(), cacheKeyServices)

	httpresp.CreatedMessage(c, "Serviço cadastrado com sucesso!")
}

// ======================================================
// UPDATE (parcial)
// ======================================================
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	_, err := h.updateUC.Execute(c.Request.Context(), ucService.UpdateServiceInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		writeError(c, err,
			fmt.Sprintf("Serviço não encontrado com o ID: %d", id),
			"Ocorreu um erro ao atualizar o serviço")
		return
	}

	h.cache.Del(c.Request.Context(), cacheKeyServices)

	httpresp.Message(c, "Serviço atualizado com sucesso")
}

// ======================================================
// DELETE
// ======================================================
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	exists, err := h.repo.ExistsByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "internal_error", "Ocorreu um erro ao excluir o serviço")
		return
	}
	if !exists {
		httperr.NotFound(c, "not_found",
			fmt.Sprintf("Serviço não encontrado com o ID: %d", id))
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrIntegrity) {
			httperr.BadRequest(c, "integrity_violation",
				"Não é possível excluir o serviço devido a dependências existentes.")
			return
		}
		httperr.Internal(c, "internal_error", "Ocorreu um erro ao excluir o serviço")
		return
	}

	h.cache.Del(c.Request.Context(), cacheKeyServices)

	httpresp.Message(c, "Serviço deletado com sucesso")
}
