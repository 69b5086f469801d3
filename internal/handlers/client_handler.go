package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/nassaupro/marketplace-api/internal/cache"
	"github.com/nassaupro/marketplace-api/internal/domain/catalog"
	"github.com/nassaupro/marketplace-api/internal/dto"
	"github.com/nassaupro/marketplace-api/internal/httperr"
	"github.com/nassaupro/marketplace-api/internal/httpresp"
	ucClient "github.com/nassaupro/marketplace-api/internal/usecase/client"
)

const cacheKeyClients = "clients:list"

type ClientHandler struct {
	repo     catalog.ClientRepository
	createUC *ucClient.CreateClient
	updateUC *ucClient.UpdateClient
	cache    cache.Store
}

func NewClientHandler(
	repo catalog.ClientRepository,
	createUC *ucClient.CreateClient,
	updateUC *ucClient.UpdateClient,
	store cache.Store,
) *ClientHandler {
	return &ClientHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		cache:    store,
	}
}

// --------- Requests ---------

type CreateClientRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CPF         string `json:"cpf"`
	PhoneNumber string `json:"phoneNumber"`
	UserType    string `json:"userType"`
}

type UpdateClientRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// ======================================================
// LIST (DTO: sem senha, sem CPF)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	if body, ok := h.cache.Get(c.Request.Context(), cacheKeyClients); ok {
		c.Data(200, "application/json; charset=utf-8", []byte(body))
		return
	}

	clients, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "Ocorreu um erro ao buscar os clientes")
		return
	}

	if len(clients) == 0 {
		httpresp.Message(c, "Não há cliente cadastrado")
		return
	}

	list := dto.FromClients(clients)

	if body, err := json.Marshal(list); err == nil {
		h.cache.Set(c.Request.Context(), cacheKeyClients, string(body), listCacheTTL)
	}

	httpresp.List(c, list)
}

// ======================================================
// GET BY ID
// ======================================================
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err,
			fmt.Sprintf("Cliente não encontrado com o ID: %d", id),
			"Ocorreu um erro ao buscar o cliente pelo ID")
		return
	}

	httpresp.OK(c, dto.FromClient(*client))
}

// ======================================================
// CREATE
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	_, err := h.createUC.Execute(c.Request.Context(), ucClient.CreateClientInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		CPF:         req.CPF,
		PhoneNumber: req.PhoneNumber,
		UserType:    req.UserType,
	})
	if err != nil {
		writeError(c, err, "", "Ocorreu um erro ao criar o cliente")
		return
	}

	h.cache.Del(c.Request.Context(), cacheKeyClients)

	httpresp.CreatedMessage(c, "Cliente cadastrado com sucesso!")
}

// ======================================================
// UPDATE (parcial)
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	_, err := h.updateUC.Execute(c.Request.Context(), ucClient.UpdateClientInput{
		ID:          id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		writeError(c, err,
			fmt.Sprintf("Cliente não encontrado com o ID: %d", id),
			"Ocorreu um erro ao atualizar o cliente")
		return
	}

	h.cache.Del(c.Request.Context(), cacheKeyClients, cacheKeyServices)

	httpresp.Message(c, "Dados atualizados com sucesso!")
}

// ======================================================
// DELETE
// ======================================================
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	exists, err := h.repo.ExistsByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "internal_error", "Ocorreu um erro ao excluir o cliente")
		return
	}
	if !exists {
		httperr.NotFound(c, "not_found",
			fmt.Sprintf("Cliente não encontrado com o ID: %d", id))
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "internal_error", "Ocorreu um erro ao excluir o cliente")
		return
	}

	// o cascade também remove os serviços do cliente
	h.cache.Del(c.Request.Context(), cacheKeyClients, cacheKeyServices)

	httpresp.Message(c, "Cliente deletado com sucesso")
}
