package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nassaupro/marketplace-api/internal/httperr"
	"github.com/nassaupro/marketplace-api/internal/validation"
)

// parseID lê o {id} da rota; ids não numéricos viram 400
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "O ID informado não é válido")
		return 0, false
	}
	return uint(id), true
}

// writeError resolve qualquer falha dos usecases/repositórios em
// exatamente um dos tipos de resposta: violações de validação (400),
// erro de negócio (400), não encontrado (404) ou erro interno (500).
// Detalhe de falha de persistência nunca vaza para o cliente.
func writeError(c *gin.Context, err error, notFoundMessage, internalMessage string) {
	var violations validation.Violations
	if errors.As(err, &violations) {
		httperr.Violations(c, violations)
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		httperr.BadRequest(c, be.Code, be.Message)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", notFoundMessage)
		return
	}

	log.Printf("unexpected error: %v", err)
	httperr.Internal(c, "internal_error", internalMessage)
}
