package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message responde 200 com uma mensagem informativa
// (sucesso de update/delete, lista vazia)
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// CreatedMessage responde 201 com a mensagem de cadastro
func CreatedMessage(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, MessageResponse{Message: message})
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, data)
}
