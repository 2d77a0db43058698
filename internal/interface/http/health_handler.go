package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pabloapp/pablo-api/pkg/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Check(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"status": "healthy", "message": "Backend is running"})
}
