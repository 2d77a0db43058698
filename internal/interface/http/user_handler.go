package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pabloapp/pablo-api/internal/application"
	"github.com/pabloapp/pablo-api/pkg/response"
	"github.com/pabloapp/pablo-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	MDP      string `json:"mdp" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Filepath string `json:"filepath"`
}

type loginRequest struct {
	Email string `json:"email" binding:"required"`
	MDP   string `json:"mdp" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, validation.ToDetails(err))
		return
	}

	id, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		MDP:      req.MDP,
		Name:     req.Name,
		Filepath: req.Filepath,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "User created", "user_id": id})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.Email, req.MDP)
	switch {
	case errors.Is(err, application.ErrWrongPassword):
		response.Error(c, http.StatusUnauthorized, "Wrong password")
		return
	case err != nil:
		response.Error(c, http.StatusNotFound, "User not found")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"id":              u.ID,
		"email":           u.Email,
		"name":            u.Name,
		"status":          u.Status,
		"filepath":        u.Filepath,
		"tasks_completed": u.TasksCompleted,
		"birthday":        u.Birthday,
	})
}
