package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pabloapp/pablo-api/internal/application"
	"github.com/pabloapp/pablo-api/pkg/response"
	"github.com/pabloapp/pablo-api/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type generateTasksRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	Context     string `json:"context"`
	Time        int    `json:"time" binding:"required,gt=0"`
	Mood        string `json:"mood"`
	EnergyLevel string `json:"energy_level"`
}

func (h *TaskHandler) Generate(c *gin.Context) {
	var req generateTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, validation.ToDetails(err))
		return
	}

	tasks, err := h.Svc.GenerateTasks(c.Request.Context(), application.GenerateTasksInput{
		UserID:     req.UserID,
		Context:    req.Context,
		TimeBudget: req.Time,
		Mood:       req.Mood,
		Energy:     req.EnergyLevel,
	})
	if err != nil {
		// A disabled model, rejected output and a genuinely empty round all
		// land here with the same generic message.
		response.Error(c, http.StatusInternalServerError, "Failed to generate tasks")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"tasks": tasks})
}

func (h *TaskHandler) Validate(c *gin.Context) {
	userID := c.PostForm("user_id")
	task := c.PostForm("task")
	if userID == "" || task == "" {
		response.Error(c, http.StatusBadRequest, "user_id and task are required")
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "image file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to read image")
		return
	}
	defer func() { _ = f.Close() }()
	image, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to read image")
		return
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	res, err := h.Svc.ValidateTask(c.Request.Context(), userID, task, image, mimeType)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("task validation failed")
		}
		response.Error(c, http.StatusInternalServerError, "Failed to validate task")
		return
	}
	response.JSON(c, http.StatusOK, res)
}
