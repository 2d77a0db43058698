package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pabloapp/pablo-api/internal/interface/http"
)

// TaskModule wires micro-task generation and proof validation.
// Public: POST /tasks/generate, POST /tasks/validate (multipart)

type TaskModule struct {
	Handler *handlers.TaskHandler
}

func NewTaskModule(h *handlers.TaskHandler) *TaskModule {
	return &TaskModule{Handler: h}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/generate", m.Handler.Generate)
		tasks.POST("/validate", m.Handler.Validate)
	}
}
