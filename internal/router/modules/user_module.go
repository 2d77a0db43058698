package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pabloapp/pablo-api/internal/interface/http"
)

// UserModule wires the registration and login routes.
// Public: POST /users/register, POST /users/login

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("/register", m.Handler.Register)
		users.POST("/login", m.Handler.Login)
	}
}
