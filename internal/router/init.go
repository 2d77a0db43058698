package router

import (
	"github.com/pabloapp/pablo-api/internal/application"
	"github.com/pabloapp/pablo-api/internal/container"
	"github.com/pabloapp/pablo-api/internal/infrastructure/mongodb"
	handlers "github.com/pabloapp/pablo-api/internal/interface/http"
	"github.com/pabloapp/pablo-api/internal/router/modules"
)

// InitModules wires repositories, services and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	repo := mongodb.NewUserRepository(container.GetDatabase())
	logger := container.GetLogger()

	userSvc := application.NewUserService(repo, logger)
	taskSvc := application.NewTaskService(repo, container.GetGateway(), logger)

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler()))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger)))
}
