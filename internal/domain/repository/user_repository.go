package repository

import (
	"context"

	"github.com/pabloapp/pablo-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	SetTasks(ctx context.Context, id string, tasks []string) error
	CompleteTask(ctx context.Context, id string, task string) error
}
