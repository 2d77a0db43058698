package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/pabloapp/pablo-api/internal/domain/entity"
	repo "github.com/pabloapp/pablo-api/internal/domain/repository"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

// UserService owns registration and login against the user store.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

type RegisterInput struct {
	Email    string
	MDP      string
	Name     string
	Filepath string
}

// Register creates a user document and returns its fresh id. Duplicate
// emails are not rejected; see the open-question note in DESIGN.md.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	u := &entity.User{
		Email:    in.Email,
		MDP:      in.MDP,
		Name:     in.Name,
		Filepath: in.Filepath,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", in.Email).Error("create user failed")
		}
		return "", err
	}
	return u.ID, nil
}

// Login compares the secret as-is. The returned user carries the derived
// avatar path computed by the store at read time.
func (s *UserService) Login(ctx context.Context, email, mdp string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	if u.MDP != mdp {
		return nil, ErrWrongPassword
	}
	return u, nil
}
