package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pabloapp/pablo-api/internal/domain/entity"
	repo "github.com/pabloapp/pablo-api/internal/domain/repository"
)

// ErrNoTasksGenerated covers every way a generation round can come back
// empty: disabled model, malformed output, or a legitimately empty list.
// Callers cannot tell these apart, by contract.
var ErrNoTasksGenerated = errors.New("no tasks generated")

// ModelGateway is the boundary to the external generative model. It returns
// raw text expected, but not guaranteed, to be JSON.
type ModelGateway interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

// TaskService orchestrates prompt building, the model gateway, output
// parsing and the narrow store updates. Gateway is nil when no model
// credential is configured.
type TaskService struct {
	Repo    repo.UserRepository
	Gateway ModelGateway
	Logger  *logrus.Logger
}

func NewTaskService(repo repo.UserRepository, gw ModelGateway, logger *logrus.Logger) *TaskService {
	return &TaskService{Repo: repo, Gateway: gw, Logger: logger}
}

type GenerateTasksInput struct {
	UserID     string
	Context    string
	TimeBudget int
	Mood       string
	Energy     string
}

// GenerateTasks asks the model for micro-tasks and replaces the user's task
// list with the result. An empty round surfaces as ErrNoTasksGenerated.
func (s *TaskService) GenerateTasks(ctx context.Context, in GenerateTasksInput) ([]string, error) {
	tasks := s.generate(ctx, in)
	if len(tasks) == 0 {
		return nil, ErrNoTasksGenerated
	}
	if err := s.Repo.SetTasks(ctx, in.UserID, tasks); err != nil {
		return nil, fmt.Errorf("persist tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) generate(ctx context.Context, in GenerateTasksInput) []string {
	if s.Gateway == nil {
		return nil
	}
	prompt := BuildTaskGenerationPrompt(in.Context, in.TimeBudget, in.Mood, in.Energy)
	raw, err := s.Gateway.GenerateText(ctx, prompt)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("task generation call failed")
		}
		return nil
	}
	tasks, err := ParseTaskList(raw)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("task generation output rejected")
		}
		return nil
	}
	return tasks
}

// ValidateTask asks the vision model whether the photo proves the task was
// done. A positive verdict completes the task; the verdict is returned to
// the caller either way. A store failure after a positive verdict is logged
// but does not suppress the verdict.
func (s *TaskService) ValidateTask(ctx context.Context, userID, task string, image []byte, mimeType string) (entity.ValidationResult, error) {
	if s.Gateway == nil {
		return entity.ValidationResult{Valid: false, Reason: "Missing API key", Confidence: 0}, nil
	}

	raw, err := s.Gateway.GenerateWithImage(ctx, BuildValidationPrompt(task), image, mimeType)
	if err != nil {
		return entity.ValidationResult{}, fmt.Errorf("validation call: %w", err)
	}

	res, err := ParseValidation(raw)
	if err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("validation output rejected")
	}

	if res.Valid {
		if err := s.Repo.CompleteTask(ctx, userID, task); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("complete task failed")
		}
	}
	return res, nil
}
