package application

import (
	"context"
	"errors"

	"github.com/pabloapp/pablo-api/internal/domain/entity"
)

// fakeRepo records the narrow store operations the services drive.
type fakeRepo struct {
	users map[string]*entity.User // keyed by email

	setTasksID    string
	setTasks      []string
	setTasksErr   error
	completedID   string
	completedTask string
	completeErr   error
	createErr     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]*entity.User{}}
}

func (f *fakeRepo) Create(ctx context.Context, u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = "u-" + u.Email
	u.Status = "happy"
	u.EvoCaps = entity.DefaultEvoCaps()
	f.users[u.Email] = u
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (f *fakeRepo) SetTasks(ctx context.Context, id string, tasks []string) error {
	f.setTasksID = id
	f.setTasks = tasks
	return f.setTasksErr
}

func (f *fakeRepo) CompleteTask(ctx context.Context, id string, task string) error {
	f.completedID = id
	f.completedTask = task
	return f.completeErr
}

// fakeGateway replays canned model output.
type fakeGateway struct {
	text    string
	err     error
	prompt  string
	image   []byte
	mime    string
	calls   int
}

func (f *fakeGateway) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.text, f.err
}

func (f *fakeGateway) GenerateWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	f.calls++
	f.prompt = prompt
	f.image = image
	f.mime = mimeType
	return f.text, f.err
}
