package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genInput() GenerateTasksInput {
	return GenerateTasksInput{
		UserID:     "u-1",
		Context:    "studying at my desk",
		TimeBudget: 20,
		Mood:       "calm",
		Energy:     "medium",
	}
}

func TestGenerateTasks(t *testing.T) {
	t.Run("persists and returns parsed tasks", func(t *testing.T) {
		repo := newFakeRepo()
		gw := &fakeGateway{text: `{"tasks":["read one page","  stretch  "]}`}
		svc := NewTaskService(repo, gw, nil)

		tasks, err := svc.GenerateTasks(context.Background(), genInput())
		require.NoError(t, err)
		assert.Equal(t, []string{"read one page", "stretch"}, tasks)
		assert.Equal(t, "u-1", repo.setTasksID)
		assert.Equal(t, tasks, repo.setTasks)
		assert.Contains(t, gw.prompt, "20 minutes")
	})

	t.Run("disabled gateway", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewTaskService(repo, nil, nil)

		_, err := svc.GenerateTasks(context.Background(), genInput())
		assert.ErrorIs(t, err, ErrNoTasksGenerated)
		assert.Empty(t, repo.setTasksID)
	})

	t.Run("malformed output", func(t *testing.T) {
		repo := newFakeRepo()
		gw := &fakeGateway{text: "sorry, I cannot do that"}
		svc := NewTaskService(repo, gw, nil)

		_, err := svc.GenerateTasks(context.Background(), genInput())
		assert.ErrorIs(t, err, ErrNoTasksGenerated)
		assert.Empty(t, repo.setTasksID)
	})

	t.Run("empty list", func(t *testing.T) {
		repo := newFakeRepo()
		gw := &fakeGateway{text: `{"tasks":[]}`}
		svc := NewTaskService(repo, gw, nil)

		_, err := svc.GenerateTasks(context.Background(), genInput())
		assert.ErrorIs(t, err, ErrNoTasksGenerated)
	})

	t.Run("transport failure", func(t *testing.T) {
		repo := newFakeRepo()
		gw := &fakeGateway{err: errors.New("connection reset")}
		svc := NewTaskService(repo, gw, nil)

		_, err := svc.GenerateTasks(context.Background(), genInput())
		assert.ErrorIs(t, err, ErrNoTasksGenerated)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := newFakeRepo()
		repo.setTasksErr = errors.New("write failed")
		gw := &fakeGateway{text: `{"tasks":["a b"]}`}
		svc := NewTaskService(repo, gw, nil)

		_, err := svc.GenerateTasks(context.Background(), genInput())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoTasksGenerated)
	})
}

func TestValidateTask(t *testing.T) {
	image := []byte{0xff, 0xd8, 0xff}

	t.Run("valid verdict completes the task", func(t *testing.T) {
		repo := newFakeRepo()
		gw := &fakeGateway{text: `{"valid":true,"reason":"ok","confidence":0.91}`}
		svc := NewTaskService(repo, gw, nil)

		res, err := svc.ValidateTask(context.Background(), "u-1", "read one page", image, "image/jpeg")
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.InDelta(t, 0.91, res.Confidence, 1e-9)
		assert.Equal(t, "u-1", repo.completedID)
		assert.Equal(t, "read one page", repo.completedTask)
		assert.Equal(t, image, gw.image)
		assert.Equal(t, "image/jpeg", gw.mime)
	})

	t.Run("invalid verdict leaves the task", func(t *testing.T) {
		repo := newFakeRepo()
		gw := &fakeGateway{text: `{"valid":false,"reason":"blurry","confidence":0.3}`}
		svc := NewTaskService(repo, gw, nil)

		res, err := svc.ValidateTask(context.Background(), "u-1", "stretch", image, "image/jpeg")
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Empty(t, repo.completedID)
	})

	t.Run("disabled gateway", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewTaskService(repo, nil, nil)

		res, err := svc.ValidateTask(context.Background(), "u-1", "stretch", image, "image/jpeg")
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "Missing API key", res.Reason)
		assert.Equal(t, 0.0, res.Confidence)
	})

	t.Run("malformed output falls back without completing", func(t *testing.T) {
		repo := newFakeRepo()
		gw := &fakeGateway{text: "definitely done, trust me"}
		svc := NewTaskService(repo, gw, nil)

		res, err := svc.ValidateTask(context.Background(), "u-1", "stretch", image, "image/jpeg")
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "Failed to parse model output", res.Reason)
		assert.Empty(t, repo.completedID)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		repo := newFakeRepo()
		gw := &fakeGateway{err: errors.New("timeout")}
		svc := NewTaskService(repo, gw, nil)

		_, err := svc.ValidateTask(context.Background(), "u-1", "stretch", image, "image/jpeg")
		assert.Error(t, err)
	})

	t.Run("verdict survives store failure", func(t *testing.T) {
		repo := newFakeRepo()
		repo.completeErr = errors.New("write failed")
		gw := &fakeGateway{text: `{"valid":true,"reason":"ok","confidence":0.8}`}
		svc := NewTaskService(repo, gw, nil)

		res, err := svc.ValidateTask(context.Background(), "u-1", "stretch", image, "image/jpeg")
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})
}
