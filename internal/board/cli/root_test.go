package cli_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotaskboard/internal/board/cli"
	"gotaskboard/internal/board/config"
	"gotaskboard/internal/board/domain/entities"
)

// fakeBoard реализует ports/services.Board с фиксированными данными.
type fakeBoard struct {
	reachable bool
}

func (f *fakeBoard) ListUsers(context.Context) ([]entities.User, error) {
	return []entities.User{
		{ID: 1, Name: "Ann Example", Email: "ann@example.com",
			Address: entities.Address{City: "Springfield"},
			Company: entities.Company{Name: "Acme"}},
		{ID: 2, Name: "Bob Example", Email: "bob@example.com",
			Address: entities.Address{City: "Shelbyville"},
			Company: entities.Company{Name: "Globex"}},
	}, nil
}

func (f *fakeBoard) GetUser(ctx context.Context, userID int) (*entities.User, error) {
	if err := entities.ValidateUserID(userID); err != nil {
		return nil, err
	}
	users, _ := f.ListUsers(ctx)
	return &users[0], nil
}

func (f *fakeBoard) ListTasks(_ context.Context, userID int) ([]entities.Task, error) {
	if err := entities.ValidateUserID(userID); err != nil {
		return nil, err
	}
	return []entities.Task{
		{ID: 11, UserID: userID, Title: "write report", Completed: false},
		{ID: 12, UserID: userID, Title: "send report", Completed: true},
	}, nil
}

func (f *fakeBoard) CreateTask(_ context.Context, userID int, title string) (*entities.Task, error) {
	trimmed, err := entities.ValidateTitle(title)
	if err != nil {
		return nil, err
	}
	return &entities.Task{ID: 201, UserID: userID, Title: trimmed}, nil
}

func (f *fakeBoard) UpdateTask(_ context.Context, taskID int, patch entities.TaskPatch) (*entities.Task, error) {
	task := entities.Task{ID: taskID, UserID: 1, Title: "write report"}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	return &task, nil
}

func (f *fakeBoard) DeleteTask(context.Context, int) (bool, error) { return true, nil }

func (f *fakeBoard) GetUserWithTasks(ctx context.Context, userID int) (*entities.UserWithTasks, error) {
	user, err := f.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, _ := f.ListTasks(ctx, userID)
	return &entities.UserWithTasks{User: *user, Tasks: tasks}, nil
}

func (f *fakeBoard) ListUsersWithTasks(ctx context.Context) ([]entities.UserWithTasks, error) {
	users, _ := f.ListUsers(ctx)
	composed := make([]entities.UserWithTasks, 0, len(users))
	for _, user := range users {
		tasks, _ := f.ListTasks(ctx, user.ID)
		composed = append(composed, entities.UserWithTasks{User: user, Tasks: tasks})
	}
	return composed, nil
}

func (f *fakeBoard) Probe(context.Context) bool { return f.reachable }

// execute запускает команду и возвращает ее вывод.
func execute(t *testing.T, board *fakeBoard, args ...string) (string, error) {
	t.Helper()

	root := cli.NewRootCommand(&cli.Deps{
		Board:  board,
		Config: &config.Config{Overlay: config.OverlayConfig{LocalIDThreshold: 201}},
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestUsersCommand(t *testing.T) {
	out, err := execute(t, &fakeBoard{}, "users")
	require.NoError(t, err)
	assert.Contains(t, out, "Ann Example")
	assert.Contains(t, out, "Bob Example")
	assert.Contains(t, out, "Globex")
}

func TestUsersCommand_WithTasks(t *testing.T) {
	out, err := execute(t, &fakeBoard{}, "users", "--with-tasks")
	require.NoError(t, err)
	assert.Contains(t, out, "Ann Example")
	assert.Contains(t, out, "write report")
	assert.Contains(t, out, "[x]")
}

func TestUserCommand_InvalidID(t *testing.T) {
	_, err := execute(t, &fakeBoard{}, "user", "0")
	assert.ErrorIs(t, err, entities.ErrInvalidUserID)

	_, err = execute(t, &fakeBoard{}, "user", "abc")
	assert.ErrorIs(t, err, entities.ErrInvalidUserID)
}

func TestTasksCommand(t *testing.T) {
	out, err := execute(t, &fakeBoard{}, "tasks", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "write report")
	assert.Contains(t, out, "send report")
}

func TestAddCommand(t *testing.T) {
	out, err := execute(t, &fakeBoard{}, "add", "1", "Buy", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
}

func TestDoneCommand(t *testing.T) {
	out, err := execute(t, &fakeBoard{}, "done", "1", "11")
	require.NoError(t, err)
	assert.Contains(t, out, "[x]   11")
}

func TestRmCommand(t *testing.T) {
	out, err := execute(t, &fakeBoard{}, "rm", "1", "12")
	require.NoError(t, err)
	assert.NotContains(t, out, "send report")
	assert.Contains(t, out, "write report")
}

func TestProbeCommand(t *testing.T) {
	out, err := execute(t, &fakeBoard{reachable: true}, "probe")
	require.NoError(t, err)
	assert.Contains(t, out, "reachable")

	out, err = execute(t, &fakeBoard{}, "probe")
	require.NoError(t, err)
	assert.Contains(t, out, "unreachable")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, &fakeBoard{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "board version")
}
