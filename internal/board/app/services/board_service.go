// Package services содержит фасад доступа к удаленному сервису:
// типизированные операции, валидацию входных данных и сборку
// ответов в доменные сущности.
package services

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"go.uber.org/zap"

	"gotaskboard/internal/board/config"
	"gotaskboard/internal/board/domain/entities"
	restPort "gotaskboard/internal/board/ports/rest"
	servicesPort "gotaskboard/internal/board/ports/services"
	"gotaskboard/pkg/logger"
)

// Константы для логирования.
const (
	methodListUsers          = "ListUsers"
	methodGetUser            = "GetUser"
	methodListTasks          = "ListTasks"
	methodCreateTask         = "CreateTask"
	methodUpdateTask         = "UpdateTask"
	methodDeleteTask         = "DeleteTask"
	methodGetUserWithTasks   = "GetUserWithTasks"
	methodListUsersWithTasks = "ListUsersWithTasks"
	methodProbe              = "Probe"

	msgInvalidInput       = "input validation failed"
	msgRequestFailed      = "remote request failed"
	msgDecodeFailed       = "failed to decode response"
	msgForeignTaskSkipped = "task with foreign owner filtered out"
	msgTasksDegraded      = "task fetch failed, degrading to empty list"
	msgProbeFailed        = "connectivity probe failed"
)

// createTaskPayload - нормализованное тело запроса на создание задачи.
type createTaskPayload struct {
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// updateTaskPayload - тело запроса частичного обновления задачи.
type updateTaskPayload struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// BoardServiceImpl реализует интерфейс ports/services.Board.
type BoardServiceImpl struct {
	client restPort.Client
	cfg    *config.APIConfig
}

// NewBoardService создает новый фасад доступа к удаленному сервису.
func NewBoardService(client restPort.Client, cfg *config.APIConfig) servicesPort.Board {
	return &BoardServiceImpl{
		client: client,
		cfg:    cfg,
	}
}

// ListUsers возвращает всех пользователей.
func (s *BoardServiceImpl) ListUsers(ctx context.Context) ([]entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListUsers))

	body, err := s.client.Request(ctx, restPort.RequestOptions{
		Method: http.MethodGet,
		URL:    s.cfg.UsersURL(),
	})
	if err != nil {
		log.Error(ctx, msgRequestFailed, zap.Error(err))
		return nil, err
	}

	users, err := entities.DecodeUsers(body)
	if err != nil {
		log.Error(ctx, msgDecodeFailed, zap.Error(err))
		return nil, err
	}

	return users, nil
}

// GetUser возвращает пользователя по идентификатору.
func (s *BoardServiceImpl) GetUser(ctx context.Context, userID int) (*entities.User, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetUser),
		zap.Int("user_id", userID))

	if err := entities.ValidateUserID(userID); err != nil {
		log.Debug(ctx, msgInvalidInput, zap.Error(err))
		return nil, err
	}

	body, err := s.client.Request(ctx, restPort.RequestOptions{
		Method: http.MethodGet,
		URL:    s.cfg.UserURL(userID),
	})
	if err != nil {
		log.Error(ctx, msgRequestFailed, zap.Error(err))
		return nil, err
	}

	user, err := entities.DecodeUser(body)
	if err != nil {
		log.Error(ctx, msgDecodeFailed, zap.Error(err))
		return nil, err
	}

	return user, nil
}

// ListTasks возвращает задачи пользователя.
// Записи, чей владелец не совпадает с запрошенным пользователем,
// отфильтровываются, а не приписываются ему.
func (s *BoardServiceImpl) ListTasks(ctx context.Context, userID int) ([]entities.Task, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodListTasks),
		zap.Int("user_id", userID))

	if err := entities.ValidateUserID(userID); err != nil {
		log.Debug(ctx, msgInvalidInput, zap.Error(err))
		return nil, err
	}

	body, err := s.client.Request(ctx, restPort.RequestOptions{
		Method: http.MethodGet,
		URL:    s.cfg.UserTasksURL(userID),
	})
	if err != nil {
		log.Error(ctx, msgRequestFailed, zap.Error(err))
		return nil, err
	}

	decoded, err := entities.DecodeTasks(body)
	if err != nil {
		log.Error(ctx, msgDecodeFailed, zap.Error(err))
		return nil, err
	}

	tasks := make([]entities.Task, 0, len(decoded))
	for _, task := range decoded {
		if task.UserID != userID {
			log.Warn(ctx, msgForeignTaskSkipped,
				zap.Int("task_id", task.ID),
				zap.Int("owner_id", task.UserID))
			continue
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// CreateTask создает новую задачу. Заголовок обрезается до отправки,
// флаг завершения нормализуется в false.
func (s *BoardServiceImpl) CreateTask(ctx context.Context, userID int, title string) (*entities.Task, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodCreateTask),
		zap.Int("user_id", userID))

	if err := entities.ValidateUserID(userID); err != nil {
		log.Debug(ctx, msgInvalidInput, zap.Error(err))
		return nil, err
	}
	trimmed, err := entities.ValidateTitle(title)
	if err != nil {
		log.Debug(ctx, msgInvalidInput, zap.Error(err))
		return nil, err
	}

	body, err := s.client.Request(ctx, restPort.RequestOptions{
		Method: http.MethodPost,
		URL:    s.cfg.TasksURL(),
		Body: createTaskPayload{
			UserID:    userID,
			Title:     trimmed,
			Completed: false,
		},
	})
	if err != nil {
		log.Error(ctx, msgRequestFailed, zap.Error(err))
		return nil, err
	}

	task, err := entities.DecodeTask(body)
	if err != nil {
		log.Error(ctx, msgDecodeFailed, zap.Error(err))
		return nil, err
	}

	return task, nil
}

// UpdateTask выполняет частичное обновление задачи.
func (s *BoardServiceImpl) UpdateTask(ctx context.Context, taskID int, patch entities.TaskPatch) (*entities.Task, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodUpdateTask),
		zap.Int("task_id", taskID))

	if err := entities.ValidateTaskID(taskID); err != nil {
		log.Debug(ctx, msgInvalidInput, zap.Error(err))
		return nil, err
	}

	body, err := s.client.Request(ctx, restPort.RequestOptions{
		Method: http.MethodPut,
		URL:    s.cfg.TaskURL(taskID),
		Body: updateTaskPayload{
			Title:     patch.Title,
			Completed: patch.Completed,
		},
	})
	if err != nil {
		log.Error(ctx, msgRequestFailed, zap.Error(err))
		return nil, err
	}

	task, err := entities.DecodeTask(body)
	if err != nil {
		log.Error(ctx, msgDecodeFailed, zap.Error(err))
		return nil, err
	}

	return task, nil
}

// DeleteTask удаляет задачу; возвращает признак успеха.
func (s *BoardServiceImpl) DeleteTask(ctx context.Context, taskID int) (bool, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodDeleteTask),
		zap.Int("task_id", taskID))

	if err := entities.ValidateTaskID(taskID); err != nil {
		log.Debug(ctx, msgInvalidInput, zap.Error(err))
		return false, err
	}

	_, err := s.client.Request(ctx, restPort.RequestOptions{
		Method: http.MethodDelete,
		URL:    s.cfg.TaskURL(taskID),
	})
	if err != nil {
		log.Error(ctx, msgRequestFailed, zap.Error(err))
		return false, err
	}

	return true, nil
}

// GetUserWithTasks параллельно получает пользователя и его задачи
// и объединяет их. Сбой загрузки задач деградирует до пустого списка,
// сбой загрузки пользователя фатален.
func (s *BoardServiceImpl) GetUserWithTasks(ctx context.Context, userID int) (*entities.UserWithTasks, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetUserWithTasks),
		zap.Int("user_id", userID))

	if err := entities.ValidateUserID(userID); err != nil {
		log.Debug(ctx, msgInvalidInput, zap.Error(err))
		return nil, err
	}

	type userResult struct {
		user *entities.User
		err  error
	}
	type tasksResult struct {
		tasks []entities.Task
		err   error
	}

	userCh := make(chan userResult, 1)
	tasksCh := make(chan tasksResult, 1)

	go func() {
		user, err := s.GetUser(ctx, userID)
		userCh <- userResult{user: user, err: err}
	}()
	go func() {
		tasks, err := s.ListTasks(ctx, userID)
		tasksCh <- tasksResult{tasks: tasks, err: err}
	}()

	fetchedUser := <-userCh
	fetchedTasks := <-tasksCh

	if fetchedUser.err != nil {
		return nil, fetchedUser.err
	}

	tasks := fetchedTasks.tasks
	if fetchedTasks.err != nil {
		log.Warn(ctx, msgTasksDegraded, zap.Error(fetchedTasks.err))
		tasks = make([]entities.Task, 0)
	}

	return &entities.UserWithTasks{
		User:  *fetchedUser.user,
		Tasks: tasks,
	}, nil
}

// ListUsersWithTasks получает всех пользователей, затем их задачи параллельно.
// Сбой загрузки задач отдельного пользователя изолируется: такой пользователь
// получает пустой список. Результат собирается по идентификатору владельца
// и упорядочивается по нему, а не по порядку завершения запросов.
func (s *BoardServiceImpl) ListUsersWithTasks(ctx context.Context) ([]entities.UserWithTasks, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListUsersWithTasks))

	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	composed := make([]entities.UserWithTasks, len(users))

	var wgp sync.WaitGroup
	for i, user := range users {
		wgp.Add(1)
		go func(idx int, user entities.User) {
			defer wgp.Done()

			tasks, err := s.ListTasks(ctx, user.ID)
			if err != nil {
				log.Warn(ctx, msgTasksDegraded,
					zap.Int("user_id", user.ID),
					zap.Error(err))
				tasks = make([]entities.Task, 0)
			}

			composed[idx] = entities.UserWithTasks{
				User:  user,
				Tasks: tasks,
			}
		}(i, user)
	}
	wgp.Wait()

	sort.Slice(composed, func(i, j int) bool {
		return composed[i].User.ID < composed[j].User.ID
	})

	return composed, nil
}

// Probe проверяет доступность удаленного сервиса одиночным запросом
// без повторов. Все ошибки поглощаются и превращаются в false.
func (s *BoardServiceImpl) Probe(ctx context.Context) bool {
	log := logger.Log(ctx).With(zap.String("method", methodProbe))

	body, err := s.client.Request(ctx, restPort.RequestOptions{
		Method:     http.MethodGet,
		URL:        s.cfg.ProbeURL(),
		MaxRetries: restPort.NoRetry,
	})
	if err != nil {
		log.Warn(ctx, msgProbeFailed, zap.Error(err))
		return false
	}

	return len(body) > 0
}
