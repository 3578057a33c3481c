// Package session содержит локальный слой мутаций активного пользователя:
// коллекцию задач в памяти, согласованную с тем, что видит слой представления,
// и правило отличия сессионных задач от долговечных.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"gotaskboard/internal/board/domain/entities"
	servicesPort "gotaskboard/internal/board/ports/services"
	"gotaskboard/pkg/logger"
)

// Ошибки сессии.
var (
	// ErrNotOpened возвращается при операции над незагруженной сессией.
	ErrNotOpened = errors.New("session is not opened")
	// ErrTaskNotFound возвращается, когда задача отсутствует в коллекции сессии.
	ErrTaskNotFound = errors.New("task not found in session")
)

// Константы для логирования.
const (
	msgSessionOpened     = "session opened"
	msgLocalMutationOnly = "session-local task, skipping network call"
	msgTaskCreated       = "task added to session"
	msgTaskToggled       = "task completion toggled"
	msgTaskDeleted       = "task removed from session"
)

// Session владеет состоянием активного пользователя: самой записью
// пользователя и коллекцией его задач в памяти. Каждая мутация обновляет
// коллекцию под мьютексом, поэтому проход рендеринга всегда читает
// согласованное состояние.
type Session struct {
	mu sync.Mutex

	board            servicesPort.Board
	localIDThreshold int

	user  *entities.User
	tasks []entities.Task
}

// NewSession создает сессию поверх фасада доски.
// localIDThreshold - порог, начиная с которого идентификаторы считаются
// сессионными (бэкенд не хранит такие записи).
func NewSession(board servicesPort.Board, localIDThreshold int) *Session {
	return &Session{
		board:            board,
		localIDThreshold: localIDThreshold,
	}
}

// Open загружает пользователя и его задачи и делает их состоянием сессии.
// Сбой загрузки задач деградирует до пустого списка на уровне фасада.
func (s *Session) Open(ctx context.Context, userID int) error {
	composed, err := s.board.GetUserWithTasks(ctx, userID)
	if err != nil {
		return fmt.Errorf("opening session: %w", err)
	}

	s.mu.Lock()
	s.user = &composed.User
	s.tasks = composed.Tasks
	s.mu.Unlock()

	logger.Log(ctx).Info(ctx, msgSessionOpened,
		zap.Int("user_id", composed.User.ID),
		zap.Int("tasks", len(composed.Tasks)))
	return nil
}

// User возвращает пользователя сессии.
func (s *Session) User() (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return entities.User{}, ErrNotOpened
	}
	return *s.user, nil
}

// Tasks возвращает копию коллекции задач в порядке хранения.
func (s *Session) Tasks() []entities.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]entities.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// IsLocal сообщает, является ли идентификатор сессионным.
func (s *Session) IsLocal(taskID int) bool {
	return s.localIDThreshold > 0 && taskID >= s.localIDThreshold
}

// CreateTask создает задачу через фасад и добавляет ее в коллекцию сессии.
func (s *Session) CreateTask(ctx context.Context, title string) (*entities.Task, error) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return nil, ErrNotOpened
	}
	userID := s.user.ID
	s.mu.Unlock()

	task, err := s.board.CreateTask(ctx, userID, title)
	if err != nil {
		return nil, err
	}

	// Бэкенд может вернуть чужой владелец не по нашей вине; коллекция
	// сессии принадлежит одному пользователю, поэтому владелец фиксируется.
	task.UserID = userID

	s.mu.Lock()
	s.tasks = append(s.tasks, *task)
	s.mu.Unlock()

	logger.Log(ctx).Info(ctx, msgTaskCreated,
		zap.Int("task_id", task.ID),
		zap.Bool("session_local", s.IsLocal(task.ID)))
	return task, nil
}

// ToggleTask переключает флаг завершения задачи. Для сессионных задач
// мутация выполняется только в памяти; долговечные задачи проходят
// через фасад перед обновлением коллекции.
func (s *Session) ToggleTask(ctx context.Context, taskID int) (*entities.Task, error) {
	if err := entities.ValidateTaskID(taskID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(taskID)
	if idx < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %d", ErrTaskNotFound, taskID)
	}
	target := !s.tasks[idx].Completed
	s.mu.Unlock()

	log := logger.Log(ctx).With(zap.Int("task_id", taskID))

	if s.IsLocal(taskID) {
		log.Debug(ctx, msgLocalMutationOnly)
	} else {
		if _, err := s.board.UpdateTask(ctx, taskID, entities.TaskPatch{Completed: &target}); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Индекс перепроверяется: коллекция могла измениться за время сетевого вызова.
	idx = s.indexOf(taskID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %d", ErrTaskNotFound, taskID)
	}
	s.tasks[idx].Completed = target
	task := s.tasks[idx]

	log.Info(ctx, msgTaskToggled, zap.Bool("completed", target))
	return &task, nil
}

// DeleteTask удаляет задачу. Для сессионных задач удаление выполняется
// только в памяти; долговечные задачи удаляются через фасад.
func (s *Session) DeleteTask(ctx context.Context, taskID int) (bool, error) {
	if err := entities.ValidateTaskID(taskID); err != nil {
		return false, err
	}

	s.mu.Lock()
	if s.indexOf(taskID) < 0 {
		s.mu.Unlock()
		return false, fmt.Errorf("%w: %d", ErrTaskNotFound, taskID)
	}
	s.mu.Unlock()

	log := logger.Log(ctx).With(zap.Int("task_id", taskID))

	if s.IsLocal(taskID) {
		log.Debug(ctx, msgLocalMutationOnly)
	} else {
		deleted, err := s.board.DeleteTask(ctx, taskID)
		if err != nil {
			return false, err
		}
		if !deleted {
			return false, nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(taskID)
	if idx < 0 {
		return false, fmt.Errorf("%w: %d", ErrTaskNotFound, taskID)
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)

	log.Info(ctx, msgTaskDeleted)
	return true, nil
}

// indexOf ищет задачу в коллекции. Вызывается только под мьютексом.
func (s *Session) indexOf(taskID int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}
