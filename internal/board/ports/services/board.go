// Package services определяет интерфейсы операций доски задач
// для слоя представления.
package services

import (
	"context"

	"gotaskboard/internal/board/domain/entities"
)

// Board определяет типизированный фасад доступа к удаленному сервису.
// Валидация входных данных выполняется синхронно до любого сетевого вызова.
type Board interface {
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]entities.User, error)

	// GetUser возвращает пользователя по идентификатору.
	GetUser(ctx context.Context, userID int) (*entities.User, error)

	// ListTasks возвращает задачи пользователя.
	// Задачи с чужим владельцем отфильтровываются.
	ListTasks(ctx context.Context, userID int) ([]entities.Task, error)

	// CreateTask создает новую задачу с нормализованным заголовком.
	CreateTask(ctx context.Context, userID int, title string) (*entities.Task, error)

	// UpdateTask выполняет частичное обновление задачи.
	UpdateTask(ctx context.Context, taskID int, patch entities.TaskPatch) (*entities.Task, error)

	// DeleteTask удаляет задачу; возвращает признак успеха.
	DeleteTask(ctx context.Context, taskID int) (bool, error)

	// GetUserWithTasks параллельно получает пользователя и его задачи.
	// Сбой загрузки задач деградирует до пустого списка;
	// сбой загрузки пользователя фатален для композиции.
	GetUserWithTasks(ctx context.Context, userID int) (*entities.UserWithTasks, error)

	// ListUsersWithTasks получает всех пользователей и их задачи параллельно.
	// Сбой загрузки задач отдельного пользователя изолируется;
	// результат упорядочен по идентификатору пользователя.
	ListUsersWithTasks(ctx context.Context) ([]entities.UserWithTasks, error)

	// Probe проверяет доступность удаленного сервиса.
	// Все ошибки поглощаются и превращаются в false.
	Probe(ctx context.Context) bool
}
