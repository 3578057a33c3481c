package entities

import (
	"fmt"
	"strings"
)

// MinTitleLength - минимальная длина заголовка задачи после обрезки пробелов.
const MinTitleLength = 3

// Task представляет задачу пользователя.
type Task struct {
	ID        int
	UserID    int
	Title     string
	Completed bool
}

// TaskPatch описывает частичное обновление задачи.
// Nil-поле означает, что значение не меняется.
type TaskPatch struct {
	Title     *string
	Completed *bool
}

// ValidateTaskID проверяет, что идентификатор задачи положителен.
func ValidateTaskID(taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	return nil
}

// ValidateTitle обрезает пробелы и проверяет минимальную длину заголовка.
// Возвращает нормализованный заголовок.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if len(trimmed) < MinTitleLength {
		return "", ErrTitleTooShort
	}
	return trimmed, nil
}

// Проволочное представление задачи.
type taskWire struct {
	ID        *int    `json:"id"`
	UserID    *int    `json:"userId"`
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// DecodeTask разбирает одиночную запись задачи.
func DecodeTask(data []byte) (*Task, error) {
	var wire taskWire
	if err := decodeStrict(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return wire.toEntity()
}

// DecodeTasks разбирает коллекцию задач.
func DecodeTasks(data []byte) ([]Task, error) {
	var wires []taskWire
	if err := decodeStrict(data, &wires); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	tasks := make([]Task, 0, len(wires))
	for _, wire := range wires {
		task, err := wire.toEntity()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

// toEntity проверяет обязательные поля и собирает доменную сущность.
func (w *taskWire) toEntity() (*Task, error) {
	switch {
	case w.ID == nil || *w.ID <= 0:
		return nil, fmt.Errorf("%w: task record has no valid id", ErrMalformedResponse)
	case w.UserID == nil || *w.UserID <= 0:
		return nil, fmt.Errorf("%w: task record has no valid owner id", ErrMalformedResponse)
	case w.Title == nil:
		return nil, fmt.Errorf("%w: task record has no title", ErrMalformedResponse)
	case w.Completed == nil:
		return nil, fmt.Errorf("%w: task record has no completion flag", ErrMalformedResponse)
	}

	return &Task{
		ID:        *w.ID,
		UserID:    *w.UserID,
		Title:     *w.Title,
		Completed: *w.Completed,
	}, nil
}
