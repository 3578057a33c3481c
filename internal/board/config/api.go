package config

import (
	"fmt"
	"time"
)

// APIConfig представляет конфигурацию доступа к удаленному REST-сервису.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url" env:"BOARD_API_BASE_URL" env-default:"https://jsonplaceholder.typicode.com"`
	Timeout    time.Duration `yaml:"timeout" env:"BOARD_API_TIMEOUT" env-default:"10s"`
	MaxRetries int           `yaml:"max_retries" env:"BOARD_API_MAX_RETRIES" env-default:"3"`
	Backoff    time.Duration `yaml:"backoff" env:"BOARD_API_BACKOFF" env-default:"1s"`
}

// UsersURL возвращает адрес коллекции пользователей.
func (c *APIConfig) UsersURL() string {
	return c.BaseURL + "/users"
}

// UserURL возвращает адрес одиночной записи пользователя.
func (c *APIConfig) UserURL(userID int) string {
	return fmt.Sprintf("%s/users/%d", c.BaseURL, userID)
}

// UserTasksURL возвращает адрес коллекции задач пользователя.
func (c *APIConfig) UserTasksURL(userID int) string {
	return fmt.Sprintf("%s/todos?userId=%d", c.BaseURL, userID)
}

// TasksURL возвращает адрес коллекции задач.
func (c *APIConfig) TasksURL() string {
	return c.BaseURL + "/todos"
}

// TaskURL возвращает адрес одиночной записи задачи.
func (c *APIConfig) TaskURL(taskID int) string {
	return fmt.Sprintf("%s/todos/%d", c.BaseURL, taskID)
}

// ProbeURL возвращает заведомо существующий адрес для проверки доступности.
func (c *APIConfig) ProbeURL() string {
	return c.BaseURL + "/users/1"
}
