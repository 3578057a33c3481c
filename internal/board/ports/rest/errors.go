package rest

import (
	"errors"
	"fmt"
)

// Транспортные ошибки клиента.
var (
	// ErrTimeout возвращается, когда отдельная попытка превысила свой таймаут.
	ErrTimeout = errors.New("request attempt timed out")
	// ErrNetworkFailure возвращается при ошибке транспортного уровня.
	ErrNetworkFailure = errors.New("network failure")
)

// StatusError представляет ответ удаленного сервиса со статусом вне 2xx.
// Такие ответы не повторяются.
type StatusError struct {
	Status int
	URL    string
}

// Error реализует интерфейс error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected http status %d from %s", e.Status, e.URL)
}

// IsTransient сообщает, относится ли ошибка к временным сбоям,
// которые имеет смысл повторять.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrNetworkFailure)
}
