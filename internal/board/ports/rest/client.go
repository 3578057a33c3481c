// Package rest определяет контракт устойчивого HTTP-клиента удаленного сервиса.
package rest

import "context"

// NoRetry отключает повторные попытки для отдельного запроса.
const NoRetry = -1

// RequestOptions описывает один логический HTTP-запрос.
type RequestOptions struct {
	// Method - HTTP метод запроса.
	Method string
	// URL - полный адрес запроса.
	URL string
	// Headers - дополнительные заголовки; перекрывают заголовки по умолчанию.
	Headers map[string]string
	// Body - тело запроса; сериализуется в JSON, nil означает запрос без тела.
	Body any
	// MaxRetries переопределяет количество повторов клиента:
	// 0 - использовать настройку клиента, NoRetry - без повторов.
	MaxRetries int
}

// Client определяет интерфейс устойчивого HTTP-клиента.
// Реализация обязана быть безопасной для конкурентного использования.
type Client interface {
	// Request выполняет один логический запрос с таймаутом на попытку
	// и ограниченными повторами; возвращает сырое тело ответа.
	Request(ctx context.Context, opts RequestOptions) ([]byte, error)
}
