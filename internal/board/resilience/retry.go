// Package resilience содержит механизм ограниченных повторных попыток
// для вызовов удаленного сервиса.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gotaskboard/pkg/logger"
)

// RetryConfig содержит настройки для retry механизма.
type RetryConfig struct {
	// MaxRetries - количество дополнительных попыток после первой.
	MaxRetries int
	// Backoff - фиксированная задержка между попытками.
	Backoff time.Duration
	// ShouldRetry - функция для определения, нужно ли повторять запрос для данной ошибки.
	ShouldRetry func(error) bool
}

// Значения по умолчанию для retry механизма.
const (
	DefaultMaxRetries = 3
	DefaultBackoff    = 1 * time.Second
)

// DefaultRetryConfig возвращает конфигурацию retry механизма по умолчанию.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:  DefaultMaxRetries,
		Backoff:     DefaultBackoff,
		ShouldRetry: defaultShouldRetry,
	}
}

// Ошибки retry механизма.
var (
	// ErrContextCanceled возвращается, когда контекст был отменен во время ожидания перед повторной попыткой.
	ErrContextCanceled = errors.New("context was canceled during retry")
	// ErrRetriesExhausted возвращается, когда все попытки исчерпаны.
	// Оборачивает последнюю ошибку.
	ErrRetriesExhausted = errors.New("all retry attempts exhausted")
)

// defaultShouldRetry определяет, следует ли повторять запрос по умолчанию.
func defaultShouldRetry(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Константы для логирования.
const (
	LogRetryAttempt     = "retry attempt"
	LogRetrySuccess     = "retry succeeded"
	LogRetryMaxAttempts = "retry max attempts reached"
)

// Retry выполняет функцию с повторными попытками.
type Retry struct {
	name   string
	config RetryConfig
}

// NewRetry создает новый экземпляр retry механизма.
func NewRetry(name string, config RetryConfig) *Retry {
	if config.ShouldRetry == nil {
		config.ShouldRetry = defaultShouldRetry
	}
	return &Retry{
		name:   name,
		config: config,
	}
}

// Execute выполняет операцию с автоматическими повторными попытками.
// Повторяются только ошибки, для которых ShouldRetry возвращает true;
// между попытками выдерживается фиксированная пауза Backoff.
// После исчерпания попыток последняя ошибка оборачивается в ErrRetriesExhausted.
func (r *Retry) Execute(ctx context.Context, operation func() error) error {
	log := logger.Log(ctx).With(zap.String("retry", r.name))

	maxAttempts := r.config.MaxRetries + 1
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = operation()

		if err == nil || !r.config.ShouldRetry(err) {
			if err == nil && attempt > 1 {
				log.Info(ctx, LogRetrySuccess, zap.Int("attempts", attempt))
			}
			return err
		}

		if attempt == maxAttempts {
			break
		}

		log.Info(ctx, LogRetryAttempt,
			zap.Int("attempt", attempt),
			zap.Duration("backoff", r.config.Backoff),
			zap.Error(err))

		select {
		case <-time.After(r.config.Backoff):
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrContextCanceled, ctx.Err())
		}
	}

	log.Warn(ctx, LogRetryMaxAttempts,
		zap.Int("attempts", maxAttempts),
		zap.Error(err))

	return fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
}
