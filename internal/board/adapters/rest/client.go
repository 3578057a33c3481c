// Package rest содержит реализацию устойчивого HTTP-клиента удаленного сервиса:
// таймаут на каждую попытку, ограниченные повторы временных сбоев и
// классификация ошибок транспортного уровня.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	restPort "gotaskboard/internal/board/ports/rest"
	"gotaskboard/internal/board/resilience"
	"gotaskboard/pkg/logger"
)

// Значения по умолчанию для клиента.
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultBackoff    = 1 * time.Second
)

// Заголовки запросов.
const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Константы для логирования.
const (
	LogRequest        = "issuing request"
	LogRequestDone    = "request completed"
	LogRequestFailed  = "request failed"
	LogUnexpectedCode = "unexpected response status"

	errCtxEncodingBody    = "encoding request body"
	errCtxBuildingRequest = "building request"
	errCtxRequestCanceled = "request canceled"
	errCtxReadingResponse = "reading response body"
)

// Options содержит настройки клиента. Нулевые поля заменяются значениями
// по умолчанию.
type Options struct {
	// Timeout - бюджет времени одной попытки.
	Timeout time.Duration
	// MaxRetries - количество дополнительных попыток для временных сбоев.
	MaxRetries int
	// Backoff - фиксированная пауза между попытками.
	Backoff time.Duration
}

// Client реализует интерфейс ports/rest.Client поверх net/http.
// Клиент не хранит состояние между вызовами и безопасен для
// конкурентного использования.
type Client struct {
	httpClient *http.Client
	opts       Options
}

// NewClient создает новый устойчивый HTTP-клиент.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.Backoff <= 0 {
		opts.Backoff = DefaultBackoff
	}
	return &Client{
		httpClient: &http.Client{},
		opts:       opts,
	}
}

// Request выполняет один логический запрос: ограниченный цикл попыток
// с фиксированной паузой, где повторяются только временные сбои.
// Ответ со статусом вне 2xx превращается в StatusError без повторов.
func (c *Client) Request(ctx context.Context, opts restPort.RequestOptions) ([]byte, error) {
	log := logger.Log(ctx).With(
		zap.String("http_method", opts.Method),
		zap.String("url", opts.URL))
	log.Debug(ctx, LogRequest)

	var payload []byte
	if opts.Body != nil {
		encoded, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxEncodingBody, err)
		}
		payload = encoded
	}

	maxRetries := c.opts.MaxRetries
	switch {
	case opts.MaxRetries == restPort.NoRetry:
		maxRetries = 0
	case opts.MaxRetries > 0:
		maxRetries = opts.MaxRetries
	}

	retry := resilience.NewRetry("rest-client", resilience.RetryConfig{
		MaxRetries:  maxRetries,
		Backoff:     c.opts.Backoff,
		ShouldRetry: restPort.IsTransient,
	})

	var body []byte
	err := retry.Execute(ctx, func() error {
		var attemptErr error
		body, attemptErr = c.attempt(ctx, opts.Method, opts.URL, opts.Headers, payload)
		return attemptErr
	})
	if err != nil {
		log.Warn(ctx, LogRequestFailed, zap.Error(err))
		return nil, err
	}

	log.Debug(ctx, LogRequestDone, zap.Int("bytes", len(body)))
	return body, nil
}

// attempt выполняет одну попытку запроса в рамках собственного таймаута.
func (c *Client) attempt(ctx context.Context, method, url string, headers map[string]string, payload []byte) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxBuildingRequest, err)
	}

	req.Header.Set(HeaderContentType, ContentTypeJSON)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.classify(ctx, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Log(ctx).Warn(ctx, LogUnexpectedCode,
			zap.Int("status", resp.StatusCode),
			zap.String("url", url))
		return nil, &restPort.StatusError{Status: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxReadingResponse, c.classify(ctx, err))
	}

	return body, nil
}

// classify относит транспортную ошибку к одному из видов:
// таймаут попытки, отмена вызывающим или сетевой сбой.
// Отмена внешнего контекста не считается временным сбоем и не повторяется.
func (c *Client) classify(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("%s: %w", errCtxRequestCanceled, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", restPort.ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", restPort.ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", restPort.ErrNetworkFailure, err)
}
