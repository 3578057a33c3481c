package entities

import (
	"errors"
	"fmt"
)

// Ошибки валидации входных данных. Все они оборачивают ErrInvalidInput,
// поэтому вызывающий код может проверять семейство через errors.Is.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidUserID = fmt.Errorf("%w: user ID must be a positive integer", ErrInvalidInput)
	ErrInvalidTaskID = fmt.Errorf("%w: task ID must be a positive integer", ErrInvalidInput)
	ErrTitleTooShort = fmt.Errorf("%w: task title must contain at least %d characters", ErrInvalidInput, MinTitleLength)
)

// ErrMalformedResponse возвращается, когда ответ удаленного сервиса
// не удалось разобрать в доменную сущность.
var ErrMalformedResponse = errors.New("malformed response")
