package usecase

import (
	"errors"
	"strings"
)

var (
	ErrLinkNotFound       = errors.New("link not found")
	ErrCodeTaken          = errors.New("code already exists")
	ErrNothingToExport    = errors.New("no links to export")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// FieldError описывает ошибку валидации одного поля запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError агрегирует ошибки валидации входных данных.
// Такие ошибки никогда не повторяются и отдаются клиенту как 400.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		messages[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(messages, "; ")
}
