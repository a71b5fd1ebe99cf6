package store

import (
	"context"
	"errors"

	"github.com/avc-dev/link-registry/internal/model"
)

var (
	ErrNotFound      = errors.New("link not found")
	ErrAlreadyExists = errors.New("code already exists")
)

// Store определяет контракт хранилища записей реестра.
// Инкремент счётчика посещений обязан выполняться атомарно на стороне
// хранилища, а не через чтение и запись в приложении.
type Store interface {
	// Create вставляет новую запись без предварительной проверки уникальности.
	// Конфликт по code сигнализируется через ErrAlreadyExists.
	Create(ctx context.Context, code, originalURL string) (model.Link, error)

	// GetByCode возвращает запись по коду, не меняя счётчик.
	GetByCode(ctx context.Context, code string) (model.Link, error)

	// IncrementAccessCount атомарно увеличивает счётчик на 1 и
	// возвращает обновлённую запись.
	IncrementAccessCount(ctx context.Context, code string) (model.Link, error)

	// List возвращает страницу записей, отсортированных по created_at DESC,
	// при равенстве — по id DESC.
	List(ctx context.Context, limit, offset int) ([]model.Link, error)

	// All возвращает все записи в том же порядке, что и List.
	All(ctx context.Context) ([]model.Link, error)

	// Delete удаляет запись по коду. Отсутствие записи — ErrNotFound.
	Delete(ctx context.Context, code string) error

	// Ping проверяет доступность хранилища.
	Ping(ctx context.Context) error
}
