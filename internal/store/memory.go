package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/avc-dev/link-registry/internal/model"
)

// MemoryStore хранит записи в памяти. Используется при пустом DATABASE_DSN
// и в тестах. Семантика повторяет DatabaseStore: уникальность code,
// сортировка created_at DESC / id DESC, атомарный инкремент под мьютексом.
type MemoryStore struct {
	mutex  sync.Mutex
	links  map[string]model.Link
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links:  make(map[string]model.Link),
		nextID: 1,
	}
}

func (ms *MemoryStore) Create(_ context.Context, code, originalURL string) (model.Link, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	if _, exists := ms.links[code]; exists {
		return model.Link{}, fmt.Errorf("code %s: %w", code, ErrAlreadyExists)
	}

	link := model.Link{
		ID:          ms.nextID,
		Code:        code,
		OriginalURL: originalURL,
		CreatedAt:   time.Now(),
	}
	ms.nextID++
	ms.links[code] = link

	return link, nil
}

func (ms *MemoryStore) GetByCode(_ context.Context, code string) (model.Link, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	link, ok := ms.links[code]
	if !ok {
		return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return link, nil
}

func (ms *MemoryStore) IncrementAccessCount(_ context.Context, code string) (model.Link, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	link, ok := ms.links[code]
	if !ok {
		return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	link.AccessCount++
	ms.links[code] = link

	return link, nil
}

func (ms *MemoryStore) List(ctx context.Context, limit, offset int) ([]model.Link, error) {
	all, err := ms.All(ctx)
	if err != nil {
		return nil, err
	}

	if offset >= len(all) {
		return []model.Link{}, nil
	}

	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	return all[offset:end], nil
}

func (ms *MemoryStore) All(_ context.Context) ([]model.Link, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	links := make([]model.Link, 0, len(ms.links))
	for _, link := range ms.links {
		links = append(links, link)
	}

	sort.Slice(links, func(i, j int) bool {
		if links[i].CreatedAt.Equal(links[j].CreatedAt) {
			return links[i].ID > links[j].ID
		}
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})

	return links, nil
}

func (ms *MemoryStore) Delete(_ context.Context, code string) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	if _, ok := ms.links[code]; !ok {
		return fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	delete(ms.links, code)

	return nil
}

func (ms *MemoryStore) Ping(_ context.Context) error {
	return nil
}
