package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Create(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	// Act
	link, err := ms.Create(ctx, "abc123", "https://example.com")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), link.ID)
	assert.Equal(t, "abc123", link.Code)
	assert.Equal(t, "https://example.com", link.OriginalURL)
	assert.Equal(t, int64(0), link.AccessCount)
	assert.WithinDuration(t, time.Now(), link.CreatedAt, time.Second)
}

func TestMemoryStore_Create_Conflict(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	_, err := ms.Create(ctx, "abc123", "https://example.com")
	require.NoError(t, err)

	// Повторная вставка того же кода должна вернуть конфликт
	_, err = ms.Create(ctx, "abc123", "https://other.com")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Проигравшая попытка не оставляет следов
	link, err := ms.GetByCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", link.OriginalURL)
}

func TestMemoryStore_GetByCode_NotFound(t *testing.T) {
	ms := NewMemoryStore()

	_, err := ms.GetByCode(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_IncrementAccessCount(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	_, err := ms.Create(ctx, "abc123", "https://example.com")
	require.NoError(t, err)

	link, err := ms.IncrementAccessCount(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), link.AccessCount)

	link, err = ms.IncrementAccessCount(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(2), link.AccessCount)

	_, err = ms.IncrementAccessCount(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_IncrementAccessCount_Concurrent(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	_, err := ms.Create(ctx, "abc123", "https://example.com")
	require.NoError(t, err)

	const goroutines = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, incErr := ms.IncrementAccessCount(ctx, "abc123")
			assert.NoError(t, incErr)
		}()
	}

	wg.Wait()

	// N конкурентных инкрементов дают ровно N, без потерянных обновлений
	link, err := ms.GetByCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(goroutines), link.AccessCount)
}

func TestMemoryStore_List_Pagination(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	for i := 0; i < 15; i++ {
		_, err := ms.Create(ctx, fmt.Sprintf("code%02d", i), fmt.Sprintf("https://example.com/%d", i))
		require.NoError(t, err)
	}

	// Первая страница: 10 самых свежих записей
	page, err := ms.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, page, 10)
	assert.Equal(t, "code14", page[0].Code)
	assert.Equal(t, "code05", page[9].Code)

	for i := 1; i < len(page); i++ {
		prev, curr := page[i-1], page[i]
		ordered := curr.CreatedAt.Before(prev.CreatedAt) ||
			(curr.CreatedAt.Equal(prev.CreatedAt) && curr.ID < prev.ID)
		assert.True(t, ordered, "records must be ordered newest first")
	}

	// Вторая страница: оставшиеся 5
	page, err = ms.List(ctx, 10, 10)
	require.NoError(t, err)
	require.Len(t, page, 5)
	assert.Equal(t, "code04", page[0].Code)

	// За пределами данных — пустая страница, не ошибка
	page, err = ms.List(ctx, 10, 20)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	_, err := ms.Create(ctx, "abc123", "https://example.com")
	require.NoError(t, err)

	require.NoError(t, ms.Delete(ctx, "abc123"))

	_, err = ms.GetByCode(ctx, "abc123")
	assert.ErrorIs(t, err, ErrNotFound)

	err = ms.Delete(ctx, "abc123")
	assert.True(t, errors.Is(err, ErrNotFound))
}
