package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/link-registry/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DatabaseStore реализует Store поверх PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(pool *pgxpool.Pool) *DatabaseStore {
	return &DatabaseStore{pool: pool}
}

const linkColumns = "id, code, original_url, created_at, access_count"

func scanLink(row pgx.Row) (model.Link, error) {
	var link model.Link
	err := row.Scan(&link.ID, &link.Code, &link.OriginalURL, &link.CreatedAt, &link.AccessCount)
	return link, err
}

// Create вставляет запись, полагаясь на unique constraint по code.
// Нарушение уникальности транслируется в ErrAlreadyExists.
func (ds *DatabaseStore) Create(ctx context.Context, code, originalURL string) (model.Link, error) {
	query := `
		INSERT INTO links (code, original_url)
		VALUES ($1, $2)
		RETURNING ` + linkColumns

	link, err := scanLink(ds.pool.QueryRow(ctx, query, code, originalURL))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Link{}, fmt.Errorf("code %s: %w", code, ErrAlreadyExists)
		}
		return model.Link{}, fmt.Errorf("failed to insert link: %w", err)
	}

	return link, nil
}

// GetByCode читает запись по коду без изменения счётчика
func (ds *DatabaseStore) GetByCode(ctx context.Context, code string) (model.Link, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM links
		WHERE code = $1`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to read link: %w", err)
	}

	return link, nil
}

// IncrementAccessCount выполняет инкремент выражением на стороне БД,
// что исключает потерю обновлений при конкурентных запросах
func (ds *DatabaseStore) IncrementAccessCount(ctx context.Context, code string) (model.Link, error) {
	query := `
		UPDATE links
		SET access_count = access_count + 1
		WHERE code = $1
		RETURNING ` + linkColumns

	link, err := scanLink(ds.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to increment access count: %w", err)
	}

	return link, nil
}

// List возвращает страницу записей, свежие created_at первыми
func (ds *DatabaseStore) List(ctx context.Context, limit, offset int) ([]model.Link, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM links
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := ds.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	return collectLinks(rows)
}

// All возвращает полный снимок реестра для экспорта
func (ds *DatabaseStore) All(ctx context.Context) ([]model.Link, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM links
		ORDER BY created_at DESC, id DESC`

	rows, err := ds.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}
	defer rows.Close()

	return collectLinks(rows)
}

func collectLinks(rows pgx.Rows) ([]model.Link, error) {
	links := make([]model.Link, 0)

	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate links: %w", err)
	}

	return links, nil
}

// Delete удаляет запись по коду
func (ds *DatabaseStore) Delete(ctx context.Context, code string) error {
	tag, err := ds.pool.Exec(ctx, `DELETE FROM links WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return nil
}

// Ping проверяет подключение к базе данных
func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.pool.Ping(ctx)
}
