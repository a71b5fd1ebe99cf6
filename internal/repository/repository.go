package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/link-registry/internal/model"
	"github.com/avc-dev/link-registry/internal/store"
)

// Repository оборачивает хранилище, добавляя контекст к ошибкам.
// Сентинельные ошибки store проходят сквозь обёртку через errors.Is.
type Repository struct {
	underlying store.Store
}

func New(underlying store.Store) *Repository {
	return &Repository{underlying}
}

func (r *Repository) CreateLink(ctx context.Context, code, originalURL string) (model.Link, error) {
	link, err := r.underlying.Create(ctx, code, originalURL)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to create link: %w", err)
	}
	return link, nil
}

func (r *Repository) GetLinkByCode(ctx context.Context, code string) (model.Link, error) {
	link, err := r.underlying.GetByCode(ctx, code)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to get link: %w", err)
	}
	return link, nil
}

func (r *Repository) IncrementAccessCount(ctx context.Context, code string) (model.Link, error) {
	link, err := r.underlying.IncrementAccessCount(ctx, code)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to increment access count: %w", err)
	}
	return link, nil
}

func (r *Repository) ListLinks(ctx context.Context, limit, offset int) ([]model.Link, error) {
	links, err := r.underlying.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

func (r *Repository) AllLinks(ctx context.Context) ([]model.Link, error) {
	links, err := r.underlying.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read all links: %w", err)
	}
	return links, nil
}

func (r *Repository) DeleteLink(ctx context.Context, code string) error {
	if err := r.underlying.Delete(ctx, code); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.underlying.Ping(ctx)
}
