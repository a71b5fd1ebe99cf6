package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/link-registry/internal/model"
	"go.uber.org/zap"
)

// ListLinks возвращает страницу записей, свежие created_at первыми.
// Параметры принимаются сырыми строками из query и приводятся к числам здесь.
func (u *LinkUsecase) ListLinks(ctx context.Context, pageRaw, pageSizeRaw string) ([]model.LinkView, error) {
	page, pageSize, verr := parseListParams(pageRaw, pageSizeRaw)
	if verr != nil {
		return nil, verr
	}

	offset := (page - 1) * pageSize

	links, err := u.repo.ListLinks(ctx, pageSize, offset)
	if err != nil {
		u.logger.Error("failed to list links",
			zap.Int("page", page),
			zap.Int("pageSize", pageSize),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	views := make([]model.LinkView, len(links))
	for i, link := range links {
		views[i] = u.toView(link)
	}

	return views, nil
}
