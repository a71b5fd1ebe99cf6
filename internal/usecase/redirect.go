package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/link-registry/internal/store"
	"go.uber.org/zap"
)

// ResolveRedirect возвращает оригинальный URL для редиректа,
// атомарно увеличивая счётчик посещений в той же операции хранилища.
func (u *LinkUsecase) ResolveRedirect(ctx context.Context, code string) (string, error) {
	link, err := u.repo.IncrementAccessCount(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", fmt.Errorf("%w: %w", ErrLinkNotFound, err)
		}

		u.logger.Error("failed to resolve redirect",
			zap.String("code", code),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return link.OriginalURL, nil
}
