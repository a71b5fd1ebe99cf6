package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/link-registry/internal/store"
	"go.uber.org/zap"
)

// DeleteLink удаляет запись по коду. Удаление жёсткое, без tombstone.
func (u *LinkUsecase) DeleteLink(ctx context.Context, code string) error {
	if err := u.repo.DeleteLink(ctx, code); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrLinkNotFound, err)
		}

		u.logger.Error("failed to delete link",
			zap.String("code", code),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return nil
}
