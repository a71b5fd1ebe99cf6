package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/link-registry/internal/store"
	"go.uber.org/zap"
)

// RegisterVisit увеличивает счётчик посещений на 1 без редиректа.
// Инкремент использует ту же атомарную операцию хранилища, что и редирект.
func (u *LinkUsecase) RegisterVisit(ctx context.Context, code string) error {
	if _, err := u.repo.IncrementAccessCount(ctx, code); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrLinkNotFound, err)
		}

		u.logger.Error("failed to register visit",
			zap.String("code", code),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return nil
}
