package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/link-registry/internal/model"
	"github.com/avc-dev/link-registry/internal/store"
	"go.uber.org/zap"
)

// GetLink возвращает запись по коду вместе с коротким URL.
// Счётчик посещений не меняется.
func (u *LinkUsecase) GetLink(ctx context.Context, code string) (model.LinkView, error) {
	link, err := u.repo.GetLinkByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.LinkView{}, fmt.Errorf("%w: %w", ErrLinkNotFound, err)
		}

		u.logger.Error("failed to get link",
			zap.String("code", code),
			zap.Error(err),
		)
		return model.LinkView{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return u.toView(link), nil
}
