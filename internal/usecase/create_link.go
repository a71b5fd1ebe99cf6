package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc-dev/link-registry/internal/model"
	"github.com/avc-dev/link-registry/internal/store"
	"go.uber.org/zap"
)

// CreateLinkInput содержит входные данные операции создания ссылки
type CreateLinkInput struct {
	OriginalURL string
	Code        string
	CustomName  string
}

// CreateLink создает новую запись реестра.
// Код выбирается резолвером, вставка выполняется оптимистично:
// конфликт по unique constraint отдаётся как ErrCodeTaken без повторных
// попыток, в том числе для сгенерированных кодов.
func (u *LinkUsecase) CreateLink(ctx context.Context, in CreateLinkInput) (model.LinkView, error) {
	in.OriginalURL = strings.TrimSpace(in.OriginalURL)

	code := u.resolver.Resolve(in.Code, in.CustomName)

	codeField := "code"
	if in.CustomName != "" {
		codeField = "custom_name"
	}

	if verr := validateCreateLink(in.OriginalURL, code, codeField); verr != nil {
		return model.LinkView{}, verr
	}

	link, err := u.repo.CreateLink(ctx, code, in.OriginalURL)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return model.LinkView{}, fmt.Errorf("%w: %w", ErrCodeTaken, err)
		}

		u.logger.Error("failed to create link",
			zap.String("code", code),
			zap.Error(err),
		)
		return model.LinkView{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return u.toView(link), nil
}
