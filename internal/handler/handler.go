package handler

import (
	"context"

	"github.com/avc-dev/link-registry/internal/model"
	"github.com/avc-dev/link-registry/internal/usecase"
	"go.uber.org/zap"
)

// LinkUsecase определяет бизнес-логику, необходимую HTTP-слою
type LinkUsecase interface {
	CreateLink(ctx context.Context, in usecase.CreateLinkInput) (model.LinkView, error)
	GetLink(ctx context.Context, code string) (model.LinkView, error)
	ResolveRedirect(ctx context.Context, code string) (string, error)
	RegisterVisit(ctx context.Context, code string) error
	ListLinks(ctx context.Context, pageRaw, pageSizeRaw string) ([]model.LinkView, error)
	DeleteLink(ctx context.Context, code string) error
	ExportCSV(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
}

// Handler обрабатывает HTTP-запросы реестра ссылок
type Handler struct {
	usecase LinkUsecase
	logger  *zap.Logger
}

func New(usecase LinkUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}
