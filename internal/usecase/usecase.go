package usecase

import (
	"context"

	"github.com/avc-dev/link-registry/internal/config"
	"github.com/avc-dev/link-registry/internal/model"
	"go.uber.org/zap"
)

// LinkRepository определяет интерфейс хранилища для бизнес-логики
type LinkRepository interface {
	CreateLink(ctx context.Context, code, originalURL string) (model.Link, error)
	GetLinkByCode(ctx context.Context, code string) (model.Link, error)
	IncrementAccessCount(ctx context.Context, code string) (model.Link, error)
	ListLinks(ctx context.Context, limit, offset int) ([]model.Link, error)
	AllLinks(ctx context.Context) ([]model.Link, error)
	DeleteLink(ctx context.Context, code string) error
	Ping(ctx context.Context) error
}

// CodeResolver определяет интерфейс выбора итогового кода
type CodeResolver interface {
	Resolve(code, customName string) string
}

// FileUploader определяет интерфейс загрузки файлов в объектное хранилище
type FileUploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
}

// LinkUsecase содержит бизнес-логику реестра ссылок
type LinkUsecase struct {
	repo     LinkRepository
	resolver CodeResolver
	uploader FileUploader
	cfg      *config.Config
	logger   *zap.Logger
}

// New создает новый экземпляр LinkUsecase
func New(repo LinkRepository, resolver CodeResolver, uploader FileUploader, cfg *config.Config, logger *zap.Logger) *LinkUsecase {
	return &LinkUsecase{
		repo:     repo,
		resolver: resolver,
		uploader: uploader,
		cfg:      cfg,
		logger:   logger,
	}
}

// Ping проверяет доступность хранилища
func (u *LinkUsecase) Ping(ctx context.Context) error {
	return u.repo.Ping(ctx)
}

func (u *LinkUsecase) toView(link model.Link) model.LinkView {
	return model.LinkView{
		Link:     link,
		ShortURL: u.cfg.BaseURL.JoinPath(link.Code),
	}
}
