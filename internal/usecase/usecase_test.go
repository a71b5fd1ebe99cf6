package usecase

import (
	"context"

	"github.com/avc-dev/link-registry/internal/config"
	"github.com/avc-dev/link-registry/internal/repository"
	"github.com/avc-dev/link-registry/internal/service"
	"github.com/avc-dev/link-registry/internal/store"
	"go.uber.org/zap"
)

// fakeUploader записывает загрузки в память
type fakeUploader struct {
	keys         []string
	bodies       [][]byte
	contentTypes []string
	err          error
}

func (f *fakeUploader) Upload(_ context.Context, key string, body []byte, contentType string) error {
	if f.err != nil {
		return f.err
	}

	f.keys = append(f.keys, key)
	f.bodies = append(f.bodies, body)
	f.contentTypes = append(f.contentTypes, contentType)

	return nil
}

// newTestUsecase собирает usecase поверх in-memory хранилища
func newTestUsecase(uploader FileUploader) (*LinkUsecase, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	cfg := config.NewDefaultConfig()

	uc := New(
		repository.New(ms),
		service.NewCodeResolver(cfg.BaseURL.String()),
		uploader,
		cfg,
		zap.NewNop(),
	)

	return uc, ms
}
