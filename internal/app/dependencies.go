package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/link-registry/internal/config"
	"github.com/avc-dev/link-registry/internal/config/db"
	"github.com/avc-dev/link-registry/internal/handler"
	"github.com/avc-dev/link-registry/internal/migrations"
	"github.com/avc-dev/link-registry/internal/objstore"
	"github.com/avc-dev/link-registry/internal/repository"
	"github.com/avc-dev/link-registry/internal/service"
	"github.com/avc-dev/link-registry/internal/store"
	"github.com/avc-dev/link-registry/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) (*handler.Handler, *db.Database, error) {
	storage, database, err := initStorage(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	uploader, err := initUploader(cfg, logger)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}

	repo := repository.New(storage)
	resolver := service.NewCodeResolver(cfg.BaseURL.String())
	uc := usecase.New(repo, resolver, uploader, cfg, logger)
	h := handler.New(uc, logger)

	return h, database, nil
}

// initStorage создает хранилище на основе конфигурации
func initStorage(cfg *config.Config, logger *zap.Logger) (store.Store, *db.Database, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("Using in-memory storage")
		return store.NewMemoryStore(), nil, nil
	}

	ctx := context.Background()

	database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrations.NewMigrator(database.SQLDB, logger).RunUp(); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Using database storage")
	return store.NewDatabaseStore(database.Pool), database, nil
}

// initUploader создает клиент объектного хранилища для экспорта CSV.
// Без настроенного endpoint экспорт будет отвечать ошибкой сервиса.
func initUploader(cfg *config.Config, logger *zap.Logger) (usecase.FileUploader, error) {
	if cfg.StorageEndpoint == "" {
		logger.Warn("Object storage is not configured, CSV export is disabled")
		return nil, nil
	}

	client, err := objstore.New(context.Background(), objstore.Config{
		Endpoint:  cfg.StorageEndpoint,
		AccessKey: cfg.StorageAccessKey,
		SecretKey: cfg.StorageSecretKey,
		Bucket:    cfg.StorageBucket,
		UseSSL:    cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Using object storage",
		zap.String("endpoint", cfg.StorageEndpoint),
		zap.String("bucket", cfg.StorageBucket),
	)

	return client, nil
}
