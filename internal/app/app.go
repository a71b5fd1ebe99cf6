package app

import (
	"github.com/avc-dev/link-registry/internal/config"
	"github.com/avc-dev/link-registry/internal/config/db"
	"github.com/avc-dev/link-registry/internal/handler"
	"go.uber.org/zap"
)

// App представляет сервис реестра ссылок
type App struct {
	config   *config.Config
	logger   *zap.Logger
	handler  *handler.Handler
	database *db.Database
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	h, database, err := initDependencies(cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config:   cfg,
		logger:   logger,
		handler:  h,
		database: database,
	}, nil
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.database != nil {
		a.database.Close()
	}
	a.logger.Sync()
}

// Run запускает приложение
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.Close()

	return app.start()
}
