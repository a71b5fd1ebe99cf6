package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config содержит все настройки сервиса.
// Значения берутся из флагов командной строки, переменные окружения
// имеют приоритет над флагами.
type Config struct {
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL       URLPrefix      `env:"BASE_URL"`
	DatabaseDSN   string         `env:"DATABASE_DSN"`

	// Настройки объектного хранилища для экспорта CSV
	StorageEndpoint  string `env:"STORAGE_ENDPOINT"`
	StorageAccessKey string `env:"STORAGE_ACCESS_KEY"`
	StorageSecretKey string `env:"STORAGE_SECRET_KEY"`
	StorageBucket    string `env:"STORAGE_BUCKET" envDefault:"link-exports"`
	StorageUseSSL    bool   `env:"STORAGE_USE_SSL" envDefault:"false"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию.
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:       URLPrefix("http://localhost:8080"),
		StorageBucket: "link-exports",
	}
}

// Load читает конфигурацию из .env файла, флагов и переменных окружения.
func Load() (*Config, error) {
	// .env опционален, его отсутствие не ошибка
	_ = godotenv.Load()

	cfg := NewDefaultConfig()

	flag.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flag.Var(&cfg.BaseURL, "b", "public base URL for short links")
	flag.StringVar(&cfg.DatabaseDSN, "d", "", "database connection string")
	flag.Parse()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
