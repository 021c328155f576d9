package main

import (
	"log/slog"

	"github.com/homily-archive/ngram-search/internal/corpus/factory"
	"github.com/homily-archive/ngram-search/pkg/config/env"
)

type AppConfig struct {
	StorageConfig *factory.StorageConfig
}

func LoadAppConfig() (*AppConfig, error) {
	if err := env.LoadDotEnv("cmd/ngram_api/.env"); err != nil {
		slog.Info("Failed to load .env file, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &AppConfig{
		StorageConfig: storageCfg,
	}, nil
}
