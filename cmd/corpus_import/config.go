package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/homily-archive/ngram-search/internal/corpus/factory"
	"github.com/homily-archive/ngram-search/pkg/config/env"
)

type ImportConfig struct {
	ManifestPath  string
	StorageConfig *factory.StorageConfig
}

func LoadImportConfig() (*ImportConfig, error) {
	if err := env.LoadDotEnv("cmd/corpus_import/.env"); err != nil {
		slog.Info("Failed to load .env file, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	manifestPath := os.Getenv("MANIFEST_PATH")
	if manifestPath == "" {
		return nil, fmt.Errorf("MANIFEST_PATH environment variable is not set")
	}

	return &ImportConfig{
		ManifestPath:  manifestPath,
		StorageConfig: storageCfg,
	}, nil
}
