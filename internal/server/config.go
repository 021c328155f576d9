package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/homily-archive/ngram-search/pkg/config/env"
	"github.com/homily-archive/ngram-search/pkg/utils"
)

type Config struct {
	Port        string
	CorsOrigins []string
}

func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv("cmd/ngram_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitNonEmpty(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:        port,
		CorsOrigins: origins,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
