// Package main Homily Ngram API
// @title Homily Ngram API
// @version 1.0
// @description Phrase frequency over time across a dated archive of homily transcripts
// @contact.name API Support
// @contact.email support@homily-archive.org
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/homily-archive/ngram-search/docs"
	"github.com/homily-archive/ngram-search/internal/corpus/factory"
	"github.com/homily-archive/ngram-search/internal/engine"
	"github.com/homily-archive/ngram-search/internal/router"
	"github.com/homily-archive/ngram-search/internal/server"
	pkgserver "github.com/homily-archive/ngram-search/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	appCfg, err := LoadAppConfig()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	s := server.New(sCfg, pkgserver.NewOkHealthChecker())

	store, err := factory.NewStore(s.Context(), appCfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create corpus store", "error", err)
		os.Exit(1)
		return
	}

	s.SetHealthChecker(pkgserver.NewPingHealthChecker(store.Ping)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Homily Ngram API is running")
	})

	router.NewSearchRouter(s.Echo, engine.New(store)).Bind()
	router.NewDocumentRouter(s.Echo, store).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
