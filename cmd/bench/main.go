package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/homily-archive/ngram-search/internal/bench"
	"github.com/homily-archive/ngram-search/internal/corpus/sqlite"
	"github.com/homily-archive/ngram-search/internal/engine"
)

func main() {
	cfg := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	suite, err := bench.LoadSuite(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	store, err := sqlite.NewStore(ctx, sqlite.Config{Path: resolveDBPath(cfg)})
	if err != nil {
		slog.Error("Failed to open corpus database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	runCfg := bench.Config{
		Iterations: max(cfg.Iterations, 1),
		Warmup:     max(cfg.Warmup, 0),
	}

	result, err := bench.Run(ctx, engine.New(store), suite, runCfg)
	if err != nil {
		slog.Error("Benchmark failed", "error", err)
		os.Exit(1)
	}

	bench.WriteTable(result, os.Stdout)
}

func resolveDBPath(cfg cliConfig) string {
	if cfg.DBPath != "" {
		return cfg.DBPath
	}
	if p := os.Getenv("SQLITE_PATH"); p != "" {
		return p
	}
	return sqlite.DefaultPath
}
